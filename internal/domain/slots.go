package domain

import (
	"sort"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/pkg/interval"
)

// GuardWindows expands each busy interval by the buffer on both sides and
// merges the result into a minimal non-overlapping cover. A buffer pushing
// a window below 0 or past 1440 is fine: everything downstream compares
// plain integers.
func GuardWindows(busy []BusyInterval, bufferMinutes int) []interval.Span {
	spans := make([]interval.Span, 0, len(busy))
	for _, b := range busy {
		spans = append(spans, interval.Span{
			Start: b.StartMinute - bufferMinutes,
			End:   b.EndMinute + bufferMinutes,
		})
	}
	return interval.Merge(spans)
}

// DaySlotStarts produces the valid appointment start times (minute offsets,
// ascending) for one employee on one date. busy must already be narrowed to
// that employee's intervals on that date. Zero working blocks is not an
// error, just an empty day.
func DaySlotStarts(profile *EmployeeProfile, busy []BusyInterval, settings ServiceSettings, date time.Time, now time.Time) []int {
	blocks := profile.BlocksOn(date.Weekday())
	if len(blocks) == 0 {
		return []int{}
	}

	guards := GuardWindows(busy, settings.BufferMinutes)
	cutoff := now.Add(time.Duration(settings.MinimumNoticeHours) * time.Hour)
	midnight := DateOnly(date)

	seen := make(map[int]struct{})
	starts := make([]int, 0)

	for _, block := range blocks {
		// An appointment must fit inside a single block; blocks are
		// never bridged even when contiguous in clock time.
		for t := block.StartMinute; t+settings.DurationMinutes <= block.EndMinute; t += settings.IntervalMinutes {
			if !candidateAccepted(t, settings.DurationMinutes, guards, midnight, cutoff) {
				continue
			}
			if _, ok := seen[t]; ok {
				continue
			}
			seen[t] = struct{}{}
			starts = append(starts, t)
		}
	}

	sort.Ints(starts)
	return starts
}

// SlotAvailableAt is the single-instant form of DaySlotStarts: it reports
// whether an appointment starting at startMinute on date would be accepted
// for this employee. Same block, guard and notice logic, narrowed to one
// candidate. The start must lie on a block's candidate grid: a time the
// sweep never generates is never available.
func SlotAvailableAt(profile *EmployeeProfile, busy []BusyInterval, settings ServiceSettings, date time.Time, startMinute int, now time.Time) bool {
	fits := false
	for _, block := range profile.BlocksOn(date.Weekday()) {
		if startMinute >= block.StartMinute &&
			startMinute+settings.DurationMinutes <= block.EndMinute &&
			(startMinute-block.StartMinute)%settings.IntervalMinutes == 0 {
			fits = true
			break
		}
	}
	if !fits {
		return false
	}

	guards := GuardWindows(busy, settings.BufferMinutes)
	cutoff := now.Add(time.Duration(settings.MinimumNoticeHours) * time.Hour)
	return candidateAccepted(startMinute, settings.DurationMinutes, guards, DateOnly(date), cutoff)
}

// candidateAccepted checks the guard-window and minimum-notice conditions
// for a candidate [t, t+duration) slot on the day starting at midnight.
func candidateAccepted(t, duration int, guards []interval.Span, midnight time.Time, cutoff time.Time) bool {
	candidate := interval.Span{Start: t, End: t + duration}
	for _, g := range guards {
		if candidate.Overlaps(g) {
			return false
		}
	}

	instant := midnight.Add(time.Duration(t) * time.Minute)
	return !instant.Before(cutoff)
}
