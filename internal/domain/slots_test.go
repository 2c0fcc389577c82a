package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AvailabilityService/pkg/interval"
)

// 2026-02-02 is a Monday.
var monday = time.Date(2026, 2, 2, 0, 0, 0, 0, time.UTC)

func mondayProfile(blocks ...WorkingBlock) *EmployeeProfile {
	byDay := make(map[time.Weekday][]WorkingBlock)
	for _, b := range blocks {
		byDay[b.Weekday] = append(byDay[b.Weekday], b)
	}
	return &EmployeeProfile{EmployeeID: 1, DisplayName: "Employee One", Blocks: byDay}
}

func settingsWith(duration, intervalMin, buffer, noticeHours int) ServiceSettings {
	return ServiceSettings{
		DurationMinutes:    duration,
		IntervalMinutes:    intervalMin,
		BufferMinutes:      buffer,
		MinimumNoticeHours: noticeHours,
		DateRange:          DateRangePolicy{Type: RangeIndefinite},
	}
}

func TestDaySlotStartsConcreteScenario(t *testing.T) {
	// Monday 09:00-12:00 and 13:00-17:00, duration 30, interval 30,
	// no buffer, no notice, one busy interval 10:00-10:30.
	profile := mondayProfile(
		WorkingBlock{Weekday: time.Monday, StartMinute: 540, EndMinute: 720},
		WorkingBlock{Weekday: time.Monday, StartMinute: 780, EndMinute: 1020},
	)
	busy := []BusyInterval{{EmployeeID: 1, Date: monday, StartMinute: 600, EndMinute: 630}}

	got := DaySlotStarts(profile, busy, settingsWith(30, 30, 0, 0), monday, monday)

	want := []int{540, 570, 630, 660, 690, 780, 810, 840, 870, 900, 930, 960, 990}
	assert.Equal(t, want, got)
}

func TestDaySlotStartsExactFitBoundary(t *testing.T) {
	profile := mondayProfile(WorkingBlock{Weekday: time.Monday, StartMinute: 540, EndMinute: 600})

	got := DaySlotStarts(profile, nil, settingsWith(60, 30, 0, 0), monday, monday)
	assert.Equal(t, []int{540}, got, "duration exactly filling the block is valid")

	got = DaySlotStarts(profile, nil, settingsWith(61, 30, 0, 0), monday, monday)
	assert.Empty(t, got, "one minute over the block is not")
}

func TestDaySlotStartsBlocksNeverBridged(t *testing.T) {
	// Two blocks contiguous in clock time: 09:00-10:00 and 10:00-11:00.
	// A 90-minute appointment fits in neither, even though the union
	// would hold it.
	profile := mondayProfile(
		WorkingBlock{Weekday: time.Monday, StartMinute: 540, EndMinute: 600},
		WorkingBlock{Weekday: time.Monday, StartMinute: 600, EndMinute: 660},
	)

	got := DaySlotStarts(profile, nil, settingsWith(90, 30, 0, 0), monday, monday)
	assert.Empty(t, got)
}

func TestDaySlotStartsBufferSymmetry(t *testing.T) {
	// Busy 10:00-10:30 with a 15-minute buffer guards [09:45, 10:45).
	profile := mondayProfile(WorkingBlock{Weekday: time.Monday, StartMinute: 540, EndMinute: 720})
	busy := []BusyInterval{{EmployeeID: 1, Date: monday, StartMinute: 600, EndMinute: 630}}

	got := DaySlotStarts(profile, busy, settingsWith(30, 15, 15, 0), monday, monday)

	// Candidates every 15 min from 09:00; [start, start+30) must not
	// intersect [585, 645).
	want := []int{540, 555, 645, 660, 675, 690}
	assert.Equal(t, want, got)
}

func TestDaySlotStartsMinimumNoticeBoundary(t *testing.T) {
	profile := mondayProfile(WorkingBlock{Weekday: time.Monday, StartMinute: 480, EndMinute: 720})

	// now 06:00, 3h notice: a slot at exactly 09:00 is accepted.
	now := monday.Add(6 * time.Hour)
	got := DaySlotStarts(profile, nil, settingsWith(30, 30, 0, 3), monday, now)
	require.NotEmpty(t, got)
	assert.Equal(t, 540, got[0])

	// One minute later the 09:00 slot falls under the cutoff.
	got = DaySlotStarts(profile, nil, settingsWith(30, 30, 0, 3), monday, now.Add(time.Minute))
	require.NotEmpty(t, got)
	assert.Equal(t, 570, got[0])
}

func TestDaySlotStartsEmptyDay(t *testing.T) {
	profile := mondayProfile(WorkingBlock{Weekday: time.Tuesday, StartMinute: 540, EndMinute: 720})

	got := DaySlotStarts(profile, nil, settingsWith(30, 30, 0, 0), monday, monday)
	assert.Empty(t, got, "no blocks on the weekday is an empty day, not an error")
}

func TestDaySlotStartsOverlappingBlocksDeduplicated(t *testing.T) {
	// Provider data may contain overlapping blocks; shared candidate
	// starts appear once.
	profile := mondayProfile(
		WorkingBlock{Weekday: time.Monday, StartMinute: 540, EndMinute: 660},
		WorkingBlock{Weekday: time.Monday, StartMinute: 600, EndMinute: 720},
	)

	got := DaySlotStarts(profile, nil, settingsWith(60, 60, 0, 0), monday, monday)
	assert.Equal(t, []int{540, 600, 660}, got)
}

func TestGuardWindowsClampFree(t *testing.T) {
	// Buffers may push guards below 0 and past 1440; no wraparound.
	busy := []BusyInterval{
		{StartMinute: 10, EndMinute: 30},
		{StartMinute: 1420, EndMinute: 1440},
	}

	got := GuardWindows(busy, 20)
	assert.Equal(t, []interval.Span{{Start: -10, End: 50}, {Start: 1400, End: 1460}}, got)
}

func TestSlotAvailableAt(t *testing.T) {
	profile := mondayProfile(
		WorkingBlock{Weekday: time.Monday, StartMinute: 540, EndMinute: 720},
		WorkingBlock{Weekday: time.Monday, StartMinute: 780, EndMinute: 1020},
	)
	busy := []BusyInterval{{EmployeeID: 1, Date: monday, StartMinute: 600, EndMinute: 630}}
	settings := settingsWith(30, 30, 0, 0)

	assert.True(t, SlotAvailableAt(profile, busy, settings, monday, 540, monday))
	assert.False(t, SlotAvailableAt(profile, busy, settings, monday, 600, monday), "busy interval")
	assert.True(t, SlotAvailableAt(profile, busy, settings, monday, 630, monday), "touching busy end is fine")
	assert.False(t, SlotAvailableAt(profile, busy, settings, monday, 720, monday), "gap between blocks")
	assert.False(t, SlotAvailableAt(profile, busy, settings, monday, 1000, monday), "would overrun the block")
	assert.True(t, SlotAvailableAt(profile, busy, settings, monday, 990, monday))
}

func TestSlotAvailableAtRejectsOffGridStarts(t *testing.T) {
	// 09:00-17:00, interval 30: 09:15 is never generated by the sweep
	// and must not be accepted by the single-instant check either.
	profile := mondayProfile(WorkingBlock{Weekday: time.Monday, StartMinute: 540, EndMinute: 1020})
	settings := settingsWith(30, 30, 0, 0)

	assert.False(t, SlotAvailableAt(profile, nil, settings, monday, 555, monday))
	assert.True(t, SlotAvailableAt(profile, nil, settings, monday, 570, monday))

	// The grid is anchored at each block's own start, not at midnight.
	offset := mondayProfile(WorkingBlock{Weekday: time.Monday, StartMinute: 555, EndMinute: 735})
	assert.True(t, SlotAvailableAt(offset, nil, settings, monday, 555, monday))
	assert.False(t, SlotAvailableAt(offset, nil, settings, monday, 570, monday))
}

func TestSlotAvailableAtMatchesDaySlotStarts(t *testing.T) {
	// The single-instant check accepts exactly the starts the sweep
	// generates, minute for minute across the whole day.
	profile := mondayProfile(
		WorkingBlock{Weekday: time.Monday, StartMinute: 540, EndMinute: 720},
		WorkingBlock{Weekday: time.Monday, StartMinute: 780, EndMinute: 1020},
	)
	busy := []BusyInterval{{EmployeeID: 1, Date: monday, StartMinute: 600, EndMinute: 630}}
	settings := settingsWith(45, 15, 10, 0)

	generated := make(map[int]bool)
	for _, start := range DaySlotStarts(profile, busy, settings, monday, monday) {
		generated[start] = true
	}
	require.NotEmpty(t, generated)

	for minute := 0; minute < MinutesPerDay; minute++ {
		assert.Equal(t, generated[minute],
			SlotAvailableAt(profile, busy, settings, monday, minute, monday),
			"minute %d", minute)
	}
}
