package get_month_availability

import (
	"sort"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/gather"
	"github.com/m04kA/SMC-AvailabilityService/pkg/timestr"
)

// buildCalendar агрегирует слоты по датам диапазона [from, to] включительно.
// Для каждой даты и каждого сотрудника считаются стартовые минуты, затем
// слоты с одинаковым временем объединяются в один с перечнем сотрудников.
// Даты без единого слота в результат не попадают.
func buildCalendar(data *gather.Result, settings domain.ServiceSettings, from, to time.Time, now time.Time) map[string][]Slot {
	days := make(map[string][]Slot)

	for date := domain.DateOnly(from); !date.After(to); date = date.AddDate(0, 0, 1) {
		// минута старта -> сотрудники, доступные в эту минуту
		byMinute := make(map[int][]int64)

		for employeeID, profile := range data.Profiles {
			busy := busyFor(data.BusyIntervals, employeeID, date)
			for _, start := range domain.DaySlotStarts(profile, busy, settings, date, now) {
				byMinute[start] = append(byMinute[start], employeeID)
			}
		}

		if len(byMinute) == 0 {
			continue
		}

		days[date.Format(domain.DateFormat)] = toSortedSlots(byMinute, settings.DurationMinutes)
	}

	return days
}

// busyFor отбирает занятые интервалы одного сотрудника на одну дату
func busyFor(all []domain.BusyInterval, employeeID int64, date time.Time) []domain.BusyInterval {
	result := make([]domain.BusyInterval, 0)
	for _, b := range all {
		if b.EmployeeID == employeeID && b.SameDate(date) {
			result = append(result, b)
		}
	}
	return result
}

// toSortedSlots превращает карту минута -> сотрудники в список слотов,
// отсортированный по времени; сотрудники внутри слота по возрастанию ID
func toSortedSlots(byMinute map[int][]int64, durationMinutes int) []Slot {
	slots := make([]Slot, 0, len(byMinute))

	for minute, ids := range byMinute {
		sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
		slots = append(slots, Slot{
			StartMinute:     minute,
			StartTime:       timestr.Display12h(minute),
			DurationMinutes: durationMinutes,
			EmployeeIDs:     ids,
		})
	}

	sort.Slice(slots, func(i, j int) bool { return slots[i].StartMinute < slots[j].StartMinute })

	return slots
}
