package gather

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// Service массовый сборщик данных для расчёта доступности.
// Профили сотрудников загружаются параллельно с изоляцией отказов:
// ошибка по одному сотруднику никогда не роняет весь батч. Занятые
// интервалы загружаются ОДНИМ запросом на весь период: набор сотрудников
// уходит провайдеру, а ответ дополнительно фильтруется на клиенте.
type Service struct {
	client SchedulingProviderClient
	logger Logger
}

// NewService создает новый экземпляр сборщика
func NewService(client SchedulingProviderClient, logger Logger) *Service {
	return &Service{
		client: client,
		logger: logger,
	}
}

// Fetch загружает профили рабочих часов и занятые интервалы за период.
// Порядок завершения параллельных запросов не влияет на результат:
// профили собираются в map, интервалы приходят одним ответом.
func (s *Service) Fetch(ctx context.Context, employeeIDs []int64, from, to time.Time) (*Result, error) {
	ids := dedupe(employeeIDs)

	s.logger.Info("Gather: fetching %d employee profiles and busy intervals for %s..%s",
		len(ids), from.Format(domain.DateFormat), to.Format(domain.DateFormat))

	var (
		mu       sync.Mutex
		wg       sync.WaitGroup
		profiles = make(map[int64]*domain.EmployeeProfile, len(ids))
		dropped  int
	)

	// Fan-out по сотрудникам. Отказ одного запроса изолируется:
	// сотрудник просто исключается из результата.
	for _, id := range ids {
		wg.Add(1)
		go func(employeeID int64) {
			defer wg.Done()

			profile, err := s.client.GetWorkingHours(ctx, employeeID)
			if err != nil {
				s.logger.Warn("Gather: dropping employee id=%d, working hours fetch failed: %v", employeeID, err)
				mu.Lock()
				dropped++
				mu.Unlock()
				return
			}

			mu.Lock()
			profiles[employeeID] = profile
			mu.Unlock()
		}(id)
	}

	// Занятые интервалы запрашиваем одним вызовом, пока профили в полёте
	busy, busyErr := s.client.GetBusyIntervals(ctx, ids, from, to)

	wg.Wait()

	if busyErr != nil {
		s.logger.Error("Gather: busy intervals fetch failed for %s..%s: %v",
			from.Format(domain.DateFormat), to.Format(domain.DateFormat), busyErr)
		return nil, fmt.Errorf("%w: %v", ErrBusyIntervals, busyErr)
	}

	filtered := filterByEmployees(busy, ids)

	if dropped > 0 {
		s.logger.Warn("Gather: degraded result, %d of %d employee profiles dropped", dropped, len(ids))
	}
	s.logger.Info("Gather: resolved %d profiles, %d busy intervals after filtering",
		len(profiles), len(filtered))

	return &Result{
		Profiles:          profiles,
		BusyIntervals:     filtered,
		ResolvedEmployees: len(profiles),
		DroppedEmployees:  dropped,
	}, nil
}

// dedupe убирает дубликаты, сохраняя порядок первого вхождения
func dedupe(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// filterByEmployees оставляет интервалы только запрошенных сотрудников
func filterByEmployees(busy []domain.BusyInterval, ids []int64) []domain.BusyInterval {
	requested := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		requested[id] = struct{}{}
	}

	filtered := make([]domain.BusyInterval, 0, len(busy))
	for _, b := range busy {
		if _, ok := requested[b.EmployeeID]; ok {
			filtered = append(filtered, b)
		}
	}
	return filtered
}
