package schedprovider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/metrics"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы с внешним провайдером расписаний.
// Все преобразования сырых ответов в доменные типы происходят здесь,
// ниже по стеку нетипизированных данных нет.
type Client struct {
	baseURL    string
	httpClient *http.Client
	loc        *time.Location
	log        Logger
	metrics    *metrics.Metrics // может быть nil, если метрики выключены
}

// NewClient создает новый экземпляр клиента провайдера расписаний
func NewClient(baseURL string, timeout time.Duration, loc *time.Location, log Logger, m *metrics.Metrics) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		loc:     loc,
		log:     log,
		metrics: m,
	}
}

func (c *Client) observe(endpoint string, start time.Time, err error) {
	if c.metrics == nil {
		return
	}
	status := "ok"
	if err != nil {
		status = "error"
	}
	c.metrics.ProviderRequestsTotal.WithLabelValues(endpoint, status).Inc()
	c.metrics.ProviderRequestDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
}

// GetWorkingHours получает профиль рабочих часов сотрудника
func (c *Client) GetWorkingHours(ctx context.Context, employeeID int64) (profile *domain.EmployeeProfile, err error) {
	start := time.Now()
	defer func() { c.observe("working_hours", start, err) }()

	reqURL := fmt.Sprintf("%s/v1/employees/%d/working-hours", c.baseURL, employeeID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusBadRequest:
		return nil, fmt.Errorf("%w: invalid employee ID format", ErrInvalidResponse)
	case http.StatusNotFound:
		return nil, ErrEmployeeNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	// Парсим ответ
	var raw WorkingHoursResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return toDomainProfile(&raw)
}

// GetBusyIntervals получает занятые интервалы сотрудников ОДНИМ запросом
// на весь период: O(1) сетевых вызовов на месяц, а не O(дни x сотрудники).
// Набор сотрудников передается провайдеру; ответ все равно фильтруется
// вызывающим кодом, провайдер может вернуть лишнее.
func (c *Client) GetBusyIntervals(ctx context.Context, employeeIDs []int64, from, to time.Time) (intervals []domain.BusyInterval, err error) {
	start := time.Now()
	defer func() { c.observe("busy_intervals", start, err) }()

	ids := make([]string, 0, len(employeeIDs))
	for _, id := range employeeIDs {
		ids = append(ids, strconv.FormatInt(id, 10))
	}

	query := url.Values{}
	query.Set("employeeIds", strings.Join(ids, ","))
	query.Set("from", from.Format(domain.DateFormat))
	query.Set("to", to.Format(domain.DateFormat))
	reqURL := fmt.Sprintf("%s/v1/schedule/busy?%s", c.baseURL, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusBadRequest:
		return nil, fmt.Errorf("%w: invalid date range %s..%s", ErrInvalidResponse,
			from.Format(domain.DateFormat), to.Format(domain.DateFormat))
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var raw BusyIntervalsResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return toDomainBusyIntervals(raw.Intervals, c.loc)
}
