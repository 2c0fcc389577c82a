package get_month_availability

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	getMonthAvailability "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_month_availability"
)

const (
	msgInvalidServiceID = "некорректный ID услуги"
	msgMissingYear      = "год обязателен"
	msgInvalidYear      = "некорректный год"
	msgMissingMonth     = "месяц обязателен"
	msgInvalidMonth     = "некорректный месяц, ожидается число от 1 до 12"
	msgServiceNotFound  = "услуга не найдена"
	msgInvalidSettings  = "некорректные настройки услуги"
)

type Handler struct {
	useCase GetMonthAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetMonthAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/services/{serviceId}/availability
// Query params: year (required), month (required, 1-12)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	serviceID, err := strconv.ParseInt(vars["serviceId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /services/{id}/availability - Invalid service ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	yearStr := r.URL.Query().Get("year")
	if yearStr == "" {
		h.logger.Warn("GET /services/{id}/availability - Missing year")
		handlers.RespondBadRequest(w, msgMissingYear)
		return
	}
	year, err := strconv.Atoi(yearStr)
	if err != nil || year < 1 {
		h.logger.Warn("GET /services/{id}/availability - Invalid year: %q", yearStr)
		handlers.RespondBadRequest(w, msgInvalidYear)
		return
	}

	monthStr := r.URL.Query().Get("month")
	if monthStr == "" {
		h.logger.Warn("GET /services/{id}/availability - Missing month")
		handlers.RespondBadRequest(w, msgMissingMonth)
		return
	}
	month, err := strconv.Atoi(monthStr)
	if err != nil || month < 1 || month > 12 {
		h.logger.Warn("GET /services/{id}/availability - Invalid month: %q", monthStr)
		handlers.RespondBadRequest(w, msgInvalidMonth)
		return
	}

	result, err := h.useCase.Execute(r.Context(), getMonthAvailability.Request{
		ServiceID: serviceID,
		Year:      year,
		Month:     time.Month(month),
	})
	if err != nil {
		switch {
		case errors.Is(err, getMonthAvailability.ErrServiceNotFound):
			h.logger.Warn("GET /services/{id}/availability - Service not found: service_id=%d", serviceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, getMonthAvailability.ErrInvalidInput):
			h.logger.Warn("GET /services/{id}/availability - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, getMonthAvailability.ErrInvalidSettings),
			errors.Is(err, getMonthAvailability.ErrInvalidWindow):
			h.logger.Error("GET /services/{id}/availability - Broken settings: service_id=%d, error=%v", serviceID, err)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgInvalidSettings)

		default:
			h.logger.Error("GET /services/{id}/availability - Failed: service_id=%d, error=%v", serviceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /services/{id}/availability - Calendar built: service_id=%d, %d-%02d, days=%d",
		serviceID, year, month, len(result.Days))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
