package select_employee

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	selectEmployee "github.com/m04kA/SMC-AvailabilityService/internal/usecase/select_employee"
)

const (
	msgInvalidServiceID = "некорректный ID услуги"
	msgMissingDate      = "дата обязательна"
	msgMissingTime      = "время обязательно"
	msgInvalidInput     = "некорректные параметры запроса"
	msgServiceNotFound  = "услуга не найдена"
	msgInvalidSettings  = "некорректные настройки услуги"
)

type Handler struct {
	useCase SelectEmployeeUseCase
	logger  Logger
}

func NewHandler(useCase SelectEmployeeUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/services/{serviceId}/availability/employee
// Query params: date (required, YYYY-MM-DD), time (required, e.g. 9:00am)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	serviceID, err := strconv.ParseInt(vars["serviceId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /services/{id}/availability/employee - Invalid service ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /services/{id}/availability/employee - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	timeStr := r.URL.Query().Get("time")
	if timeStr == "" {
		h.logger.Warn("GET /services/{id}/availability/employee - Missing time")
		handlers.RespondBadRequest(w, msgMissingTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), selectEmployee.Request{
		ServiceID: serviceID,
		Date:      dateStr,
		Time:      timeStr,
	})
	if err != nil {
		switch {
		case errors.Is(err, selectEmployee.ErrServiceNotFound):
			h.logger.Warn("GET /services/{id}/availability/employee - Service not found: service_id=%d", serviceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, selectEmployee.ErrInvalidInput):
			h.logger.Warn("GET /services/{id}/availability/employee - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, selectEmployee.ErrInvalidSettings):
			h.logger.Error("GET /services/{id}/availability/employee - Broken settings: service_id=%d, error=%v", serviceID, err)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgInvalidSettings)

		default:
			h.logger.Error("GET /services/{id}/availability/employee - Failed: service_id=%d, error=%v", serviceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /services/{id}/availability/employee - Selection done: service_id=%d, %s %s, candidates=%d",
		serviceID, dateStr, timeStr, len(result.Employees))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result, timeStr))
}
