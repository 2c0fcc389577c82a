package select_employee

import (
	"context"

	selectEmployee "github.com/m04kA/SMC-AvailabilityService/internal/usecase/select_employee"
)

type SelectEmployeeUseCase interface {
	Execute(ctx context.Context, req selectEmployee.Request) (*selectEmployee.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
