package get_service_config

import (
	"context"

	"github.com/m04kA/SMC-AvailabilityService/internal/service/services"
)

type ServiceConfigService interface {
	GetConfig(ctx context.Context, serviceID int64) (*services.ConfigView, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
