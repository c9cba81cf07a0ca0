package select_window

import (
	"context"

	selectWindow "github.com/m04kA/SMC-CourtBookingService/internal/usecase/select_window"
)

type SelectWindowUseCase interface {
	Execute(ctx context.Context, req *selectWindow.Request) (*selectWindow.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
