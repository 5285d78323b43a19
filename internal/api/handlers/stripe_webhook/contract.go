package stripe_webhook

import (
	"context"

	"github.com/m04kA/TSM-StudioService/internal/integrations/payments"
	confirmDeposit "github.com/m04kA/TSM-StudioService/internal/usecase/confirm_deposit"
)

type PaymentsClient interface {
	ParseWebhookEvent(payload []byte, sigHeader string) (*payments.DepositConfirmation, error)
}

type ConfirmDepositUseCase interface {
	Execute(ctx context.Context, req *confirmDeposit.Request) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
