package create_payment_link

import (
	"context"

	"github.com/m04kA/TSM-StudioService/internal/domain"
	"github.com/m04kA/TSM-StudioService/internal/integrations/payments"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	SetDepositLink(ctx context.Context, id int64, link string) error
}

// CatalogRepository интерфейс справочника студии
type CatalogRepository interface {
	GetClient(ctx context.Context, id int64) (*domain.Client, error)
	GetService(ctx context.Context, id int64) (*domain.Service, error)
}

// PaymentsClient интерфейс платежного клиента
type PaymentsClient interface {
	CreateDepositLink(ctx context.Context, charge payments.DepositCharge) (*payments.PaymentLink, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
