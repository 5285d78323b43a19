package payments

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v78"
	"github.com/stripe/stripe-go/v78/checkout/session"
	"github.com/stripe/stripe-go/v78/webhook"

	"github.com/m04kA/TSM-StudioService/pkg/logger"
)

const metadataBookingID = "booking_id"

// Client обертка над платежным провайдером для депозитов по бронированиям
type Client struct {
	webhookSecret string
	currency      string
	successURL    string
	cancelURL     string
	logs          *logger.Logger
}

// NewClient создает новый платежный клиент.
// secretKey устанавливается глобально для stripe-go, клиент создается один раз на процесс.
func NewClient(secretKey, webhookSecret, currency, successURL, cancelURL string, logs *logger.Logger) *Client {
	stripe.Key = secretKey

	return &Client{
		webhookSecret: webhookSecret,
		currency:      currency,
		successURL:    successURL,
		cancelURL:     cancelURL,
		logs:          logs,
	}
}

// CreateDepositLink создает платежную сессию на депозит бронирования.
// ID бронирования кладется в метаданные и возвращается вебхуком при оплате.
func (c *Client) CreateDepositLink(ctx context.Context, charge DepositCharge) (*PaymentLink, error) {
	params := &stripe.CheckoutSessionParams{
		Mode: stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String(c.currency),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(charge.Description),
					},
					UnitAmount: stripe.Int64(toMinorUnits(charge.Amount)),
				},
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL: stripe.String(c.successURL),
		CancelURL:  stripe.String(c.cancelURL),
	}
	params.Context = ctx
	params.AddMetadata(metadataBookingID, strconv.FormatInt(charge.BookingID, 10))
	params.SetIdempotencyKey(uuid.NewString())

	if charge.ClientEmail != nil {
		params.CustomerEmail = stripe.String(*charge.ClientEmail)
	}

	sess, err := session.New(params)
	if err != nil {
		return nil, fmt.Errorf("%w: booking %d: %v", ErrCreateSession, charge.BookingID, err)
	}

	c.logs.Info("payments: created checkout session %s for booking %d", sess.ID, charge.BookingID)

	return &PaymentLink{URL: sess.URL, SessionID: sess.ID}, nil
}

// ParseWebhookEvent проверяет подпись вебхука и извлекает подтверждение оплаты депозита.
// Проверка подписи выполняется до любого чтения тела: неподписанные события отбрасываются.
func (c *Client) ParseWebhookEvent(payload []byte, sigHeader string) (*DepositConfirmation, error) {
	event, err := webhook.ConstructEvent(payload, sigHeader, c.webhookSecret)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSignatureVerification, err)
	}

	switch event.Type {
	case "checkout.session.completed", "checkout.session.async_payment_succeeded":
		var sess stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
			return nil, fmt.Errorf("%w: event %s: %v", ErrParseEvent, event.ID, err)
		}

		rawID, ok := sess.Metadata[metadataBookingID]
		if !ok || rawID == "" {
			return nil, fmt.Errorf("%w: event %s", ErrNoBookingID, event.ID)
		}

		bookingID, err := strconv.ParseInt(rawID, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: event %s: bad booking id %q", ErrNoBookingID, event.ID, rawID)
		}

		return &DepositConfirmation{
			BookingID: bookingID,
			EventID:   event.ID,
			EventType: string(event.Type),
		}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrIgnoredEvent, event.Type)
	}
}

func toMinorUnits(amount float64) int64 {
	return int64(amount*100 + 0.5)
}
