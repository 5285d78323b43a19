package models

import (
	"errors"
	"time"

	"github.com/m04kA/TSM-StudioService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// GetArtistBookingsRequest запрос на получение бронирований мастера
type GetArtistBookingsRequest struct {
	ArtistID        int64      `json:"artistId"`
	From            *time.Time `json:"from,omitempty"`            // Начало периода (опционально)
	To              *time.Time `json:"to,omitempty"`              // Конец периода (опционально)
	Status          *string    `json:"status,omitempty"`          // Фильтр по статусу (опционально)
	IncludeInactive bool       `json:"includeInactive,omitempty"` // Включить завершённые и отменённые
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *GetArtistBookingsRequest) ToDomainFilter() (domain.ArtistBookingsFilter, error) {
	filter := domain.ArtistBookingsFilter{
		ArtistID:        r.ArtistID,
		From:            r.From,
		To:              r.To,
		IncludeInactive: r.IncludeInactive,
	}

	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// UpdateStatusRequest запрос на обновление статуса бронирования
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID            int64   `json:"id"`
	ArtistID      int64   `json:"artistId"`
	ClientID      int64   `json:"clientId"`
	ServiceID     int64   `json:"serviceId"`
	ProjectID     *int64  `json:"projectId,omitempty"`
	StartTime     string  `json:"startTime"` // ISO 8601, UTC
	EndTime       string  `json:"endTime"`   // ISO 8601, UTC
	Status        string  `json:"status"`
	DepositAmount float64 `json:"depositAmount"`
	DepositPaid   bool    `json:"depositPaid"`
	DepositLink   *string `json:"depositLink,omitempty"`
	Notes         *string `json:"notes,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		ID:            b.ID,
		ArtistID:      b.ArtistID,
		ClientID:      b.ClientID,
		ServiceID:     b.ServiceID,
		ProjectID:     b.ProjectID,
		StartTime:     b.StartTime.UTC().Format(time.RFC3339),
		EndTime:       b.EndTime.UTC().Format(time.RFC3339),
		Status:        string(b.Status),
		DepositAmount: b.DepositAmount,
		DepositPaid:   b.DepositPaid,
		DepositLink:   b.DepositLink,
		Notes:         b.Notes,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	if bookings == nil {
		return &BookingListResponse{
			Bookings: []BookingResponse{},
		}
	}

	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, len(bookings)),
	}

	for i, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings[i] = *bookingResp
		}
	}

	return resp
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus с валидацией
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s := domain.BookingStatus(status)
	if !s.IsValid() {
		return "", ErrInvalidStatus
	}
	return s, nil
}
