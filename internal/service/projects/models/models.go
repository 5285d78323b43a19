package models

import (
	"time"

	"github.com/m04kA/TSM-StudioService/internal/domain"
)

// Request модели

// UpdateStageRequest запрос на перевод проекта на следующую стадию
type UpdateStageRequest struct {
	Stage string `json:"stage"`
}

// Response модели

// ProjectResponse ответ с данными проекта
type ProjectResponse struct {
	ID            int64   `json:"id"`
	ClientID      int64   `json:"clientId"`
	ServiceID     *int64  `json:"serviceId,omitempty"`
	Title         string  `json:"title"`
	Description   *string `json:"description,omitempty"`
	Stage         string  `json:"stage"`
	LastBookingID *int64  `json:"lastBookingId,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// FromDomainProject конвертирует domain модель в DTO
func FromDomainProject(p *domain.Project) *ProjectResponse {
	if p == nil {
		return nil
	}

	return &ProjectResponse{
		ID:            p.ID,
		ClientID:      p.ClientID,
		ServiceID:     p.ServiceID,
		Title:         p.Title,
		Description:   p.Description,
		Stage:         string(p.Status),
		LastBookingID: p.LastBookingID,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}
