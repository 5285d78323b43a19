package models

import (
	"github.com/m04kA/TSM-StudioService/internal/domain"
)

// Request модели

// WorkingHoursRuleInput правило рабочих часов на один день недели
type WorkingHoursRuleInput struct {
	Weekday   int    `json:"weekday"`   // 0 = воскресенье ... 6 = суббота
	StartTime string `json:"startTime"` // "10:00"
	EndTime   string `json:"endTime"`   // "20:00"
}

// UpdateWorkingHoursRequest запрос на полную замену расписания мастера.
// Дни недели, отсутствующие в списке, становятся нерабочими.
type UpdateWorkingHoursRequest struct {
	Rules []WorkingHoursRuleInput `json:"rules"`
}

// Response модели

// WorkingHoursRuleResponse правило рабочих часов в ответе
type WorkingHoursRuleResponse struct {
	Weekday   int    `json:"weekday"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// WorkingHoursResponse расписание мастера
type WorkingHoursResponse struct {
	ArtistID int64                      `json:"artistId"`
	Rules    []WorkingHoursRuleResponse `json:"rules"`
}

// FromDomainRules конвертирует domain правила в DTO
func FromDomainRules(artistID int64, rules []*domain.WorkingHoursRule) *WorkingHoursResponse {
	resp := &WorkingHoursResponse{
		ArtistID: artistID,
		Rules:    make([]WorkingHoursRuleResponse, len(rules)),
	}

	for i, rule := range rules {
		resp.Rules[i] = WorkingHoursRuleResponse{
			Weekday:   rule.Weekday,
			StartTime: rule.StartTime.String(),
			EndTime:   rule.EndTime.String(),
		}
	}

	return resp
}
