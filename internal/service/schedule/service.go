package schedule

import (
	"context"
	"fmt"

	"github.com/m04kA/TSM-StudioService/internal/domain"
	"github.com/m04kA/TSM-StudioService/internal/service/schedule/models"
	"github.com/m04kA/TSM-StudioService/pkg/types"
)

// Service сервис расписания рабочих часов мастеров
type Service struct {
	workingHoursRepo WorkingHoursRepository
	txManager        TransactionManager
	logger           Logger
}

// NewService создает новый экземпляр сервиса расписания
func NewService(
	workingHoursRepo WorkingHoursRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		workingHoursRepo: workingHoursRepo,
		txManager:        txManager,
		logger:           logger,
	}
}

// GetWorkingHours получает расписание мастера
func (s *Service) GetWorkingHours(ctx context.Context, artistID int64) (*models.WorkingHoursResponse, error) {
	s.logger.Info("GetWorkingHours: fetching schedule for artist=%d", artistID)

	rules, err := s.workingHoursRepo.ListByArtist(ctx, artistID)
	if err != nil {
		s.logger.Error("GetWorkingHours: repository error for artist=%d: %v", artistID, err)
		return nil, fmt.Errorf("%w: GetWorkingHours - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainRules(artistID, rules), nil
}

// UpdateWorkingHours атомарно заменяет расписание мастера.
// Дни недели без правила становятся нерабочими, подбор слотов по ним
// вернет пустой список.
func (s *Service) UpdateWorkingHours(ctx context.Context, artistID int64, req *models.UpdateWorkingHoursRequest) (*models.WorkingHoursResponse, error) {
	s.logger.Info("UpdateWorkingHours: replacing schedule for artist=%d with %d rules", artistID, len(req.Rules))

	rules, err := s.validateRules(artistID, req.Rules)
	if err != nil {
		s.logger.Warn("UpdateWorkingHours: invalid rules for artist=%d: %v", artistID, err)
		return nil, err
	}

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		return s.workingHoursRepo.ReplaceForArtist(ctx, artistID, rules)
	})
	if err != nil {
		s.logger.Error("UpdateWorkingHours: failed to replace schedule for artist=%d: %v", artistID, err)
		return nil, fmt.Errorf("%w: UpdateWorkingHours - transaction error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateWorkingHours: schedule replaced for artist=%d", artistID)
	return models.FromDomainRules(artistID, rules), nil
}

func (s *Service) validateRules(artistID int64, inputs []models.WorkingHoursRuleInput) ([]*domain.WorkingHoursRule, error) {
	rules := make([]*domain.WorkingHoursRule, 0, len(inputs))
	seen := make(map[int]bool, len(inputs))

	for _, input := range inputs {
		if input.Weekday < 0 || input.Weekday > 6 {
			return nil, fmt.Errorf("%w: got %d", ErrInvalidWeekday, input.Weekday)
		}
		if seen[input.Weekday] {
			return nil, fmt.Errorf("%w: weekday %d", ErrDuplicateWeekday, input.Weekday)
		}
		seen[input.Weekday] = true

		start, err := types.NewTimeStringFromString(input.StartTime)
		if err != nil {
			return nil, fmt.Errorf("%w: startTime %q", ErrInvalidTimeFormat, input.StartTime)
		}

		end, err := types.NewTimeStringFromString(input.EndTime)
		if err != nil {
			return nil, fmt.Errorf("%w: endTime %q", ErrInvalidTimeFormat, input.EndTime)
		}

		if !start.IsBefore(end) {
			return nil, fmt.Errorf("%w: weekday %d", ErrInvalidTimeRange, input.Weekday)
		}

		rules = append(rules, &domain.WorkingHoursRule{
			ArtistID:  artistID,
			Weekday:   input.Weekday,
			StartTime: start,
			EndTime:   end,
		})
	}

	return rules, nil
}
