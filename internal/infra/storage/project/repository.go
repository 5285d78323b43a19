package project

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/TSM-StudioService/internal/domain"
	"github.com/m04kA/TSM-StudioService/pkg/dbmetrics"
	"github.com/m04kA/TSM-StudioService/pkg/psqlbuilder"
)

var projectColumns = []string{
	"id",
	"client_id",
	"service_id",
	"title",
	"description",
	"status",
	"last_booking_id",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с проектами
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория проектов
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый проект
func (r *Repository) Create(ctx context.Context, project *domain.Project) (*domain.Project, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("projects").
		Columns(
			"client_id",
			"service_id",
			"title",
			"description",
			"status",
		).
		Values(
			project.ClientID,
			project.ServiceID,
			project.Title,
			project.Description,
			project.Status,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&project.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	project.CreatedAt = createdAt.Time
	project.UpdatedAt = updatedAt.Time

	return project, nil
}

// GetByID получает проект по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Project, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(projectColumns...).
		From("projects").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var project domain.Project
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&project.ID,
		&project.ClientID,
		&project.ServiceID,
		&project.Title,
		&project.Description,
		&project.Status,
		&project.LastBookingID,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrProjectNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan project: %w", ErrScanRow, err)
	}

	project.CreatedAt = createdAt.Time
	project.UpdatedAt = updatedAt.Time

	return &project, nil
}

// UpdateStatus обновляет стадию проекта
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.ProjectStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("projects").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, query, args, "UpdateStatus")
}

// SetLastBooking обновляет слабую обратную ссылку проекта на бронирование
func (r *Repository) SetLastBooking(ctx context.Context, projectID, bookingID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("projects").
		Set("last_booking_id", bookingID).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": projectID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SetLastBooking - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, query, args, "SetLastBooking")
}

func (r *Repository) execExpectingRow(ctx context.Context, executor dbmetrics.DBExecutor, query string, args []interface{}, op string) error {
	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute update: %w", ErrExecQuery, op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %w", ErrExecQuery, op, err)
	}

	if rowsAffected == 0 {
		return ErrProjectNotFound
	}

	return nil
}
