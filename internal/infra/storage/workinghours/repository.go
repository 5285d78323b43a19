package workinghours

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/TSM-StudioService/internal/domain"
	"github.com/m04kA/TSM-StudioService/pkg/dbmetrics"
	"github.com/m04kA/TSM-StudioService/pkg/psqlbuilder"
)

var ruleColumns = []string{
	"id",
	"artist_id",
	"weekday",
	"start_time",
	"end_time",
	"created_at",
	"updated_at",
}

// Repository репозиторий для правил рабочих часов мастеров
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория рабочих часов
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByArtistAndWeekday получает правило рабочих часов мастера на день недели
func (r *Repository) GetByArtistAndWeekday(ctx context.Context, artistID int64, weekday int) (*domain.WorkingHoursRule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(ruleColumns...).
		From("working_hours").
		Where(squirrel.Eq{"artist_id": artistID, "weekday": weekday}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByArtistAndWeekday - build select query: %v", ErrBuildQuery, err)
	}

	rule, err := scanRule(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrRuleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByArtistAndWeekday - scan rule: %v", ErrScanRow, err)
	}

	return rule, nil
}

// ListByArtist получает все правила рабочих часов мастера, упорядоченные по дню недели
func (r *Repository) ListByArtist(ctx context.Context, artistID int64) ([]*domain.WorkingHoursRule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(ruleColumns...).
		From("working_hours").
		Where(squirrel.Eq{"artist_id": artistID}).
		OrderBy("weekday ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByArtist - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByArtist - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	rules := make([]*domain.WorkingHoursRule, 0)
	for rows.Next() {
		rule, err := scanRule(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByArtist - scan rule: %v", ErrScanRow, err)
		}
		rules = append(rules, rule)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByArtist - iterate rows: %v", ErrExecQuery, err)
	}

	return rules, nil
}

// ReplaceForArtist полностью заменяет расписание мастера переданным набором правил.
// Вызывается внутри транзакции, чтобы замена была атомарной.
func (r *Repository) ReplaceForArtist(ctx context.Context, artistID int64, rules []*domain.WorkingHoursRule) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	deleteQuery, deleteArgs, err := psqlbuilder.Delete("working_hours").
		Where(squirrel.Eq{"artist_id": artistID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: ReplaceForArtist - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return fmt.Errorf("%w: ReplaceForArtist - execute delete: %v", ErrExecQuery, err)
	}

	if len(rules) == 0 {
		return nil
	}

	builder := psqlbuilder.Insert("working_hours").
		Columns("artist_id", "weekday", "start_time", "end_time")

	for _, rule := range rules {
		builder = builder.Values(artistID, rule.Weekday, rule.StartTime, rule.EndTime)
	}

	insertQuery, insertArgs, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceForArtist - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
		return fmt.Errorf("%w: ReplaceForArtist - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRule(row rowScanner) (*domain.WorkingHoursRule, error) {
	var rule domain.WorkingHoursRule
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&rule.ID,
		&rule.ArtistID,
		&rule.Weekday,
		&rule.StartTime,
		&rule.EndTime,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	rule.CreatedAt = createdAt.Time
	rule.UpdatedAt = updatedAt.Time

	return &rule, nil
}
