package notification

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/TSM-StudioService/internal/domain"
	"github.com/m04kA/TSM-StudioService/pkg/dbmetrics"
	"github.com/m04kA/TSM-StudioService/pkg/psqlbuilder"
)

var notificationColumns = []string{
	"id",
	"artist_id",
	"type",
	"title",
	"body",
	"entity_type",
	"entity_id",
	"is_read",
	"created_at",
}

// Repository репозиторий для ленты уведомлений мастера
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория уведомлений
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое уведомление
func (r *Repository) Create(ctx context.Context, n *domain.Notification) (*domain.Notification, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("notifications").
		Columns("artist_id", "type", "title", "body", "entity_type", "entity_id").
		Values(n.ArtistID, n.Type, n.Title, n.Body, n.EntityType, n.EntityID).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&n.ID, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	n.CreatedAt = createdAt.Time

	return n, nil
}

// ListByArtist получает последние уведомления мастера, новые первыми
func (r *Repository) ListByArtist(ctx context.Context, artistID int64, limit uint64) ([]*domain.Notification, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(notificationColumns...).
		From("notifications").
		Where(squirrel.Eq{"artist_id": artistID}).
		OrderBy("created_at DESC", "id DESC").
		Limit(limit).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByArtist - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByArtist - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	notifications := make([]*domain.Notification, 0)
	for rows.Next() {
		var n domain.Notification
		var createdAt sql.NullTime

		err = rows.Scan(
			&n.ID,
			&n.ArtistID,
			&n.Type,
			&n.Title,
			&n.Body,
			&n.EntityType,
			&n.EntityID,
			&n.IsRead,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByArtist - scan notification: %v", ErrScanRow, err)
		}

		n.CreatedAt = createdAt.Time
		notifications = append(notifications, &n)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByArtist - iterate rows: %v", ErrExecQuery, err)
	}

	return notifications, nil
}

// CountUnread считает непрочитанные уведомления мастера
func (r *Repository) CountUnread(ctx context.Context, artistID int64) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("notifications").
		Where(squirrel.Eq{"artist_id": artistID, "is_read": false}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: CountUnread - build select query: %v", ErrBuildQuery, err)
	}

	var count int64
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountUnread - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

// MarkRead помечает уведомление мастера прочитанным
func (r *Repository) MarkRead(ctx context.Context, artistID, notificationID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("notifications").
		Set("is_read", true).
		Where(squirrel.Eq{"id": notificationID, "artist_id": artistID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: MarkRead - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: MarkRead - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: MarkRead - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrNotificationNotFound
	}

	return nil
}
