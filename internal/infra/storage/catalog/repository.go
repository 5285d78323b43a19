package catalog

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/TSM-StudioService/internal/domain"
	"github.com/m04kA/TSM-StudioService/pkg/dbmetrics"
	"github.com/m04kA/TSM-StudioService/pkg/psqlbuilder"
)

// Repository репозиторий для справочных данных студии: мастера, клиенты, услуги
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория справочника
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetArtist получает мастера по ID
func (r *Repository) GetArtist(ctx context.Context, id int64) (*domain.Artist, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "email", "created_at").
		From("artists").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetArtist - build select query: %v", ErrBuildQuery, err)
	}

	var artist domain.Artist
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&artist.ID,
		&artist.Name,
		&artist.Email,
		&createdAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrArtistNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetArtist - scan artist: %v", ErrScanRow, err)
	}

	artist.CreatedAt = createdAt.Time

	return &artist, nil
}

// GetClient получает клиента по ID
func (r *Repository) GetClient(ctx context.Context, id int64) (*domain.Client, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "email", "phone", "created_at").
		From("clients").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetClient - build select query: %v", ErrBuildQuery, err)
	}

	var client domain.Client
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&client.ID,
		&client.Name,
		&client.Email,
		&client.Phone,
		&createdAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrClientNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetClient - scan client: %v", ErrScanRow, err)
	}

	client.CreatedAt = createdAt.Time

	return &client, nil
}

// GetService получает услугу по ID
func (r *Repository) GetService(ctx context.Context, id int64) (*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "duration_minutes", "deposit_amount", "created_at").
		From("services").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetService - build select query: %v", ErrBuildQuery, err)
	}

	var service domain.Service
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&service.ID,
		&service.Name,
		&service.DurationMinutes,
		&service.DepositAmount,
		&createdAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrServiceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetService - scan service: %v", ErrScanRow, err)
	}

	service.CreatedAt = createdAt.Time

	return &service, nil
}
