package yacht

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/LeesureYatchs/Leisure-Yatchs/internal/domain"
	"github.com/LeesureYatchs/Leisure-Yatchs/pkg/dbmetrics"
	"github.com/LeesureYatchs/Leisure-Yatchs/pkg/psqlbuilder"
)

var yachtColumns = []string{
	"id",
	"name",
	"feet",
	"capacity",
	"cabins",
	"bedrooms",
	"restrooms",
	"hourly_price",
	"minimum_hours",
	"description",
	"amenities",
	"images",
	"category",
	"status",
	"views_count",
	"created_at",
	"updated_at",
}

// Repository persists yachts
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository creates a yacht repository on the given executor
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a new yacht and fills in the generated fields
func (r *Repository) Create(ctx context.Context, yacht *domain.Yacht) (*domain.Yacht, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("yachts").
		Columns(
			"name",
			"feet",
			"capacity",
			"cabins",
			"bedrooms",
			"restrooms",
			"hourly_price",
			"minimum_hours",
			"description",
			"amenities",
			"images",
			"category",
			"status",
		).
		Values(
			yacht.Name,
			yacht.Feet,
			yacht.Capacity,
			yacht.Cabins,
			yacht.Bedrooms,
			yacht.Restrooms,
			yacht.HourlyPrice,
			yacht.MinimumHours,
			yacht.Description,
			pq.StringArray(yacht.Amenities),
			pq.StringArray(yacht.Images),
			yacht.Category,
			yacht.Status,
		).
		Suffix("RETURNING id, views_count, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&yacht.ID,
		&yacht.ViewsCount,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	yacht.CreatedAt = createdAt.Time
	yacht.UpdatedAt = updatedAt.Time

	return yacht, nil
}

// GetByID fetches a single yacht by its ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Yacht, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(yachtColumns...).
		From("yachts").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	yacht, err := scanYacht(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrYachtNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan yacht: %v", ErrScanRow, err)
	}

	return yacht, nil
}

// List fetches yachts matching the filter, newest first
func (r *Repository) List(ctx context.Context, filter domain.YachtsFilter) ([]*domain.Yacht, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(yachtColumns...).
		From("yachts").
		OrderBy("created_at DESC")

	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	}
	if filter.Category != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"category": *filter.Category})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	yachts := make([]*domain.Yacht, 0)
	for rows.Next() {
		yacht, err := scanYacht(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		yachts = append(yachts, yacht)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return yachts, nil
}

// Update rewrites a yacht's listing fields
func (r *Repository) Update(ctx context.Context, yacht *domain.Yacht) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("yachts").
		Set("name", yacht.Name).
		Set("feet", yacht.Feet).
		Set("capacity", yacht.Capacity).
		Set("cabins", yacht.Cabins).
		Set("bedrooms", yacht.Bedrooms).
		Set("restrooms", yacht.Restrooms).
		Set("hourly_price", yacht.HourlyPrice).
		Set("minimum_hours", yacht.MinimumHours).
		Set("description", yacht.Description).
		Set("amenities", pq.StringArray(yacht.Amenities)).
		Set("images", pq.StringArray(yacht.Images)).
		Set("category", yacht.Category).
		Set("status", yacht.Status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": yacht.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrYachtNotFound
	}

	return nil
}

// IncrementViews bumps the yacht's view counter. Best-effort analytics:
// a missing row is still reported, but callers typically only log it.
func (r *Repository) IncrementViews(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("yachts").
		Set("views_count", squirrel.Expr("views_count + 1")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: IncrementViews - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: IncrementViews - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: IncrementViews - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrYachtNotFound
	}

	return nil
}

// Count returns the total number of yachts in the fleet
func (r *Repository) Count(ctx context.Context) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("yachts").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: Count - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: Count - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanYacht(row rowScanner) (*domain.Yacht, error) {
	var yacht domain.Yacht
	var amenities, images pq.StringArray
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&yacht.ID,
		&yacht.Name,
		&yacht.Feet,
		&yacht.Capacity,
		&yacht.Cabins,
		&yacht.Bedrooms,
		&yacht.Restrooms,
		&yacht.HourlyPrice,
		&yacht.MinimumHours,
		&yacht.Description,
		&amenities,
		&images,
		&yacht.Category,
		&yacht.Status,
		&yacht.ViewsCount,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	yacht.Amenities = amenities
	yacht.Images = images
	yacht.CreatedAt = createdAt.Time
	yacht.UpdatedAt = updatedAt.Time

	return &yacht, nil
}
