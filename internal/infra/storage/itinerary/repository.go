package itinerary

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/LeesureYatchs/Leisure-Yatchs/internal/domain"
	"github.com/LeesureYatchs/Leisure-Yatchs/pkg/dbmetrics"
	"github.com/LeesureYatchs/Leisure-Yatchs/pkg/psqlbuilder"
)

var itineraryColumns = []string{
	"id",
	"duration_label",
	"route_description",
	"created_at",
	"updated_at",
}

// Repository persists cruise itineraries
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository creates an itinerary repository on the given executor
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a new itinerary and fills in the generated fields
func (r *Repository) Create(ctx context.Context, itinerary *domain.Itinerary) (*domain.Itinerary, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("trip_itineraries").
		Columns(
			"duration_label",
			"route_description",
		).
		Values(
			itinerary.DurationLabel,
			itinerary.RouteDescription,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&itinerary.ID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	itinerary.CreatedAt = createdAt.Time
	itinerary.UpdatedAt = updatedAt.Time

	return itinerary, nil
}

// GetByID fetches a single itinerary by its ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Itinerary, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(itineraryColumns...).
		From("trip_itineraries").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	itinerary, err := scanItinerary(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrItineraryNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan itinerary: %v", ErrScanRow, err)
	}

	return itinerary, nil
}

// List fetches every itinerary ordered by duration label
func (r *Repository) List(ctx context.Context) ([]*domain.Itinerary, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(itineraryColumns...).
		From("trip_itineraries").
		OrderBy("duration_label ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	itineraries := make([]*domain.Itinerary, 0)
	for rows.Next() {
		itinerary, err := scanItinerary(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		itineraries = append(itineraries, itinerary)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return itineraries, nil
}

// Update rewrites an itinerary's label and route
func (r *Repository) Update(ctx context.Context, itinerary *domain.Itinerary) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("trip_itineraries").
		Set("duration_label", itinerary.DurationLabel).
		Set("route_description", itinerary.RouteDescription).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": itinerary.ID}).
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
		return ErrItineraryNotFound
	}

	return nil
}

// Delete removes an itinerary
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("trip_itineraries").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrItineraryNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanItinerary(row rowScanner) (*domain.Itinerary, error) {
	var (
		itinerary domain.Itinerary
		createdAt sql.NullTime
		updatedAt sql.NullTime
	)

	err := row.Scan(
		&itinerary.ID,
		&itinerary.DurationLabel,
		&itinerary.RouteDescription,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	itinerary.CreatedAt = createdAt.Time
	itinerary.UpdatedAt = updatedAt.Time

	return &itinerary, nil
}
