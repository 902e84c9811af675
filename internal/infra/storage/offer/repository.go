package offer

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/LeesureYatchs/Leisure-Yatchs/internal/domain"
	"github.com/LeesureYatchs/Leisure-Yatchs/pkg/dbmetrics"
	"github.com/LeesureYatchs/Leisure-Yatchs/pkg/psqlbuilder"
)

var offerColumns = []string{
	"id",
	"yacht_id",
	"title",
	"discount_type",
	"discount_value",
	"start_date",
	"end_date",
	"status",
	"created_at",
	"updated_at",
}

// Repository persists promotional offers
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository creates an offer repository on the given executor
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a new offer and fills in the generated fields
func (r *Repository) Create(ctx context.Context, offer *domain.Offer) (*domain.Offer, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("offers").
		Columns(
			"yacht_id",
			"title",
			"discount_type",
			"discount_value",
			"start_date",
			"end_date",
			"status",
		).
		Values(
			offer.YachtID,
			offer.Title,
			offer.DiscountType,
			offer.DiscountValue,
			offer.StartDate,
			offer.EndDate,
			offer.Status,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&offer.ID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	offer.CreatedAt = createdAt.Time
	offer.UpdatedAt = updatedAt.Time

	return offer, nil
}

// GetByID fetches a single offer by its ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Offer, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(offerColumns...).
		From("offers").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	offer, err := scanOffer(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrOfferNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan offer: %v", ErrScanRow, err)
	}

	return offer, nil
}

// List fetches offers matching the filter, newest first
func (r *Repository) List(ctx context.Context, filter domain.OffersFilter) ([]*domain.Offer, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(offerColumns...).
		From("offers").
		OrderBy("created_at DESC")

	if filter.YachtID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"yacht_id": *filter.YachtID})
	}
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	}
	if filter.LiveAfter != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"end_date": *filter.LiveAfter})
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

	offers := make([]*domain.Offer, 0)
	for rows.Next() {
		offer, err := scanOffer(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		offers = append(offers, offer)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return offers, nil
}

// GetLiveForYacht fetches active offers for a yacht whose date range
// contains the given day, best discount first by creation time.
func (r *Repository) GetLiveForYacht(ctx context.Context, yachtID int64, date time.Time) ([]*domain.Offer, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(offerColumns...).
		From("offers").
		Where(squirrel.Eq{"yacht_id": yachtID}).
		Where(squirrel.Eq{"status": domain.OfferActive}).
		Where(squirrel.LtOrEq{"start_date": date}).
		Where(squirrel.GtOrEq{"end_date": date}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetLiveForYacht - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetLiveForYacht - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	offers := make([]*domain.Offer, 0)
	for rows.Next() {
		offer, err := scanOffer(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetLiveForYacht - scan row: %v", ErrScanRow, err)
		}
		offers = append(offers, offer)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetLiveForYacht - rows error: %v", ErrScanRow, err)
	}

	return offers, nil
}

// CountActive returns the number of offers currently marked active
func (r *Repository) CountActive(ctx context.Context) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("offers").
		Where(squirrel.Eq{"status": domain.OfferActive}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: CountActive - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountActive - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

// UpdateStatus flips an offer between active and inactive
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.OfferStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("offers").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrOfferNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanOffer(row rowScanner) (*domain.Offer, error) {
	var offer domain.Offer
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&offer.ID,
		&offer.YachtID,
		&offer.Title,
		&offer.DiscountType,
		&offer.DiscountValue,
		&offer.StartDate,
		&offer.EndDate,
		&offer.Status,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	offer.CreatedAt = createdAt.Time
	offer.UpdatedAt = updatedAt.Time

	return &offer, nil
}
