package review

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/LeesureYatchs/Leisure-Yatchs/internal/domain"
	"github.com/LeesureYatchs/Leisure-Yatchs/pkg/dbmetrics"
	"github.com/LeesureYatchs/Leisure-Yatchs/pkg/psqlbuilder"
)

var reviewColumns = []string{
	"id",
	"yacht_id",
	"customer_name",
	"rating",
	"comment",
	"status",
	"created_at",
	"updated_at",
}

// Repository persists customer reviews
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository creates a review repository on the given executor
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a new review and fills in the generated fields
func (r *Repository) Create(ctx context.Context, review *domain.Review) (*domain.Review, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("reviews").
		Columns(
			"yacht_id",
			"customer_name",
			"rating",
			"comment",
			"status",
		).
		Values(
			review.YachtID,
			review.CustomerName,
			review.Rating,
			review.Comment,
			review.Status,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&review.ID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	review.CreatedAt = createdAt.Time
	review.UpdatedAt = updatedAt.Time

	return review, nil
}

// GetByID fetches a single review by its ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Review, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(reviewColumns...).
		From("reviews").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	review, err := scanReview(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrReviewNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan review: %v", ErrScanRow, err)
	}

	return review, nil
}

// List fetches reviews matching the filter, newest first
func (r *Repository) List(ctx context.Context, filter domain.ReviewsFilter) ([]*domain.Review, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(reviewColumns...).
		From("reviews").
		OrderBy("created_at DESC")

	if filter.YachtID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"yacht_id": *filter.YachtID})
	}
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
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

	reviews := make([]*domain.Review, 0)
	for rows.Next() {
		review, err := scanReview(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		reviews = append(reviews, review)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return reviews, nil
}

// UpdateStatus moves a review through moderation
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.ReviewStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("reviews").
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
		return ErrReviewNotFound
	}

	return nil
}

// AverageRatingForYacht computes the mean approved rating for a yacht.
// Returns 0 with no error when the yacht has no approved reviews yet.
func (r *Repository) AverageRatingForYacht(ctx context.Context, yachtID int64) (float64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COALESCE(AVG(rating), 0)").
		From("reviews").
		Where(squirrel.Eq{"yacht_id": yachtID}).
		Where(squirrel.Eq{"status": domain.ReviewApproved}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: AverageRatingForYacht - build select query: %v", ErrBuildQuery, err)
	}

	var avg float64
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&avg); err != nil {
		return 0, fmt.Errorf("%w: AverageRatingForYacht - scan average: %v", ErrScanRow, err)
	}

	return avg, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanReview(row rowScanner) (*domain.Review, error) {
	var review domain.Review
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&review.ID,
		&review.YachtID,
		&review.CustomerName,
		&review.Rating,
		&review.Comment,
		&review.Status,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	review.CreatedAt = createdAt.Time
	review.UpdatedAt = updatedAt.Time

	return &review, nil
}
