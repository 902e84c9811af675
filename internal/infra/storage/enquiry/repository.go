package enquiry

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/LeesureYatchs/Leisure-Yatchs/internal/domain"
	"github.com/LeesureYatchs/Leisure-Yatchs/pkg/dbmetrics"
	"github.com/LeesureYatchs/Leisure-Yatchs/pkg/psqlbuilder"
)

var enquiryColumns = []string{
	"id",
	"name",
	"email",
	"phone",
	"subject",
	"message",
	"status",
	"created_at",
	"updated_at",
}

// Repository persists contact-form enquiries
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository creates an enquiry repository on the given executor
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a new enquiry and fills in the generated fields
func (r *Repository) Create(ctx context.Context, enquiry *domain.Enquiry) (*domain.Enquiry, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("enquiries").
		Columns(
			"name",
			"email",
			"phone",
			"subject",
			"message",
			"status",
		).
		Values(
			enquiry.Name,
			enquiry.Email,
			enquiry.Phone,
			enquiry.Subject,
			enquiry.Message,
			enquiry.Status,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&enquiry.ID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	enquiry.CreatedAt = createdAt.Time
	enquiry.UpdatedAt = updatedAt.Time

	return enquiry, nil
}

// GetByID fetches a single enquiry by its ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Enquiry, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(enquiryColumns...).
		From("enquiries").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	enquiry, err := scanEnquiry(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrEnquiryNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan enquiry: %v", ErrScanRow, err)
	}

	return enquiry, nil
}

// List fetches enquiries, optionally narrowed by status, newest first
func (r *Repository) List(ctx context.Context, status *domain.EnquiryStatus) ([]*domain.Enquiry, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(enquiryColumns...).
		From("enquiries").
		OrderBy("created_at DESC")

	if status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *status})
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

	enquiries := make([]*domain.Enquiry, 0)
	for rows.Next() {
		enquiry, err := scanEnquiry(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		enquiries = append(enquiries, enquiry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return enquiries, nil
}

// UpdateStatus moves an enquiry through triage
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.EnquiryStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("enquiries").
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
		return ErrEnquiryNotFound
	}

	return nil
}

// CountPending returns the number of enquiries awaiting a response
func (r *Repository) CountPending(ctx context.Context) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("enquiries").
		Where(squirrel.Eq{"status": domain.EnquiryPending}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: CountPending - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountPending - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanEnquiry(row rowScanner) (*domain.Enquiry, error) {
	var enquiry domain.Enquiry
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&enquiry.ID,
		&enquiry.Name,
		&enquiry.Email,
		&enquiry.Phone,
		&enquiry.Subject,
		&enquiry.Message,
		&enquiry.Status,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	enquiry.CreatedAt = createdAt.Time
	enquiry.UpdatedAt = updatedAt.Time

	return &enquiry, nil
}
