package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-parent-profile/internal/models"
)

const parentColumns = `id, email, hashed_password, first_name, last_name, age, address, city,
	country, pincode, profile_photo, is_active, created_at, updated_at`

// ParentReadRepository reads parents.
type ParentReadRepository struct {
	base
}

func NewParentReadRepository(db *sqlx.DB, txGetter TxGetter) *ParentReadRepository {
	return &ParentReadRepository{base{db: db, txGetter: txGetter}}
}

// GetByID returns the parent with id, or nil when there is none.
func (r *ParentReadRepository) GetByID(ctx context.Context, id int64) (*models.Parent, error) {
	query := `SELECT ` + parentColumns + ` FROM parents WHERE id = $1`
	return r.getOne(ctx, query, id)
}

// GetByEmail returns the parent registered with email, or nil when there is none.
func (r *ParentReadRepository) GetByEmail(ctx context.Context, email string) (*models.Parent, error) {
	query := `SELECT ` + parentColumns + ` FROM parents WHERE email = $1`
	return r.getOne(ctx, query, email)
}

// GetWithChildren returns the parent with id and its children ordered by id.
func (r *ParentReadRepository) GetWithChildren(ctx context.Context, id int64) (*models.ParentWithChildren, error) {
	parent, err := r.GetByID(ctx, id)
	if err != nil || parent == nil {
		return nil, err
	}

	query := `SELECT ` + childColumns + ` FROM children WHERE parent_id = $1 ORDER BY id`

	children := []models.Child{}
	err = sqlx.SelectContext(ctx, r.executor(ctx), &children, query, id)
	logQuery(query, []any{id}, len(children), err)
	if err != nil {
		return nil, fmt.Errorf("select children: %w", err)
	}

	return &models.ParentWithChildren{Parent: *parent, Children: children}, nil
}

func (r *ParentReadRepository) getOne(ctx context.Context, query string, arg any) (*models.Parent, error) {
	var parent models.Parent
	err := sqlx.GetContext(ctx, r.executor(ctx), &parent, query, arg)

	logQuery(query, []any{arg}, parent.ID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select parent: %w", err)
	}
	return &parent, nil
}

// ParentWriteRepository creates and modifies parents.
type ParentWriteRepository struct {
	base
}

func NewParentWriteRepository(db *sqlx.DB, txGetter TxGetter) *ParentWriteRepository {
	return &ParentWriteRepository{base{db: db, txGetter: txGetter}}
}

// Create inserts an inactive parent. A taken email yields ErrDuplicate.
func (r *ParentWriteRepository) Create(ctx context.Context, email, hashedPassword string) (*models.Parent, error) {
	query := `
		INSERT INTO parents (email, hashed_password, is_active, created_at, updated_at)
		VALUES ($1, $2, FALSE, NOW(), NOW())
		RETURNING ` + parentColumns

	var parent models.Parent
	err := sqlx.GetContext(ctx, r.executor(ctx), &parent, query, email, hashedPassword)

	// The password hash stays out of the logs.
	logQuery(query, []any{email, "***"}, parent.ID, err)

	if isUniqueViolation(err) {
		return nil, ErrDuplicate
	}
	if err != nil {
		return nil, fmt.Errorf("insert parent: %w", err)
	}
	return &parent, nil
}

// Activate flips is_active to true. It reports false when the parent is
// absent or already active.
func (r *ParentWriteRepository) Activate(ctx context.Context, id int64) (bool, error) {
	query := `
		UPDATE parents
		SET is_active = TRUE, updated_at = NOW()
		WHERE id = $1 AND is_active = FALSE
	`

	res, err := r.executor(ctx).ExecContext(ctx, query, id)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logQuery(query, []any{id}, rowsAffected, err)

	if err != nil {
		return false, fmt.Errorf("activate parent: %w", err)
	}
	return rowsAffected == 1, nil
}

// Update writes the editable profile columns of parent and returns the
// stored row, or nil when the parent no longer exists.
func (r *ParentWriteRepository) Update(ctx context.Context, parent *models.Parent) (*models.Parent, error) {
	query := `
		UPDATE parents
		SET first_name = $2, last_name = $3, age = $4, address = $5, city = $6,
		    country = $7, pincode = $8, profile_photo = $9, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + parentColumns
	args := []any{
		parent.ID, parent.FirstName, parent.LastName, parent.Age, parent.Address,
		parent.City, parent.Country, parent.Pincode, parent.ProfilePhoto,
	}

	var updated models.Parent
	err := sqlx.GetContext(ctx, r.executor(ctx), &updated, query, args...)

	logQuery(query, args, updated.ID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("update parent: %w", err)
	}
	return &updated, nil
}
