package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-parent-profile/internal/models"
)

const childColumns = `id, parent_id, name, birth_date, created_at, updated_at`

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// ChildReadRepository reads children.
type ChildReadRepository struct {
	base
}

func NewChildReadRepository(db *sqlx.DB, txGetter TxGetter) *ChildReadRepository {
	return &ChildReadRepository{base{db: db, txGetter: txGetter}}
}

// GetByID returns the child with id, or nil when there is none.
func (r *ChildReadRepository) GetByID(ctx context.Context, id int64) (*models.Child, error) {
	query := `SELECT ` + childColumns + ` FROM children WHERE id = $1`

	var child models.Child
	err := sqlx.GetContext(ctx, r.executor(ctx), &child, query, id)

	logQuery(query, []any{id}, child, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select child: %w", err)
	}
	return &child, nil
}

// List returns the children of filter.ParentID narrowed by the optional
// name substring and created_at bounds, ordered by id.
func (r *ChildReadRepository) List(ctx context.Context, filter models.ChildFilter) ([]models.Child, error) {
	query := `
		SELECT ` + childColumns + `
		FROM children
		WHERE parent_id = $1
		  AND ($2::TEXT IS NULL OR name ILIKE '%' || $2 || '%')
		  AND ($3::TIMESTAMP IS NULL OR created_at >= $3)
		  AND ($4::TIMESTAMP IS NULL OR created_at <= $4)
		ORDER BY id
	`

	var name *string
	if filter.Name != nil {
		escaped := likeEscaper.Replace(*filter.Name)
		name = &escaped
	}
	var after, before *time.Time
	if filter.AddedAfter != nil {
		t := models.StripZone(*filter.AddedAfter)
		after = &t
	}
	if filter.AddedBefore != nil {
		t := models.StripZone(*filter.AddedBefore)
		before = &t
	}
	args := []any{filter.ParentID, name, after, before}

	children := []models.Child{}
	err := sqlx.SelectContext(ctx, r.executor(ctx), &children, query, args...)

	logQuery(query, args, len(children), err)

	if err != nil {
		return nil, fmt.Errorf("select children: %w", err)
	}
	return children, nil
}

// ChildWriteRepository creates and modifies children.
type ChildWriteRepository struct {
	base
}

func NewChildWriteRepository(db *sqlx.DB, txGetter TxGetter) *ChildWriteRepository {
	return &ChildWriteRepository{base{db: db, txGetter: txGetter}}
}

// Create inserts a child and returns the stored row.
func (r *ChildWriteRepository) Create(ctx context.Context, child models.ChildCreate) (*models.Child, error) {
	query := `
		INSERT INTO children (parent_id, name, birth_date, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING ` + childColumns
	args := []any{child.ParentID, child.Name, child.DateOfBirth}

	var created models.Child
	err := sqlx.GetContext(ctx, r.executor(ctx), &created, query, args...)

	logQuery(query, args, created, err)

	if err != nil {
		return nil, fmt.Errorf("insert child: %w", err)
	}
	return &created, nil
}

// Update writes name and birth_date of child and returns the stored row, or
// nil when the child no longer belongs to its parent.
func (r *ChildWriteRepository) Update(ctx context.Context, child *models.Child) (*models.Child, error) {
	query := `
		UPDATE children
		SET name = $3, birth_date = $4, updated_at = NOW()
		WHERE id = $1 AND parent_id = $2
		RETURNING ` + childColumns
	args := []any{child.ID, child.ParentID, child.Name, child.DateOfBirth}

	var updated models.Child
	err := sqlx.GetContext(ctx, r.executor(ctx), &updated, query, args...)

	logQuery(query, args, updated, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("update child: %w", err)
	}
	return &updated, nil
}
