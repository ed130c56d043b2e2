package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/NitinV84/couch-matcher/internal/domain"
	"github.com/jmoiron/sqlx"
)

type SofaRepo struct {
	db *sqlx.DB
}

func NewSofaRepo(db *sqlx.DB) *SofaRepo {
	return &SofaRepo{db: db}
}

// Insert persists a new sofa. The original price column is always recomputed
// from price and discount here, whatever the passed struct contains.
func (r *SofaRepo) Insert(ctx context.Context, sofa domain.Sofa) (domain.Sofa, error) {
	sofa.OriginalPrice = domain.OriginalPriceFor(sofa.Price, sofa.Discount)

	query := `INSERT INTO sofas (name, description, price, original_price, discount, quantity, image_key)
			VALUES (:name, :description, :price, :original_price, :discount, :quantity, :image_key)
			RETURNING id, created_at`
	rows, err := r.db.NamedQueryContext(ctx, query, sofa)
	if err != nil {
		return domain.Sofa{}, fmt.Errorf("inserting sofa %q, %w", sofa.Name, err)
	}
	defer rows.Close()

	if !rows.Next() {
		return domain.Sofa{}, fmt.Errorf("inserting sofa %q, no id returned", sofa.Name)
	}
	if err := rows.Scan(&sofa.ID, &sofa.CreatedAt); err != nil {
		return domain.Sofa{}, fmt.Errorf("scanning inserted sofa id, %w", err)
	}

	return sofa, nil
}

func (r *SofaRepo) Get(ctx context.Context, id int64) (domain.Sofa, error) {
	query := selectColumns + ` FROM sofas WHERE id = $1`
	sofa := &domain.Sofa{}
	err := r.db.GetContext(ctx, sofa, query, id)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return domain.Sofa{}, fmt.Errorf("sofa %d not found, %w", id, domain.ErrRecordNotFound)
		default:
			return domain.Sofa{}, fmt.Errorf("getting sofa %d, %w", id, err)
		}
	}

	return *sofa, nil
}

// GetAll returns the full catalog in insertion order. Rankers rely on this
// order as the tie-break for equal similarity scores.
func (r *SofaRepo) GetAll(ctx context.Context) ([]domain.Sofa, error) {
	query := selectColumns + ` FROM sofas ORDER BY id`
	var sofas []domain.Sofa
	err := r.db.SelectContext(ctx, &sofas, query)
	if err != nil {
		return nil, fmt.Errorf("listing sofas, %w", err)
	}

	return sofas, nil
}

func (r *SofaRepo) FilterByMaxPrice(ctx context.Context, budget float64) ([]domain.Sofa, error) {
	query := selectColumns + ` FROM sofas WHERE original_price <= $1 ORDER BY id`
	var sofas []domain.Sofa
	err := r.db.SelectContext(ctx, &sofas, query, budget)
	if err != nil {
		return nil, fmt.Errorf("filtering sofas by budget %.2f, %w", budget, err)
	}

	return sofas, nil
}

// FilterByClass matches on the class label stored inside the features column.
func (r *SofaRepo) FilterByClass(ctx context.Context, label string) ([]domain.Sofa, error) {
	query := selectColumns + ` FROM sofas WHERE features->>'class_name' = $1 ORDER BY id`
	var sofas []domain.Sofa
	err := r.db.SelectContext(ctx, &sofas, query, label)
	if err != nil {
		return nil, fmt.Errorf("filtering sofas by class %q, %w", label, err)
	}

	return sofas, nil
}

// UpdateFeatures attaches an extracted feature record to an existing sofa.
// Items are created without features and receive them exactly once.
func (r *SofaRepo) UpdateFeatures(ctx context.Context, id int64, record domain.FeatureRecord) error {
	query := `UPDATE sofas SET features = $1, descriptors = $2 WHERE id = $3`
	res, err := r.db.ExecContext(ctx, query, record, record.Descriptors, id)
	if err != nil {
		return fmt.Errorf("updating features for sofa %d, %w", id, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking update result for sofa %d, %w", id, err)
	}
	if affected == 0 {
		return fmt.Errorf("sofa %d vanished before feature update, %w", id, domain.ErrRecordNotFound)
	}

	return nil
}

func (r *SofaRepo) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM sofas WHERE id = $1`
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting sofa %d, %w", id, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking delete result for sofa %d, %w", id, err)
	}
	if affected == 0 {
		return fmt.Errorf("sofa %d not found, %w", id, domain.ErrRecordNotFound)
	}

	return nil
}

const selectColumns = `SELECT id, name, description, price, original_price, discount, quantity, image_key, features, descriptors, created_at`
