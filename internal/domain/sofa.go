package domain

import (
	"time"
)

type Sofa struct {
	ID            int64          `db:"id" json:"id"`
	Name          string         `db:"name" json:"name"`
	Description   string         `db:"description" json:"description"`
	Price         float64        `db:"price" json:"price"`
	OriginalPrice float64        `db:"original_price" json:"original_price"`
	Discount      float64        `db:"discount" json:"discount"`
	Quantity      int            `db:"quantity" json:"quantity"`
	ImageKey      string         `db:"image_key" json:"image"`
	Features      *FeatureRecord `db:"features" json:"-"`
	Descriptors   DescriptorBlob `db:"descriptors" json:"-"`
	CreatedAt     time.Time      `db:"created_at" json:"-"`
}

// OriginalPriceFor is the only way original price is ever produced. It is
// recomputed from price and discount on every write, never taken from input.
func OriginalPriceFor(price, discount float64) float64 {
	return price - (price * discount / 100)
}

// Match attaches a transient similarity score to a catalog item. Scores are
// percentages in [0, 100] and are never persisted.
type Match struct {
	Sofa  Sofa    `json:"sofa"`
	Score float64 `json:"similarity_score"`
}
