package ranker

import (
	"context"
	"log/slog"
	"math"
	"strings"

	"github.com/NitinV84/couch-matcher/internal/domain"
)

const (
	classWeight         = 0.4
	colorNameWeight     = 0.3
	colorDistanceWeight = 0.3
)

// Weighted scores candidates of the classification+color strategy. Only
// candidates whose class label equals the query's are scored at all; the
// rest never enter the result set.
type Weighted struct {
	log *slog.Logger
}

func NewWeighted(log *slog.Logger) *Weighted {
	return &Weighted{log: log.WithGroup("RANKER")}
}

func (r *Weighted) Rank(ctx context.Context, query domain.FeatureRecord, candidates []domain.Sofa) ([]domain.Match, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	matches := rankParallel(candidates, func(c domain.Sofa) (float64, bool) {
		if c.Features == nil {
			return 0, false
		}
		if c.Features.ClassLabel != query.ClassLabel {
			return 0, false
		}

		score := classWeight
		score += colorNameWeight * colorNameMatch(query.Color, c.Features.Color)
		score += colorDistanceWeight * colorDistanceScore(query.Color, c.Features.Color)

		total := 100 * score
		if total > 100 {
			total = 100
		}

		return total, true
	})

	return matches, nil
}

func colorNameMatch(a, b *domain.DominantColor) float64 {
	if a == nil || b == nil {
		return 0
	}
	if strings.EqualFold(a.Name, b.Name) {
		return 1
	}
	return 0
}

// colorDistanceScore maps the Euclidean distance between the normalized RGB
// triples into [0, 1], where 1 is an exact color match.
func colorDistanceScore(a, b *domain.DominantColor) float64 {
	if a == nil || b == nil {
		return 0
	}

	var sum float64
	for i := 0; i < 3; i++ {
		d := float64(a.RGB[i])/255 - float64(b.RGB[i])/255
		sum += d * d
	}

	return math.Max(0, 1-math.Sqrt(sum))
}
