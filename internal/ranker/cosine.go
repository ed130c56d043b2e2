package ranker

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/NitinV84/couch-matcher/internal/domain"
)

// acceptanceThreshold is the minimum cosine similarity a candidate must reach
// to appear in the result set.
const acceptanceThreshold = 0.6

// Cosine scores candidates of the descriptor strategy. A stored blob whose
// length is not a multiple of the descriptor width is skipped with a log
// line; one bad row must not abort the whole query.
type Cosine struct {
	log *slog.Logger
}

func NewCosine(log *slog.Logger) *Cosine {
	return &Cosine{log: log.WithGroup("RANKER")}
}

func (r *Cosine) Rank(ctx context.Context, query domain.FeatureRecord, candidates []domain.Sofa) ([]domain.Match, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if len(query.Descriptors) == 0 {
		// no keypoints in the query image, nothing can match
		return nil, nil
	}
	qv, err := query.Descriptors.Floats()
	if err != nil {
		return nil, fmt.Errorf("decoding query descriptors, %w", err)
	}

	matches := rankParallel(candidates, func(c domain.Sofa) (float64, bool) {
		if len(c.Descriptors) == 0 {
			return 0, false
		}

		cv, err := c.Descriptors.Floats()
		if err != nil {
			r.log.Error("skipping candidate with corrupt descriptor blob",
				slog.Int64("sofa_id", c.ID),
				slog.String("err", err.Error()),
			)
			return 0, false
		}

		similarity := cosineTruncated(qv, cv)
		if similarity < acceptanceThreshold {
			return 0, false
		}
		if similarity > 1 {
			similarity = 1
		}

		return similarity * 100, true
	})

	return matches, nil
}

// cosineTruncated compares two flat descriptor vectors. Differing lengths are
// handled by truncating both to the shorter one, no padding.
func cosineTruncated(a, b []float64) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	if n == 0 {
		return 0
	}

	var dot, na, nb float64
	for i := 0; i < n; i++ {
		dot += a[i] * b[i]
		na += a[i] * a[i]
		nb += b[i] * b[i]
	}
	if na == 0 || nb == 0 {
		return 0
	}

	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}
