// Package ranker turns a query feature record and a candidate set into a
// totally ordered, thresholded list of matches. Candidates are scored
// independently in parallel; the final sort is stable, so candidates with
// equal scores keep their catalog insertion order.
package ranker

import (
	"context"
	"sort"
	"sync"

	"github.com/NitinV84/couch-matcher/internal/domain"
)

type Ranker interface {
	Rank(ctx context.Context, query domain.FeatureRecord, candidates []domain.Sofa) ([]domain.Match, error)
}

// scoreFunc scores one candidate. ok=false excludes the candidate from the
// result set (pre-filter miss, below threshold, unusable stored features).
type scoreFunc func(candidate domain.Sofa) (score float64, ok bool)

func rankParallel(candidates []domain.Sofa, score scoreFunc) []domain.Match {
	type result struct {
		score float64
		ok    bool
	}

	results := make([]result, len(candidates))

	var wg sync.WaitGroup
	for i := range candidates {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			s, ok := score(candidates[i])
			results[i] = result{score: s, ok: ok}
		}(i)
	}
	wg.Wait()

	// collect in input order, then sort stably: ties stay in insertion order
	matches := make([]domain.Match, 0, len(candidates))
	for i, r := range results {
		if !r.ok {
			continue
		}
		matches = append(matches, domain.Match{Sofa: candidates[i], Score: r.score})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	return matches
}
