// Package commercials selects filler content for break insertion and
// end-of-block padding.
package commercials

import (
	"math/rand"

	"github.com/stwalsh4118/rabbitears/internal/models"
)

// FilterEligible computes the subset of the filler pool eligible to air
// against the current program's category policy. With no policy at all,
// everything is eligible. A non-empty allow list wins over the deny list;
// otherwise eligibility is "category not denied". A blank category on a
// filler item means universal.
func FilterEligible(pool []*models.Media, allowed, excluded []string) []*models.Media {
	if len(allowed) == 0 && len(excluded) == 0 {
		return pool
	}

	eligible := make([]*models.Media, 0, len(pool))
	for _, item := range pool {
		category := item.CategoryName()
		if len(allowed) > 0 {
			if containsCategory(allowed, category) {
				eligible = append(eligible, item)
			}
			continue
		}
		if !containsCategory(excluded, category) {
			eligible = append(eligible, item)
		}
	}
	return eligible
}

// Picker draws commercials uniformly at random from an eligible pool.
// The random source is injected so tests can run deterministically.
type Picker struct {
	rng *rand.Rand
}

// NewPicker creates a Picker backed by the given random source
func NewPicker(rng *rand.Rand) *Picker {
	return &Picker{rng: rng}
}

// Pick returns one item uniformly at random, or nil for an empty pool.
// An empty pool is never an error: break insertion fails open and the main
// program resumes uninterrupted.
func (p *Picker) Pick(pool []*models.Media) *models.Media {
	if len(pool) == 0 {
		return nil
	}
	return pool[p.rng.Intn(len(pool))]
}

func containsCategory(categories []string, category string) bool {
	for _, c := range categories {
		if c == category {
			return true
		}
	}
	return false
}
