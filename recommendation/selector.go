// Package recommendation selects flowers for a combination and describes the result.
//
// The functions in this package are pure: the catalog snapshot and the random source are passed in by
// the caller, so a single request never shares state with another one.
package recommendation

import (
	"math/rand/v2"

	"kkotdam/models"
)

// TargetCount is the number of flowers a combination aims for
const TargetCount = 3

// Random is the source used to draw flowers for the random fill.
// *rand.Rand from math/rand/v2 satisfies it.
type Random interface {
	IntN(n int) int
}

// globalRandom draws from the goroutine-safe top-level generator
type globalRandom struct{}

func (globalRandom) IntN(n int) int {
	return rand.IntN(n)
}

// Select picks flowers from catalog.
// Included flowers come first in the caller's order (unknown ids are ignored), then the result is
// filled up to target with flowers drawn uniformly without replacement from the catalog entries that
// are neither included nor excluded. Included flowers are never truncated, and an id present in both
// lists is treated as included. The result may be shorter than target, or empty.
func Select(catalog []models.Flower, include, exclude []string, target int, rnd Random) []models.Flower {
	if rnd == nil {
		rnd = globalRandom{}
	}

	byID := make(map[string]models.Flower, len(catalog))
	for _, flower := range catalog {
		if _, exists := byID[flower.FlowerID]; !exists {
			byID[flower.FlowerID] = flower
		}
	}

	selected := make([]models.Flower, 0, max(target, len(include)))
	for _, id := range include {
		if flower, ok := byID[id]; ok {
			selected = append(selected, flower)
		}
	}

	if len(selected) >= target {
		return selected
	}

	skip := make(map[string]struct{}, len(include)+len(exclude))
	for _, id := range exclude {
		skip[id] = struct{}{}
	}
	for _, id := range include {
		skip[id] = struct{}{}
	}

	pool := make([]models.Flower, 0, len(catalog))
	for _, flower := range catalog {
		if _, skipped := skip[flower.FlowerID]; !skipped {
			pool = append(pool, flower)
		}
	}

	// partial Fisher-Yates: swap the drawn entry out of the live window
	for len(selected) < target && len(pool) > 0 {
		i := rnd.IntN(len(pool))
		selected = append(selected, pool[i])
		last := len(pool) - 1
		pool[i] = pool[last]
		pool = pool[:last]
	}

	return selected
}
