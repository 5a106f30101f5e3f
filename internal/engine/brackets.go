package engine

import (
	"math/rand"
	"strings"

	"github.com/posykit/posy/pkg/domain"
)

// Wrap surrounds text with a randomly drawn number of weight-bracket
// layers. The layer count is uniform over [r.Min, r.Max]; zero layers
// returns the text unchanged. Negative bounds and inverted ranges are
// clamped the same way domain.Node.Normalize clamps them, so an unclean
// range never panics here.
func Wrap(text string, r domain.BracketRange, rng *rand.Rand) string {
	if r.Min < 0 {
		r.Min = 0
	}
	if r.Max < r.Min {
		r.Max = r.Min
	}

	k := r.Min
	if r.Max > r.Min {
		k += rng.Intn(r.Max - r.Min + 1)
	}
	if k == 0 {
		return text
	}

	var b strings.Builder
	b.Grow(len(text) + 2*k)
	b.WriteString(strings.Repeat("{", k))
	b.WriteString(text)
	b.WriteString(strings.Repeat("}", k))
	return b.String()
}
