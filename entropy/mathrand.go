package entropy

import (
	"math/rand"
)

type mathSource struct {
	src Source
}

// Assert that mathSource implements rand.Source64.
var _ rand.Source64 = mathSource{}

// Seed is a no-op: the underlying source is reseeded through its own typed
// construction paths, never through math/rand.
func (mathSource) Seed(int64) {}

func (m mathSource) Int63() int64 {
	return int64(m.src.Uint64() >> 1)
}

func (m mathSource) Uint64() uint64 {
	return m.src.Uint64()
}

// NewMathSource adapts a source to math/rand.Source64, so a wrapped
// generator can drive stdlib sampling and shuffling while all output still
// flows through (and advances) the single contained generator.
func NewMathSource(src Source) rand.Source {
	return mathSource{src: src}
}
