package entropy

import (
	"xdao.co/entropy/bootstrap"
)

// Global owns exactly one generator value and forwards all randomness
// requests to it unchanged. There is no empty or uninitialized
// representation: every constructor leaves a valid generator in place.
//
// The generator value is held by value and never aliased; Global values must
// not be copied after first use. Global performs no locking of its own — the
// embedding system is responsible for ensuring at most one mutator at a time.
type Global[T, S any, R Generator[T, S]] struct {
	gen T
}

// New wraps an already-constructed generator value verbatim.
func New[T, S any, R Generator[T, S]](gen T) *Global[T, S, R] {
	return &Global[T, S, R]{gen: gen}
}

// FromSeed constructs a wrapper deterministically. Two calls with identical
// seeds produce equal wrappers with identical future output sequences,
// across processes and platforms.
func FromSeed[T, S any, R Generator[T, S]](seed S) *Global[T, S, R] {
	g := &Global[T, S, R]{}
	R(&g.gen).Reseed(seed)
	return g
}

// FromEntropy constructs a wrapper non-deterministically, drawing the seed
// from boot. It panics if boot cannot supply secure bytes: a predictable
// wrapper masquerading as a non-deterministic one is worse than aborting, so
// there is no fallback to a weaker source and no partially seeded value ever
// escapes.
func FromEntropy[T, S any, R Generator[T, S]](boot bootstrap.Filler) *Global[T, S, R] {
	g := &Global[T, S, R]{}
	r := R(&g.gen)
	seed := make([]byte, r.SeedSize())
	bootstrap.MustFill(boot, seed)
	r.ReseedBytes(seed)
	return g
}

// Default is FromEntropy over the process-wide bootstrap source. Used when
// the owner supplies no explicit seed.
func Default[T, S any, R Generator[T, S]]() *Global[T, S, R] {
	return FromEntropy[T, S, R](bootstrap.Default())
}

// FromSource spawns a child wrapper seeded from an existing source, which
// may be a different algorithm. Exactly SeedSize bytes are drawn, advancing
// parent irreversibly: sequential spawns from the same parent never reuse
// seed bytes.
func FromSource[T, S any, R Generator[T, S]](parent Source) *Global[T, S, R] {
	g := &Global[T, S, R]{}
	r := R(&g.gen)
	seed := make([]byte, r.SeedSize())
	parent.Fill(seed)
	r.ReseedBytes(seed)
	return g
}

// FromSnapshot reconstructs a wrapper from a decoded record. The result is
// indistinguishable, by state and by future output, from the wrapper the
// record was captured from at the moment of capture.
func FromSnapshot[T, S any, R Generator[T, S]](rec Record) (*Global[T, S, R], error) {
	g := &Global[T, S, R]{}
	if err := R(&g.gen).Restore(rec); err != nil {
		return nil, err
	}
	return g, nil
}

// Reseed replaces the contained generator wholesale, as if freshly
// constructed by FromSeed. Prior state is fully discarded — no mixing — and
// the wrapper's identity is unchanged.
func (g *Global[T, S, R]) Reseed(seed S) {
	R(&g.gen).Reseed(seed)
}

// ReseedBytes is Reseed over raw bytes for embedders that receive seeds at a
// byte boundary (e.g., over RPC). It fails if len(seed) is not SeedSize.
func (g *Global[T, S, R]) ReseedBytes(seed []byte) error {
	r := R(&g.gen)
	if len(seed) != r.SeedSize() {
		return NewError(KindState, "ENT-STATE-002", "seed length does not match algorithm")
	}
	r.ReseedBytes(seed)
	return nil
}

// SeedSize returns the wrapped algorithm's fixed seed length in bytes.
func (g *Global[T, S, R]) SeedSize() int {
	return R(&g.gen).SeedSize()
}

func (g *Global[T, S, R]) Uint32() uint32 {
	return R(&g.gen).Uint32()
}

func (g *Global[T, S, R]) Uint64() uint64 {
	return R(&g.gen).Uint64()
}

func (g *Global[T, S, R]) Fill(dst []byte) {
	R(&g.gen).Fill(dst)
}

func (g *Global[T, S, R]) TryFill(dst []byte) error {
	return R(&g.gen).TryFill(dst)
}

// Snapshot captures the generator's complete current state — "now", not "at
// construction".
func (g *Global[T, S, R]) Snapshot() Record {
	return R(&g.gen).State()
}

// Restore replaces the generator's state with a previously captured record.
func (g *Global[T, S, R]) Restore(rec Record) error {
	return R(&g.gen).Restore(rec)
}

// Equal reports exact equality of the contained generator states. Two
// wrappers are equal only if their future output sequences are identical.
func (g *Global[T, S, R]) Equal(other *Global[T, S, R]) bool {
	if g == nil || other == nil {
		return g == other
	}
	return R(&g.gen).Equal(&other.gen)
}

// MarshalJSON encodes the wrapper as its snapshot record.
func (g *Global[T, S, R]) MarshalJSON() ([]byte, error) {
	return EncodeSnapshot(g.Snapshot())
}

// UnmarshalJSON decodes a snapshot record and restores the wrapper from it.
// On failure the wrapper is left unchanged.
func (g *Global[T, S, R]) UnmarshalJSON(b []byte) error {
	rec, err := DecodeSnapshot(b)
	if err != nil {
		return err
	}
	return R(&g.gen).Restore(rec)
}
