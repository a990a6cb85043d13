// Package entropy wraps a single pseudorandom generator value as a shared,
// addressable handle with deterministic reproducibility as the central
// guarantee: the same seed, or the same decoded snapshot, always yields a
// bit-identical future output sequence.
//
// The package is written once against a generator capability set and
// instantiated per concrete algorithm; see the chacha and shake packages for
// the algorithms shipped with this module.
package entropy

// Source is the output capability of a generator.
//
// Fill always succeeds for the algorithms this module targets. TryFill is the
// fallible variant: an algorithm that cannot satisfy a request reports a
// structured error instead of producing short or repeated output. Every call
// advances the generator's position; there is no buffering or caching.
type Source interface {
	Uint32() uint32
	Uint64() uint64
	Fill(dst []byte)
	TryFill(dst []byte) error
}

// Generator is the full capability a pointer type *T must satisfy to be
// wrapped by Global. It is a capability set, not a hierarchy: any algorithm
// implementing it can be substituted without changing the wrapper.
//
// The seed type S is a fixed-size byte array defined by the algorithm, so
// deterministic construction from a wrong-length seed does not compile.
// ReseedBytes is the raw-byte path used by the entropy-bootstrap and spawn
// construction flows; callers must supply exactly SeedSize bytes.
type Generator[T, S any] interface {
	*T
	Source

	// Reseed reinitializes the generator from seed, discarding all prior
	// state. Two generators reseeded with identical seeds produce identical
	// future output sequences.
	Reseed(seed S)

	// ReseedBytes is Reseed over raw bytes. len(seed) must equal SeedSize;
	// anything else is a caller bug and panics.
	ReseedBytes(seed []byte)

	// SeedSize is the fixed seed length in bytes. It is part of the
	// algorithm's identity.
	SeedSize() int

	// State captures the complete internal representation: the seed material
	// in use, the stream selector, and the position counter. Encoding only
	// the seed would not reproduce a generator that has already emitted
	// output.
	State() Record

	// Restore replaces the generator's state with a previously captured
	// record. A record that is inconsistent with the algorithm fails with a
	// structured error and leaves the generator unchanged.
	Restore(rec Record) error

	// Equal reports exact state equality, ignoring any derived caches.
	Equal(other *T) bool
}
