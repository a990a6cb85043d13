// Package chacha implements the ChaCha20 generator algorithm behind the
// entropy wrapper: a counter-based stream cipher whose keystream is the
// output sequence.
//
// The generator's identity is the state triple {seed, stream, word position}.
// The keystream cipher itself is a derived cache, rebuilt on demand, so state
// capture and comparison never depend on it.
package chacha

import (
	"encoding/binary"

	"golang.org/x/crypto/chacha20"

	"xdao.co/entropy/entropy"
)

// Algorithm is the name recorded in snapshots produced by this package.
const Algorithm = "chacha20"

// SeedSize is the fixed seed length in bytes. It is part of the algorithm's
// identity: construction from any other length does not compile.
const SeedSize = 32

// Seed is the algorithm's fixed-size seed.
type Seed [SeedSize]byte

// maxWords is the keystream capacity in 32-bit words: 2^32 blocks of 16
// words each. Requests past this point fail via TryFill rather than wrapping
// the block counter.
const maxWords = uint64(1) << 36

const wordsPerBlock = 16

// Source is a ChaCha20 keystream generator with explicit, serializable
// position tracking.
//
// Output is produced in 32-bit words. Byte fills that end mid-word discard
// the remainder of that word, so the position counter always lands on a word
// boundary; that counter is the unit of state fidelity.
//
// The zero value is a valid generator seeded with all-zero bytes, but
// callers should construct through New, WithStream, or the entropy package's
// construction surface.
type Source struct {
	seed    Seed
	stream  uint64
	wordPos uint64

	// cipher is a derived cache of the state triple above; nil until output
	// is next requested. Excluded from equality and snapshots.
	cipher *chacha20.Cipher
}

// New returns a generator deterministically constructed from seed, on
// stream 0.
func New(seed Seed) Source {
	return Source{seed: seed}
}

// WithStream returns a generator on the given stream selector. Different
// streams over the same seed produce independent output sequences.
func WithStream(seed Seed, stream uint64) Source {
	return Source{seed: seed, stream: stream}
}

// SeedSize implements the generator capability.
func (s *Source) SeedSize() int { return SeedSize }

// Reseed reinitializes from seed on stream 0, discarding all prior state.
func (s *Source) Reseed(seed Seed) {
	s.seed = seed
	s.stream = 0
	s.wordPos = 0
	s.cipher = nil
}

// ReseedBytes is Reseed over raw bytes; len(seed) must be exactly SeedSize.
func (s *Source) ReseedBytes(seed []byte) {
	if len(seed) != SeedSize {
		panic("chacha: seed must be exactly 32 bytes")
	}
	var fixed Seed
	copy(fixed[:], seed)
	s.Reseed(fixed)
}

// ensure rebuilds the keystream cipher at the current position. Callers
// check capacity first, so wordPos < maxWords here and the block counter
// cannot wrap.
func (s *Source) ensure() {
	if s.cipher != nil {
		return
	}
	nonce := make([]byte, chacha20.NonceSize)
	binary.LittleEndian.PutUint64(nonce[:8], s.stream)
	c, err := chacha20.NewUnauthenticatedCipher(s.seed[:], nonce)
	if err != nil {
		// Key and nonce lengths are fixed above; unreachable.
		panic(err)
	}
	c.SetCounter(uint32(s.wordPos / wordsPerBlock))
	if off := s.wordPos % wordsPerBlock; off != 0 {
		var skip [64]byte
		buf := skip[:off*4]
		c.XORKeyStream(buf, buf)
	}
	s.cipher = c
}

func (s *Source) Uint32() uint32 {
	var b [4]byte
	s.Fill(b[:])
	return binary.LittleEndian.Uint32(b[:])
}

func (s *Source) Uint64() uint64 {
	var b [8]byte
	s.Fill(b[:])
	return binary.LittleEndian.Uint64(b[:])
}

// Fill fills dst with keystream output. The keystream bound is unreachable
// in any realistic use (2^38 bytes per reseed), so Fill treats exhaustion as
// a caller bug.
func (s *Source) Fill(dst []byte) {
	if err := s.TryFill(dst); err != nil {
		panic(err)
	}
}

// TryFill is Fill with the exhaustion case reported instead: a request that
// would run past the keystream capacity fails whole, without producing any
// output or advancing the position.
func (s *Source) TryFill(dst []byte) error {
	if len(dst) == 0 {
		return nil
	}
	words := (uint64(len(dst)) + 3) / 4
	if words > maxWords-s.wordPos {
		return entropy.NewError(entropy.KindOutput, "ENT-OUT-001", "chacha20: keystream exhausted for this seed")
	}
	s.ensure()

	clear(dst)
	s.cipher.XORKeyStream(dst, dst)
	if pad := uint64(len(dst)) % 4; pad != 0 {
		// Discard the rest of the word so the position stays word-aligned.
		var skip [4]byte
		buf := skip[:4-pad]
		s.cipher.XORKeyStream(buf, buf)
	}
	s.wordPos += words
	return nil
}

// State captures the complete internal representation.
func (s *Source) State() entropy.Record {
	return entropy.Record{
		Format:    entropy.SnapshotFormat,
		Algorithm: Algorithm,
		Seed:      append([]byte(nil), s.seed[:]...),
		Stream:    s.stream,
		WordPos:   s.wordPos,
	}
}

// Restore replaces the generator's state with rec. On failure the generator
// is unchanged.
func (s *Source) Restore(rec entropy.Record) error {
	if rec.Algorithm != Algorithm {
		return entropy.NewError(entropy.KindState, "ENT-STATE-001", "snapshot algorithm does not match chacha20")
	}
	if len(rec.Seed) != SeedSize {
		return entropy.NewError(entropy.KindState, "ENT-STATE-002", "seed length does not match algorithm")
	}
	if rec.WordPos > maxWords {
		return entropy.NewError(entropy.KindState, "ENT-STATE-004", "position counter out of range")
	}
	copy(s.seed[:], rec.Seed)
	s.stream = rec.Stream
	s.wordPos = rec.WordPos
	s.cipher = nil
	return nil
}

// Equal reports exact state equality. The cached cipher is derived state and
// does not participate.
func (s *Source) Equal(other *Source) bool {
	if s == nil || other == nil {
		return s == other
	}
	return s.seed == other.seed && s.stream == other.stream && s.wordPos == other.wordPos
}
