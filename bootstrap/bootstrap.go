// Package bootstrap supplies the non-deterministic seed bytes used by
// entropy.FromEntropy. It sits only on the construction path, never on the
// hot output path of an already-constructed wrapper.
package bootstrap

import (
	"bufio"
	crand "crypto/rand"
	"fmt"
	"io"
	"sync"
)

// Filler fills a caller-supplied buffer with non-deterministic,
// securely-seeded bytes. An error means the buffer contents are unusable;
// partial fills are never reported as success.
type Filler interface {
	Fill(dst []byte) error
}

// System reads from the operating system's entropy source through a buffer,
// amortizing the acquisition cost across many small seed requests. It is
// safe for concurrent use.
type System struct {
	mu sync.Mutex
	r  *bufio.Reader
}

const bufferSize = 4096

// NewSystem constructs an OS-backed filler with its own buffer.
func NewSystem() *System {
	return &System{r: bufio.NewReaderSize(crand.Reader, bufferSize)}
}

func (s *System) Fill(dst []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := io.ReadFull(s.r, dst); err != nil {
		return fmt.Errorf("bootstrap: read system entropy: %w", err)
	}
	return nil
}

var defaultSystem = NewSystem()

// Default returns the process-wide System instance shared by all
// non-deterministic constructions.
func Default() *System {
	return defaultSystem
}

// MustFill fills dst from f and panics on failure. This is the single
// unrecoverable channel in the library: randomness quality is non-negotiable
// at bootstrap, so there is no silent fallback to a weaker source.
func MustFill(f Filler, dst []byte) {
	if err := f.Fill(dst); err != nil {
		panic(fmt.Sprintf("bootstrap: cannot acquire secure entropy: %v", err))
	}
}
