package bootstrap_test

import (
	"bytes"
	"errors"
	"strings"
	"sync"
	"testing"

	"xdao.co/entropy/bootstrap"
)

func TestSystem_FillsDistinctBytes(t *testing.T) {
	sys := bootstrap.NewSystem()

	a := make([]byte, 32)
	b := make([]byte, 32)
	if err := sys.Fill(a); err != nil {
		t.Fatalf("Fill: %v", err)
	}
	if err := sys.Fill(b); err != nil {
		t.Fatalf("Fill: %v", err)
	}

	// 32 identical bytes from the OS source would mean the reader is not
	// advancing between calls.
	if bytes.Equal(a, b) {
		t.Fatalf("consecutive fills returned identical bytes")
	}
	if bytes.Equal(a, make([]byte, 32)) {
		t.Fatalf("fill left the buffer zeroed")
	}
}

func TestSystem_ConcurrentFills(t *testing.T) {
	sys := bootstrap.NewSystem()

	var wg sync.WaitGroup
	errs := make(chan error, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			buf := make([]byte, 512)
			if err := sys.Fill(buf); err != nil {
				errs <- err
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Fatalf("concurrent Fill: %v", err)
	}
}

func TestDefault_SharedInstance(t *testing.T) {
	if bootstrap.Default() != bootstrap.Default() {
		t.Fatalf("Default should return the process-wide instance")
	}
}

type brokenFiller struct{}

func (brokenFiller) Fill([]byte) error {
	return errors.New("pool depleted")
}

func TestMustFill_PanicsOnFailure(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("MustFill should panic when the filler fails")
		}
		msg, ok := r.(string)
		if !ok || !strings.Contains(msg, "secure entropy") || !strings.Contains(msg, "pool depleted") {
			t.Fatalf("unexpected panic value: %v", r)
		}
	}()
	bootstrap.MustFill(brokenFiller{}, make([]byte, 32))
}

func TestMustFill_PassesThroughOnSuccess(t *testing.T) {
	buf := make([]byte, 64)
	bootstrap.MustFill(bootstrap.Default(), buf)
	if bytes.Equal(buf, make([]byte, 64)) {
		t.Fatalf("MustFill left the buffer zeroed")
	}
}
