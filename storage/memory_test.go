package storage_test

import (
	"testing"

	"xdao.co/entropy/storage"
	"xdao.co/entropy/storage/testkit"
)

func TestMemory_Conformance(t *testing.T) {
	testkit.RunCASConformance(t, func(t *testing.T) storage.CAS {
		return storage.NewMemory()
	})
}

func TestMemory_DefensiveCopies(t *testing.T) {
	cas := storage.NewMemory()

	data := []byte("snapshot bytes")
	id, err := cas.Put(data)
	if err != nil {
		t.Fatalf("Put: %v", err)
	}

	// Mutating the caller's slice must not reach the stored object.
	data[0] = 'X'
	got, err := cas.Get(id)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(got) != "snapshot bytes" {
		t.Fatalf("stored object aliased the caller's slice: %q", got)
	}

	// Mutating a returned slice must not reach the stored object either.
	got[0] = 'Y'
	again, err := cas.Get(id)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(again) != "snapshot bytes" {
		t.Fatalf("Get returned an aliased slice: %q", again)
	}
}
