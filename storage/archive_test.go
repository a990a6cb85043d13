package storage_test

import (
	"testing"

	"xdao.co/entropy/chacha"
	"xdao.co/entropy/entropy"
	"xdao.co/entropy/storage"
)

func testRecord(t *testing.T) entropy.Record {
	t.Helper()
	var seed chacha.Seed
	for i := range seed {
		seed[i] = 0x07
	}
	g := entropy.FromSeed[chacha.Source](seed)
	g.Uint32()
	return g.Snapshot()
}

func TestArchive_SaveLoadRoundTrip(t *testing.T) {
	archive := storage.NewArchive(storage.NewMemory())
	rec := testRecord(t)

	id, err := archive.Save(rec)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := archive.Load(id)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !loaded.Equal(rec) {
		t.Fatalf("loaded record differs from the saved one")
	}
}

func TestArchive_SaveIsContentAddressed(t *testing.T) {
	archive := storage.NewArchive(storage.NewMemory())
	rec := testRecord(t)

	id1, err := archive.Save(rec)
	if err != nil {
		t.Fatalf("Save(1): %v", err)
	}
	id2, err := archive.Save(rec)
	if err != nil {
		t.Fatalf("Save(2): %v", err)
	}
	if id1 != id2 {
		t.Fatalf("same state produced different CIDs: %s vs %s", id1, id2)
	}

	rec.WordPos++
	id3, err := archive.Save(rec)
	if err != nil {
		t.Fatalf("Save(3): %v", err)
	}
	if id3 == id1 {
		t.Fatalf("different states produced the same CID")
	}
}

func TestArchive_SaveRejectsInvalidRecord(t *testing.T) {
	archive := storage.NewArchive(storage.NewMemory())

	_, err := archive.Save(entropy.Record{})
	if !entropy.IsKind(err, entropy.KindEncode) {
		t.Fatalf("Save of empty record: got %v", err)
	}
}

func TestArchive_LoadMissing(t *testing.T) {
	archive := storage.NewArchive(storage.NewMemory())
	rec := testRecord(t)

	// Compute the CID without storing the object.
	scratch := storage.NewArchive(storage.NewMemory())
	id, err := scratch.Save(rec)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	if _, err := archive.Load(id); !storage.IsNotFound(err) {
		t.Fatalf("Load missing: got err=%v want ErrNotFound", err)
	}
}

func TestArchive_LoadRejectsNonSnapshotObject(t *testing.T) {
	cas := storage.NewMemory()
	archive := storage.NewArchive(cas)

	id, err := cas.Put([]byte("not a snapshot"))
	if err != nil {
		t.Fatalf("Put: %v", err)
	}
	_, err = archive.Load(id)
	if !entropy.IsKind(err, entropy.KindDecode) {
		t.Fatalf("Load of non-snapshot bytes: got %v", err)
	}
}
