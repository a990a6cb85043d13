package storage

import (
	"github.com/ipfs/go-cid"

	"xdao.co/entropy/entropy"
)

// Archive is the typed layer over a CAS: it saves and loads generator
// snapshot records by CID. Because encoding is canonical, a CID names
// exactly one generator state.
type Archive struct {
	cas CAS
}

// NewArchive wraps a CAS as a snapshot archive.
func NewArchive(cas CAS) *Archive {
	return &Archive{cas: cas}
}

// Save encodes rec and stores it, returning its content address.
func (a *Archive) Save(rec entropy.Record) (cid.Cid, error) {
	b, err := entropy.EncodeSnapshot(rec)
	if err != nil {
		return cid.Undef, err
	}
	return a.cas.Put(b)
}

// Load fetches and decodes the record stored under id. Decode failures
// propagate as structured entropy errors; a corrupted object never yields a
// plausible-but-wrong record.
func (a *Archive) Load(id cid.Cid) (entropy.Record, error) {
	b, err := a.cas.Get(id)
	if err != nil {
		return entropy.Record{}, err
	}
	return entropy.DecodeSnapshot(b)
}
