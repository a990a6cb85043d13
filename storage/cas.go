// Package storage persists encoded generator snapshots in content-addressed
// form: a snapshot's CID is derived from its canonical bytes, so saving the
// same state twice yields the same address and a stored state can never be
// silently replaced.
package storage

import "github.com/ipfs/go-cid"

// CAS is the minimal content-addressable store snapshots are archived in.
//
// Contract:
// - Put MUST be idempotent.
// - Stored objects MUST be immutable.
// - CIDs MUST be derived from the bytes written (callers supply canonical snapshot bytes).
// - Get MUST return ErrNotFound when the CID is absent.
type CAS interface {
	Put(data []byte) (cid.Cid, error)
	Get(id cid.Cid) ([]byte, error)
	Has(id cid.Cid) bool
}
