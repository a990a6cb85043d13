// Package cidutil derives content identifiers for snapshot bytes.
//
// Snapshots are encoded canonically, so identical generator states always
// map to the same CID and a CID names exactly one state.
package cidutil

import (
	"github.com/ipfs/go-cid"
	"github.com/multiformats/go-multihash"
)

// ForBytes returns a CIDv1 (raw multicodec, sha2-256 multihash) derived from
// data.
func ForBytes(data []byte) (cid.Cid, error) {
	sum, err := multihash.Sum(data, multihash.SHA2_256, -1)
	if err != nil {
		return cid.Undef, err
	}
	return cid.NewCidV1(cid.Raw, sum), nil
}

// String is ForBytes rendered as a string, or "" on failure.
//
// multihash.Sum only errors for invalid inputs; with SHA2_256 and default
// length the failure path should be unreachable.
func String(data []byte) string {
	id, err := ForBytes(data)
	if err != nil {
		return ""
	}
	return id.String()
}
