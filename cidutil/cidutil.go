// Package cidutil bridges store content addresses and multiformats
// CIDs. Digests are re-encoded, never recomputed: the multihash wraps
// the exact bytes the content address already carries.
package cidutil

import (
	"fmt"

	"github.com/ipfs/go-cid"
	"github.com/multiformats/go-multibase"
	mh "github.com/multiformats/go-multihash"

	"github.com/caskstore/cask/caddr"
	"github.com/caskstore/cask/digest"
)

var algoToCode = map[digest.Algorithm]uint64{
	digest.MD5:    mh.MD5,
	digest.SHA1:   mh.SHA1,
	digest.SHA256: mh.SHA2_256,
	digest.SHA512: mh.SHA2_512,
}

var codeToAlgo = map[uint64]digest.Algorithm{
	mh.MD5:      digest.MD5,
	mh.SHA1:     digest.SHA1,
	mh.SHA2_256: digest.SHA256,
	mh.SHA2_512: digest.SHA512,
}

// ToCID wraps the digest of a content address in a CIDv1 with the raw
// codec.
func ToCID(ca caddr.ContentAddress) (cid.Cid, error) {
	d := ca.Digest()
	code, ok := algoToCode[d.Algorithm()]
	if !ok {
		return cid.Undef, fmt.Errorf("cidutil: no multihash code for digest algorithm '%s'", d.Algorithm())
	}
	sum, err := mh.Encode(d.Bytes(), code)
	if err != nil {
		return cid.Undef, err
	}
	return cid.NewCidV1(cid.Raw, mh.Multihash(sum)), nil
}

// FromCID unwraps a CID's multihash into a fixed-output content
// address. The ingestion method is not recoverable from a CID, so the
// caller supplies it.
func FromCID(c cid.Cid, ingestion caddr.IngestionMethod) (caddr.ContentAddress, error) {
	dec, err := mh.Decode([]byte(c.Hash()))
	if err != nil {
		return nil, err
	}
	algo, ok := codeToAlgo[dec.Code]
	if !ok {
		return nil, fmt.Errorf("cidutil: multihash code 0x%x maps to no digest algorithm", dec.Code)
	}
	d, err := digest.New(algo, dec.Digest)
	if err != nil {
		return nil, err
	}
	return caddr.FixedOutputAddress{Ingestion: ingestion, Hash: d}, nil
}

// Format renders a CID in the requested multibase.
func Format(c cid.Cid, base multibase.Encoding) (string, error) {
	return c.StringOfBase(base)
}
