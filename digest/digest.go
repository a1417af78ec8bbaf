// Package digest models store digests as immutable values together with
// the textual encodings content addresses are built from.
//
// A Digest is an algorithm tag plus raw bytes. The package is a pure
// codec: it parses and renders digest text but never computes a digest
// from content. Values are comparable with ==.
package digest

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
)

// Algorithm identifies a digest algorithm by its canonical short name.
type Algorithm uint8

const (
	MD5 Algorithm = iota + 1
	SHA1
	SHA256
	SHA512
)

// MaxSize is the raw size of the largest supported digest.
const MaxSize = 64

// String returns the canonical short name used in content address text.
func (a Algorithm) String() string {
	switch a {
	case MD5:
		return "md5"
	case SHA1:
		return "sha1"
	case SHA256:
		return "sha256"
	case SHA512:
		return "sha512"
	default:
		panic(fmt.Sprintf("digest: impossible algorithm %d", a))
	}
}

// Size returns the raw digest size in bytes.
func (a Algorithm) Size() int {
	switch a {
	case MD5:
		return 16
	case SHA1:
		return 20
	case SHA256:
		return 32
	case SHA512:
		return 64
	default:
		panic(fmt.Sprintf("digest: impossible algorithm %d", a))
	}
}

// ParseAlgorithm parses a canonical algorithm short name.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch s {
	case "md5":
		return MD5, nil
	case "sha1":
		return SHA1, nil
	case "sha256":
		return SHA256, nil
	case "sha512":
		return SHA512, nil
	default:
		return 0, fmt.Errorf("digest: unknown algorithm '%s'", s)
	}
}

// Digest is an immutable algorithm-tagged digest value.
//
// The raw bytes live in a fixed array padded with zeros past the
// algorithm's size, so two digests are equal exactly when == says so.
type Digest struct {
	algo Algorithm
	raw  [MaxSize]byte
}

// New builds a digest from raw bytes. The byte count must match the
// algorithm's digest size.
func New(algo Algorithm, raw []byte) (Digest, error) {
	if len(raw) != algo.Size() {
		return Digest{}, fmt.Errorf("digest: %d bytes is the wrong length for algorithm '%s'", len(raw), algo)
	}
	d := Digest{algo: algo}
	copy(d.raw[:], raw)
	return d, nil
}

// MustNew is New for inputs known to be well formed; it panics on error.
func MustNew(algo Algorithm, raw []byte) Digest {
	d, err := New(algo, raw)
	if err != nil {
		panic(err)
	}
	return d
}

// Algorithm returns the algorithm tag.
func (d Digest) Algorithm() Algorithm { return d.algo }

// Bytes returns a copy of the raw digest bytes.
func (d Digest) Bytes() []byte {
	out := make([]byte, d.algo.Size())
	copy(out, d.raw[:])
	return out
}

// Base16 renders the digest as lowercase hex.
func (d Digest) Base16() string {
	return hex.EncodeToString(d.raw[:d.algo.Size()])
}

// Base32 renders the digest in the store's unpadded base-32 encoding.
func (d Digest) Base32() string {
	return base32Encode(d.raw[:d.algo.Size()])
}

// Base64 renders the digest in standard padded base-64.
func (d Digest) Base64() string {
	return base64.StdEncoding.EncodeToString(d.raw[:d.algo.Size()])
}

// SRI renders the digest as an unprefixed SRI-style string,
// "<algo>-<base64>".
func (d Digest) SRI() string {
	return d.algo.String() + "-" + d.Base64()
}

// String renders the digest as "<algo>:<base32>", the form embedded in
// content addresses.
func (d Digest) String() string {
	return d.algo.String() + ":" + d.Base32()
}

// ParseUnprefixed parses digest text whose algorithm is already known
// from surrounding context, so the text carries no algorithm tag. The
// encoding is chosen by length: base-16, base-32, or base-64 for the
// algorithm's digest size.
func ParseUnprefixed(s string, algo Algorithm) (Digest, error) {
	size := algo.Size()
	switch len(s) {
	case size * 2:
		raw, err := hex.DecodeString(s)
		if err != nil {
			return Digest{}, fmt.Errorf("digest: invalid base-16 digest '%s': %w", s, err)
		}
		return New(algo, raw)
	case base32Len(size):
		raw, err := base32Decode(s, size)
		if err != nil {
			return Digest{}, err
		}
		return New(algo, raw)
	case base64.StdEncoding.EncodedLen(size):
		raw, err := base64.StdEncoding.DecodeString(s)
		if err != nil {
			return Digest{}, fmt.Errorf("digest: invalid base-64 digest '%s': %w", s, err)
		}
		return New(algo, raw)
	default:
		return Digest{}, fmt.Errorf("digest: '%s' has the wrong length for algorithm '%s'", s, algo)
	}
}
