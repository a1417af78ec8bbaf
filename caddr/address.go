package caddr

import (
	"fmt"

	"github.com/caskstore/cask/digest"
)

// Reference is the opaque name of another content-addressed store
// object. Its internal structure belongs to the store, not to this
// package.
type Reference string

// ReferenceSet records which other store objects a content-addressed
// object refers to, and whether it refers to itself.
type ReferenceSet struct {
	Others map[Reference]struct{}
	Self   bool
}

// Empty reports whether the set holds no references at all.
func (r ReferenceSet) Empty() bool {
	return !r.Self && len(r.Others) == 0
}

// Size counts the references, the self reference included.
func (r ReferenceSet) Size() int {
	n := len(r.Others)
	if r.Self {
		n++
	}
	return n
}

// ContentAddress binds a digest to the method that produced it: enough
// to verify content, not enough to reconstruct provenance. The two
// variants are TextAddress and FixedOutputAddress; both are comparable
// immutable values, so == on ContentAddress works.
type ContentAddress interface {
	isContentAddress()
	// Digest returns the digest the address binds.
	Digest() digest.Digest
}

// TextAddress addresses synthetic text content.
type TextAddress struct {
	Hash digest.Digest
}

// FixedOutputAddress addresses ingested file system content.
type FixedOutputAddress struct {
	Ingestion IngestionMethod
	Hash      digest.Digest
}

func (TextAddress) isContentAddress()        {}
func (FixedOutputAddress) isContentAddress() {}

func (a TextAddress) Digest() digest.Digest        { return a.Hash }
func (a FixedOutputAddress) Digest() digest.Digest { return a.Hash }

// MethodAlgo renders the legacy unprefixed method/algorithm form,
// "r:sha256" or "sha256".
func (a FixedOutputAddress) MethodAlgo() string {
	return IngestionPrefix(a.Ingestion) + a.Hash.Algorithm().String()
}

// AddressWithReferences is the full provenance record: a content
// address plus the references of the object it names. The two variants
// are TextInfo and FixedOutputInfo.
type AddressWithReferences interface {
	isAddressWithReferences()
	// Method returns the addressing method of the underlying address.
	Method() Method
	// Digest returns the digest the underlying address binds.
	Digest() digest.Digest
}

// TextInfo is the provenance record for text-addressed content. Text
// content cannot structurally embed its own address, so there is no
// self-reference field to get wrong.
type TextInfo struct {
	Hash       digest.Digest
	References map[Reference]struct{}
}

// FixedOutputInfo is the provenance record for file-ingested content.
type FixedOutputInfo struct {
	Ingestion  IngestionMethod
	Hash       digest.Digest
	References ReferenceSet
}

func (TextInfo) isAddressWithReferences()        {}
func (FixedOutputInfo) isAddressWithReferences() {}

func (i TextInfo) Method() Method { return TextMethod{} }
func (i FixedOutputInfo) Method() Method {
	return FileMethod{Ingestion: i.Ingestion}
}

func (i TextInfo) Digest() digest.Digest        { return i.Hash }
func (i FixedOutputInfo) Digest() digest.Digest { return i.Hash }

// FromParts assembles a provenance record from a method, an externally
// computed digest, and a reference set, enforcing the cross-field
// invariants. Text addressing rejects a self reference.
func FromParts(m Method, d digest.Digest, refs ReferenceSet) (AddressWithReferences, error) {
	switch m := m.(type) {
	case TextMethod:
		if refs.Self {
			return nil, errorf(KindInvalidReferences, "cannot have a self reference with text hashing")
		}
		return TextInfo{Hash: d, References: refs.Others}, nil
	case FileMethod:
		return FixedOutputInfo{Ingestion: m.Ingestion, Hash: d, References: refs}, nil
	default:
		panic(fmt.Sprintf("caddr: impossible addressing method %T", m))
	}
}

// WithoutReferences lifts a bare address into a provenance record with
// an empty reference set, for contexts where references are known to
// be absent or irrelevant.
func WithoutReferences(ca ContentAddress) AddressWithReferences {
	switch ca := ca.(type) {
	case TextAddress:
		return TextInfo{Hash: ca.Hash}
	case FixedOutputAddress:
		return FixedOutputInfo{Ingestion: ca.Ingestion, Hash: ca.Hash}
	default:
		panic(fmt.Sprintf("caddr: impossible content address %T", ca))
	}
}
