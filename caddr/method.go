package caddr

import (
	"fmt"
	"strings"
)

// IngestionMethod records how file content was turned into the byte
// stream a digest covers.
type IngestionMethod uint8

const (
	// Flat digests the raw file bytes.
	Flat IngestionMethod = iota
	// Recursive digests a canonical serialization of a whole file
	// system object, structure included. Directories have no single
	// byte stream, so this is the only method that can address them.
	Recursive
)

// IngestionPrefix returns the prefix to the digest algorithm that
// records the ingestion method. Flat is unprefixed.
//
// Any other value panics: the set is closed, so reaching here with
// something else is a bug in the caller, not bad input.
func IngestionPrefix(m IngestionMethod) string {
	switch m {
	case Flat:
		return ""
	case Recursive:
		return "r:"
	default:
		panic(fmt.Sprintf("caddr: impossible ingestion method %d", m))
	}
}

// Method is how content is addressed: as synthetic text or as an
// ingested file system object. The two variants are TextMethod and
// FileMethod.
type Method interface {
	isMethod()
}

// TextMethod addresses synthetic text content. Text is always digested
// flat, so the method carries no ingestion parameter.
type TextMethod struct{}

// FileMethod addresses ingested file system content.
type FileMethod struct {
	Ingestion IngestionMethod
}

func (TextMethod) isMethod() {}
func (FileMethod) isMethod() {}

// MethodPrefix returns the leading token for a method. File ingestion
// is not prefixed at this level, for compatibility with the legacy
// format that only ever had file content addresses.
func MethodPrefix(m Method) string {
	switch m := m.(type) {
	case TextMethod:
		return "text:"
	case FileMethod:
		return IngestionPrefix(m.Ingestion)
	default:
		panic(fmt.Sprintf("caddr: impossible addressing method %T", m))
	}
}

// ParseMethodPrefix consumes a recognized method token from the front
// of s and returns the method together with the unconsumed remainder.
// A missing token is not an error: the default is flat file ingestion.
// This permissiveness is for embedded method strings only; top-level
// input goes through the strict parsers in this package.
func ParseMethodPrefix(s string) (Method, string) {
	if rest, ok := strings.CutPrefix(s, "r:"); ok {
		return FileMethod{Ingestion: Recursive}, rest
	}
	if rest, ok := strings.CutPrefix(s, "text:"); ok {
		return TextMethod{}, rest
	}
	return FileMethod{Ingestion: Flat}, s
}
