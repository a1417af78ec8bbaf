package caddr

import (
	"fmt"
	"strings"

	"github.com/caskstore/cask/digest"
)

// parseMethodAlgo parses a content address up to the digest: the
// top-level method prefix, then the digest algorithm token. The text
// after the algorithm's trailing ':' is returned unconsumed; callers
// decide whether a digest follows.
func parseMethodAlgo(s string) (Method, digest.Algorithm, string, error) {
	prefix, rest, ok := strings.Cut(s, ":")
	if !ok {
		return nil, 0, "", errorf(KindMalformed, "not a content address because it is not in the form '<prefix>:<rest>': %s", s)
	}

	algoToken := func() (digest.Algorithm, error) {
		tok, r, ok := strings.Cut(rest, ":")
		if !ok {
			return 0, errorf(KindMissingHashType, "content address hash must be in the form '<algo>:<hash>', but found: %s", s)
		}
		rest = r
		return digest.ParseAlgorithm(tok)
	}

	switch prefix {
	case "text":
		// Text supports no ingestion sub-prefix.
		algo, err := algoToken()
		if err != nil {
			return nil, 0, "", err
		}
		return TextMethod{}, algo, rest, nil
	case "fixed":
		ingestion := Flat
		if r, ok := strings.CutPrefix(rest, "r:"); ok {
			ingestion = Recursive
			rest = r
		}
		algo, err := algoToken()
		if err != nil {
			return nil, 0, "", err
		}
		return FileMethod{Ingestion: ingestion}, algo, rest, nil
	default:
		return nil, 0, "", errorf(KindUnrecognizedPrefix, "content address prefix '%s' is unrecognized; recognized prefixes are 'text' and 'fixed'", prefix)
	}
}

// Parse parses the canonical textual form of a content address.
// Digest parse failures are propagated verbatim.
func Parse(s string) (ContentAddress, error) {
	m, algo, rest, err := parseMethodAlgo(s)
	if err != nil {
		return nil, err
	}
	d, err := digest.ParseUnprefixed(rest, algo)
	if err != nil {
		return nil, err
	}
	switch m := m.(type) {
	case TextMethod:
		return TextAddress{Hash: d}, nil
	case FileMethod:
		return FixedOutputAddress{Ingestion: m.Ingestion, Hash: d}, nil
	default:
		panic(fmt.Sprintf("caddr: impossible addressing method %T", m))
	}
}

// ParseOpt treats the empty string as the absence of a content address
// and returns a nil ContentAddress for it.
func ParseOpt(s string) (ContentAddress, error) {
	if s == "" {
		return nil, nil
	}
	return Parse(s)
}

// ParseMethodAlgo parses a "<method>:<algo>" string with no digest
// attached, the form found in configuration fields.
func ParseMethodAlgo(s string) (Method, digest.Algorithm, error) {
	m, algo, _, err := parseMethodAlgo(s + ":")
	return m, algo, err
}

// Render produces the canonical textual form of a content address. A
// nil address renders as the empty string, mirroring ParseOpt.
func Render(ca ContentAddress) string {
	switch ca := ca.(type) {
	case nil:
		return ""
	case TextAddress:
		return "text:" + ca.Hash.String()
	case FixedOutputAddress:
		return "fixed:" + IngestionPrefix(ca.Ingestion) + ca.Hash.String()
	default:
		panic(fmt.Sprintf("caddr: impossible content address %T", ca))
	}
}

// RenderMethodAlgo renders a method and digest algorithm with both
// cases prefixed, for describing a scheme before any digest exists.
func RenderMethodAlgo(m Method, algo digest.Algorithm) string {
	switch m := m.(type) {
	case TextMethod:
		return "text:" + algo.String()
	case FileMethod:
		return "fixed:" + IngestionPrefix(m.Ingestion) + algo.String()
	default:
		panic(fmt.Sprintf("caddr: impossible addressing method %T", m))
	}
}

// MethodAlgo renders the method and digest algorithm of a provenance
// record, for display without its references.
func MethodAlgo(a AddressWithReferences) string {
	return RenderMethodAlgo(a.Method(), a.Digest().Algorithm())
}
