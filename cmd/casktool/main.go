package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/multiformats/go-multibase"

	"github.com/caskstore/cask/caddr"
	"github.com/caskstore/cask/cidutil"
	"github.com/caskstore/cask/digest"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, out io.Writer, errOut io.Writer) int {
	if len(args) == 0 {
		printUsage(errOut)
		return 2
	}

	switch args[0] {
	case "parse":
		return cmdParse(args[1:], out, errOut)
	case "render":
		return cmdRender(args[1:], out, errOut)
	case "method":
		return cmdMethod(args[1:], out, errOut)
	case "cid":
		return cmdCID(args[1:], out, errOut)
	case "help", "-h", "--help":
		printUsage(out)
		return 0
	default:
		fmt.Fprintf(errOut, "unknown command: %s\n\n", args[0])
		printUsage(errOut)
		return 2
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "casktool: content address inspection CLI")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  casktool parse <address>")
	fmt.Fprintln(w, "  casktool render --algo <algo> --digest <base16|base32|base64> [--text | --recursive]")
	fmt.Fprintln(w, "  casktool method <method:algo>")
	fmt.Fprintln(w, "  casktool cid [--base b32|b58btc|b16] <address>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Notes:")
	fmt.Fprintln(w, "  - addresses look like 'text:sha256:<digest>' or 'fixed:r:sha256:<digest>'")
	fmt.Fprintln(w, "  - render defaults to flat file ingestion; --text and --recursive are exclusive")
	fmt.Fprintln(w, "  - cid re-encodes the digest as a CIDv1 with the raw codec")
}

func cmdParse(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("parse", flag.ContinueOnError)
	fs.SetOutput(errOut)
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(errOut, "usage: casktool parse <address>")
		return 2
	}
	ca, err := caddr.Parse(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(errOut, "invalid content address: %v\n", err)
		return 1
	}
	d := ca.Digest()
	switch ca := ca.(type) {
	case caddr.TextAddress:
		fmt.Fprintln(out, "method: text")
	case caddr.FixedOutputAddress:
		fmt.Fprintf(out, "method: fixed (%s ingestion)\n", ingestionName(ca.Ingestion))
	}
	fmt.Fprintf(out, "algorithm: %s\n", d.Algorithm())
	fmt.Fprintf(out, "digest-base16: %s\n", d.Base16())
	fmt.Fprintf(out, "digest-base32: %s\n", d.Base32())
	fmt.Fprintf(out, "digest-sri: %s\n", d.SRI())
	fmt.Fprintf(out, "canonical: %s\n", caddr.Render(ca))
	return 0
}

func cmdRender(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("render", flag.ContinueOnError)
	fs.SetOutput(errOut)
	algoName := fs.String("algo", "", "digest algorithm (md5|sha1|sha256|sha512)")
	digestText := fs.String("digest", "", "digest in base16, base32 or base64")
	text := fs.Bool("text", false, "render a text address")
	recursive := fs.Bool("recursive", false, "render a fixed address with recursive ingestion")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 0 || *algoName == "" || *digestText == "" {
		fmt.Fprintln(errOut, "usage: casktool render --algo <algo> --digest <digest> [--text | --recursive]")
		return 2
	}
	if *text && *recursive {
		fmt.Fprintln(errOut, "--text and --recursive are exclusive")
		return 2
	}
	algo, err := digest.ParseAlgorithm(*algoName)
	if err != nil {
		fmt.Fprintf(errOut, "%v\n", err)
		return 1
	}
	d, err := digest.ParseUnprefixed(*digestText, algo)
	if err != nil {
		fmt.Fprintf(errOut, "%v\n", err)
		return 1
	}
	var ca caddr.ContentAddress
	switch {
	case *text:
		ca = caddr.TextAddress{Hash: d}
	case *recursive:
		ca = caddr.FixedOutputAddress{Ingestion: caddr.Recursive, Hash: d}
	default:
		ca = caddr.FixedOutputAddress{Ingestion: caddr.Flat, Hash: d}
	}
	fmt.Fprintln(out, caddr.Render(ca))
	return 0
}

func cmdMethod(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("method", flag.ContinueOnError)
	fs.SetOutput(errOut)
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(errOut, "usage: casktool method <method:algo>")
		return 2
	}
	m, algo, err := caddr.ParseMethodAlgo(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(errOut, "invalid method string: %v\n", err)
		return 1
	}
	switch m := m.(type) {
	case caddr.TextMethod:
		fmt.Fprintln(out, "method: text")
	case caddr.FileMethod:
		fmt.Fprintf(out, "method: fixed (%s ingestion)\n", ingestionName(m.Ingestion))
	}
	fmt.Fprintf(out, "algorithm: %s\n", algo)
	fmt.Fprintf(out, "canonical: %s\n", caddr.RenderMethodAlgo(m, algo))
	return 0
}

func cmdCID(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("cid", flag.ContinueOnError)
	fs.SetOutput(errOut)
	baseName := fs.String("base", "", "multibase for the CID (b32|b58btc|b16)")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(errOut, "usage: casktool cid [--base b32|b58btc|b16] <address>")
		return 2
	}
	ca, err := caddr.Parse(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(errOut, "invalid content address: %v\n", err)
		return 1
	}
	c, err := cidutil.ToCID(ca)
	if err != nil {
		fmt.Fprintf(errOut, "%v\n", err)
		return 1
	}
	if *baseName == "" {
		fmt.Fprintln(out, c.String())
		return 0
	}
	var base multibase.Encoding
	switch *baseName {
	case "b32":
		base = multibase.Base32
	case "b58btc":
		base = multibase.Base58BTC
	case "b16":
		base = multibase.Base16
	default:
		fmt.Fprintf(errOut, "unknown base: %s\n", *baseName)
		return 2
	}
	s, err := cidutil.Format(c, base)
	if err != nil {
		fmt.Fprintf(errOut, "%v\n", err)
		return 1
	}
	fmt.Fprintln(out, s)
	return 0
}

func ingestionName(m caddr.IngestionMethod) string {
	if m == caddr.Recursive {
		return "recursive"
	}
	return "flat"
}
