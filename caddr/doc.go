// Package caddr defines content addresses for store objects and the
// canonical textual grammar that carries them.
//
// A content address binds a digest to the method that produced it. Two
// forms have accumulated over time:
//
//   - "text:<algo>:<base32>" for synthetic text content, and
//   - "fixed:<r?><algo>:<base32>" for ingested file system content,
//     where the optional "r:" marks recursive ingestion of a whole
//     file system object rather than a flat byte stream.
//
// Parse and Render are the only boundary between that grammar and the
// in-memory model; for any address a, Parse(Render(a)) == a bit for
// bit. All values are immutable and every function here is pure, so
// concurrent use needs no synchronization.
package caddr
