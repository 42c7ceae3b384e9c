// Package output delivers rendered group lines to their destination: a file,
// the standard output stream, or both.
//
// Target validation runs before any word list processing so a bad output path
// fails fast without partial work. Content is rendered once into memory and
// written to each destination from that single buffer; the written file is
// never read back.
package output
