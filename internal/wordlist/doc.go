// Package wordlist locates, reads, and filters word list files.
//
// A word list is plain text tokenized by whitespace; the whole file is read
// into memory in one pass. When no path is configured, well-known system
// dictionary locations are probed in order.
package wordlist
