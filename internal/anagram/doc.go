// Package anagram implements the core grouping pipeline: each word carries a
// canonical letter-sorted signature, and words sharing a signature form a
// group.
//
// Signatures are computed once at word construction and never recomputed.
// Grouping sorts the word list by signature (stable, so words inside a group
// keep their input order) and sweeps it once to collect maximal
// equal-signature runs.
package anagram
