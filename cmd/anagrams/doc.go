// Package main hosts the anagrams CLI entrypoint and command graph.
//
// The Cobra-based command tree translates terminal invocations into one pass
// of the grouping pipeline: resolve a word list, filter it, group words by
// letter-sorted signature, and write one group per line. It centralizes
// configuration resolution and logging setup; the pipeline itself lives in
// the internal packages.
package main
