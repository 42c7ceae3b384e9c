package main

import (
	"bytes"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"anagrams/internal/anagram"
	"anagrams/internal/config"
	"anagrams/internal/logging"
	"anagrams/internal/output"
	"anagrams/internal/wordlist"
)

// run executes the whole pipeline: validate the output target, resolve and
// read the word list, filter, group, and write. Diagnostics go to stderr so
// stdout carries only group lines.
func run(cmd *cobra.Command, cfg *config.Config) error {
	start := time.Now()

	logger, err := logging.New(logging.Options{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cmd.ErrOrStderr(),
	})
	if err != nil {
		return fmt.Errorf("setup logging: %w", err)
	}

	rules := wordlist.Rules{
		MinLetters:      cfg.Rules.MinLetters,
		ExcludeCapitals: cfg.Rules.ExcludeCapitals,
	}
	if err := rules.Validate(); err != nil {
		return err
	}

	// Output path problems must surface before any word list I/O.
	target := output.Target{Path: cfg.Output.Path, Print: cfg.Output.Print}
	warning, err := target.Validate()
	if err != nil {
		return err
	}
	if warning != "" {
		printWarning(cmd.ErrOrStderr(), warning)
	}

	logger.Debug("searching for word list")
	path, err := wordlist.Resolve(cfg.Wordlist.Path, cfg.Wordlist.SystemPaths)
	if err != nil {
		return err
	}
	logger.Debug("word list resolved", "path", path)

	tokens, err := wordlist.Read(path)
	if err != nil {
		return err
	}
	logger.Debug("word list loaded", "words", len(tokens))

	kept := wordlist.Filter(tokens, rules)
	logger.Debug("words filtered", "kept", len(kept), "dropped", len(tokens)-len(kept))

	logger.Debug("sorting words by signature")
	words := anagram.Words(kept, cfg.Rules.IgnoreCapitals)
	groups := anagram.GroupWords(words, cfg.Rules.MinGroupSize)
	logger.Debug("groups collected", "groups", len(groups))

	var buf bytes.Buffer
	if err := anagram.WriteGroups(&buf, groups); err != nil {
		return err
	}
	if err := target.Write(cmd.OutOrStdout(), buf.Bytes()); err != nil {
		return err
	}

	elapsed := time.Since(start)
	if verboseEnabled(cfg) {
		printSummary(cmd.ErrOrStderr(), runSummary{
			wordsRead:    len(tokens),
			wordsKept:    len(kept),
			groups:       len(groups),
			largestGroup: largestGroupSize(groups),
			elapsed:      elapsed,
		})
	}
	logger.Debug("done", "elapsed", elapsed.Round(time.Millisecond))
	return nil
}

func verboseEnabled(cfg *config.Config) bool {
	return cfg.Logging.Level == "debug"
}

func largestGroupSize(groups []anagram.Group) int {
	largest := 0
	for _, group := range groups {
		if len(group.Words) > largest {
			largest = len(group.Words)
		}
	}
	return largest
}
