package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"anagrams/internal/config"
)

func newRootCommand() *cobra.Command {
	var (
		configFlag      string
		wordlistFlag    string
		outputFlag      string
		minLetters      int
		ignoreCapitals  bool
		excludeCapitals bool
		printOutput     bool
		verbose         bool
		minGroupSize    int
		logFormat       string
	)

	rootCmd := &cobra.Command{
		Use:   "anagrams",
		Short: "Group words from a word list into anagram sets",
		Long: `Group words from a word list into anagram sets.

Words whose letters, when sorted, are identical form a group; each group is
written as one line of comma-separated words. Without --wordlist, well-known
system dictionary locations are probed. Without --output, groups go to stdout.

Examples:
  anagrams                            # group the system dictionary
  anagrams -w words.txt -m 5          # custom list, words of 5+ letters
  anagrams -w words.txt -o out.txt -p # write file and echo to stdout`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, _, err := config.Load(strings.TrimSpace(configFlag))
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}

			flags := cmd.Flags()
			if flags.Changed("wordlist") {
				expanded, err := config.ExpandPath(strings.TrimSpace(wordlistFlag))
				if err != nil {
					return err
				}
				cfg.Wordlist.Path = expanded
			}
			if flags.Changed("output") {
				expanded, err := config.ExpandPath(strings.TrimSpace(outputFlag))
				if err != nil {
					return err
				}
				cfg.Output.Path = expanded
			}
			if flags.Changed("minletters") {
				cfg.Rules.MinLetters = minLetters
			}
			if flags.Changed("ignore-capitals") {
				cfg.Rules.IgnoreCapitals = ignoreCapitals
			}
			if flags.Changed("exclude-capitals") {
				cfg.Rules.ExcludeCapitals = excludeCapitals
			}
			if flags.Changed("print") {
				cfg.Output.Print = printOutput
			}
			if flags.Changed("min-group-size") {
				cfg.Rules.MinGroupSize = minGroupSize
			}
			if flags.Changed("log-format") {
				cfg.Logging.Format = logFormat
			}
			if cfg.Output.Path == "" {
				cfg.Output.Print = true
			}
			if verbose {
				cfg.Logging.Level = "debug"
			}

			if err := cfg.Validate(); err != nil {
				return err
			}
			return run(cmd, cfg)
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "Configuration file path")

	rootCmd.Flags().StringVarP(&wordlistFlag, "wordlist", "w", "", "Word list file to analyze; probes system dictionaries when unset")
	rootCmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Destination file for group lines; stdout when unset")
	rootCmd.Flags().IntVarP(&minLetters, "minletters", "m", 4, "Minimum number of letters for a word to be considered (at least 2)")
	rootCmd.Flags().BoolVarP(&ignoreCapitals, "ignore-capitals", "c", false, "Treat words differing only by capitalization as anagrams")
	rootCmd.Flags().BoolVarP(&excludeCapitals, "exclude-capitals", "x", false, "Drop capitalized words (proper names) entirely")
	rootCmd.Flags().BoolVarP(&printOutput, "print", "p", false, "Echo file output to stdout; implied when no --output is given")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Emit progress messages to stderr")
	rootCmd.Flags().IntVar(&minGroupSize, "min-group-size", 1, "Only emit groups with at least this many members")
	rootCmd.Flags().StringVar(&logFormat, "log-format", "console", "Diagnostic log format: console or json")

	rootCmd.AddCommand(newConfigCommand())

	return rootCmd
}
