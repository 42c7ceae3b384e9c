package main

import (
	"fmt"
	"io"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

type runSummary struct {
	wordsRead    int
	wordsKept    int
	groups       int
	largestGroup int
	elapsed      time.Duration
}

func printSummary(w io.Writer, s runSummary) {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Metric", "Value"})
	tw.AppendRows([]table.Row{
		{"Words read", s.wordsRead},
		{"Words kept", s.wordsKept},
		{"Groups", s.groups},
		{"Largest group", s.largestGroup},
		{"Elapsed", s.elapsed.Round(time.Millisecond).String()},
	})
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 2, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})
	fmt.Fprintln(w, tw.Render())
}
