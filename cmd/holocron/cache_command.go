package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"holocron/internal/charcache"
	"holocron/internal/lookup"
)

func newCacheCommand(ctx *commandContext) *cobra.Command {
	var clean bool
	var show bool
	var asTable bool

	cmd := &cobra.Command{
		Use:         "cache",
		Short:       "Inspect and manage the character cache",
		Long:        "Inspect and manage the character cache. --clean takes precedence over --show.",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			// Without a flag there is no work, so configuration is never loaded.
			if !clean && !show {
				return nil
			}
			service, err := ctx.lookupService(cmd)
			if err != nil {
				return err
			}
			switch {
			case clean:
				return service.CleanCache()
			case asTable:
				entries, err := service.Cached(cmd.Context())
				if err != nil {
					return err
				}
				printCacheTable(cmd.OutOrStdout(), entries)
				return nil
			default:
				return service.ShowCache(cmd.Context())
			}
		},
	}

	cmd.Flags().BoolVar(&clean, "clean", false, "Delete the cache file")
	cmd.Flags().BoolVar(&show, "show", false, "Print every cached character")
	cmd.Flags().BoolVar(&asTable, "table", false, "With --show, render entries as a table")
	return cmd
}

func printCacheTable(out io.Writer, entries []charcache.NamedEntry) {
	if len(entries) == 0 {
		fmt.Fprintln(out, lookup.EmptyCacheMessage)
		return
	}
	headers := []string{"Search", "Name", "Height", "Mass", "Birth Year", "Cached"}
	aligns := []columnAlignment{alignLeft, alignLeft, alignRight, alignRight, alignLeft, alignLeft}
	rows := make([][]string, 0, len(entries))
	for _, entry := range entries {
		rows = append(rows, []string{
			entry.Key,
			entry.Character.Name,
			groupDigits(entry.Character.Height),
			groupDigits(entry.Character.Mass),
			entry.Character.BirthYear,
			lookup.FormatStamp(entry.CachedAt),
		})
	}
	fmt.Fprintln(out, renderTable(headers, rows, aligns))
}
