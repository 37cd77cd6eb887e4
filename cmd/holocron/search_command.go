package main

import (
	"github.com/spf13/cobra"
)

func newSearchCommand(ctx *commandContext) *cobra.Command {
	var world bool

	cmd := &cobra.Command{
		Use:   "search <name>",
		Short: "Search for a character by name",
		Long: "Search for a character by exact name. Results are cached under the name as typed; " +
			"a cached name is answered without contacting the API.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			service, err := ctx.lookupService(cmd)
			if err != nil {
				return err
			}
			return service.Search(cmd.Context(), args[0], world)
		},
	}

	cmd.Flags().BoolVar(&world, "world", false, "Also show the character's homeworld")
	return cmd
}
