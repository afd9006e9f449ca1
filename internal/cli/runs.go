package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/orienteer/store"
)

func newRunsCommand(input *Input) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "runs",
		Short: "Show recorded runs",
	}
	list := &cobra.Command{
		Use:   "list",
		Short: "List recorded runs, newest first",
		Args:  cobra.NoArgs,
		RunE: withStore(input, func(cmd *cobra.Command, st *store.Store, _ []string) error {
			recs, err := st.Runs(input.storedMap, input.limit)
			if err != nil {
				return err
			}
			printRuns(cmd.OutOrStdout(), recs)

			return nil
		}),
	}
	list.Flags().StringVar(&input.storedMap, "map", "", "only runs of this stored map")
	list.Flags().IntVarP(&input.limit, "limit", "n", 20, "show at most this many runs (0 = all)")
	cmd.AddCommand(list)

	return cmd
}
