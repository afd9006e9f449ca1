package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/orienteer/mapio"
	"github.com/katalvlaran/orienteer/store"
)

func newMapsCommand(input *Input) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "maps",
		Short: "Manage stored maps",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List stored maps",
			Args:  cobra.NoArgs,
			RunE: withStore(input, func(cmd *cobra.Command, st *store.Store, _ []string) error {
				recs, err := st.ListMaps()
				if err != nil {
					return err
				}
				printMaps(cmd.OutOrStdout(), recs)

				return nil
			}),
		},
		&cobra.Command{
			Use:   "save NAME FILE",
			Short: "Store a map document under NAME",
			Args:  cobra.ExactArgs(2),
			RunE: withStore(input, func(_ *cobra.Command, st *store.Store, args []string) error {
				doc, err := mapio.Load(args[1])
				if err != nil {
					return err
				}
				if _, err := mapio.ToGraph(doc); err != nil {
					return err
				}

				return st.SaveMap(args[0], doc)
			}),
		},
		&cobra.Command{
			Use:   "export NAME FILE",
			Short: "Write a stored map to a document",
			Args:  cobra.ExactArgs(2),
			RunE: withStore(input, func(_ *cobra.Command, st *store.Store, args []string) error {
				doc, err := st.LoadMap(args[0])
				if err != nil {
					return err
				}

				return mapio.Save(args[1], doc)
			}),
		},
		&cobra.Command{
			Use:   "delete NAME",
			Short: "Delete a stored map and its run history",
			Args:  cobra.ExactArgs(1),
			RunE: withStore(input, func(_ *cobra.Command, st *store.Store, args []string) error {
				return st.DeleteMap(args[0])
			}),
		},
	)

	return cmd
}

// withStore opens the configured store around fn.
func withStore(input *Input, fn func(*cobra.Command, *store.Store, []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		st, err := store.Open(input.cfg.StorePath)
		if err != nil {
			return err
		}
		defer st.Close()

		return fn(cmd, st, args)
	}
}
