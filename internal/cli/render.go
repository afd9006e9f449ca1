package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/orienteer/mapio"
)

func newRenderCommand(input *Input) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Draw a map",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, doc, err := loadDocument(input)
			if err != nil {
				return err
			}
			g, err := mapio.ToGraph(doc)
			if err != nil {
				return err
			}

			return writeImage(cmd.Context(), g, input.outPath, input.format)
		},
	}
	f := cmd.Flags()
	f.StringVarP(&input.mapPath, "map", "m", "", "map document (.json, .yaml)")
	f.StringVar(&input.storedMap, "stored", "", "name of a stored map")
	f.StringVarP(&input.outPath, "out", "o", "", "output file")
	f.StringVar(&input.format, "format", "", "svg, png, jpg or dot (default: from --out extension)")
	cmd.MarkFlagsMutuallyExclusive("map", "stored")
	cmd.MarkFlagsOneRequired("map", "stored")
	_ = cmd.MarkFlagRequired("out")

	return cmd
}
