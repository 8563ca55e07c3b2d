package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvgrid/dense"
	"github.com/katalvlaran/lvgrid/sparse"
)

// NewRootCmd builds the gridctl command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "gridctl",
		Short: "Inspect character scenes stored in lvgrid containers",
		Long: `gridctl loads a YAML scene of character cells into a sparse grid and
prints its bounds, renders it, or crops it through a dense grid.`,
		SilenceUsage: true,
	}
	root.AddCommand(newBoundsCmd(), newRenderCmd(), newCropCmd())

	return root
}

// Execute runs the root command and exits non-zero on failure.
// This is called by main.main().
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func loadSceneFile(path string) (*sparse.CopyGrid[Scene, rune], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open scene: %w", err)
	}
	defer f.Close()

	g, err := LoadScene(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}

// newBoundsCmd prints the bounding rect and number of set cells.
func newBoundsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bounds FILE",
		Short: "Print the bounding rectangle of a scene",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := loadSceneFile(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "rect: %v\ncells: %d\n", g.Rect(), g.Len())

			return nil
		},
	}
}

// newRenderCmd prints every cell of the scene's bounding rect.
func newRenderCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "render FILE",
		Short: "Render a scene inside its bounding rectangle",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := loadSceneFile(args[0])
			if err != nil {
				return err
			}

			return render(cmd.OutOrStdout(), g.Rect(), g.All())
		},
	}
}

// newCropCmd copies the scene into a dense grid, resizes it to --rect and
// renders the result.
func newCropCmd() *cobra.Command {
	var rectFlag []int
	cmd := &cobra.Command{
		Use:   "crop --rect x,y,w,h FILE",
		Short: "Render a scene resized to an explicit rectangle",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := RectFromInts(rectFlag)
			if err != nil {
				return err
			}
			g, err := loadSceneFile(args[0])
			if err != nil {
				return err
			}

			fill := func() rune { return g.Default() }
			d := dense.New(g.Rect(), fill)
			for p, v := range g.Populated() {
				d.Set(p, v)
			}
			d.Resize(target, fill)

			return render(cmd.OutOrStdout(), d.Rect(), d.All())
		},
	}
	cmd.Flags().IntSliceVar(&rectFlag, "rect", nil, "target rectangle as x,y,w,h")
	_ = cmd.MarkFlagRequired("rect")

	return cmd
}
