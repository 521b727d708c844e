package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/skilltree/pkg/editor"
	"github.com/matzehuels/skilltree/pkg/layout"
)

type arrangeOpts struct {
	output string
	layout layout.Options
	dryRun bool
}

func (c *CLI) arrangeCommand() *cobra.Command {
	opts := arrangeOpts{layout: layout.DefaultOptions()}

	cmd := &cobra.Command{
		Use:   "arrange [file]",
		Short: "Place skills in columns by prerequisite level",
		Long: `Arrange assigns every skill a level one greater than its deepest prerequisite
and stores grid positions in the tree: one column per level, skills stacked in
tree order. Trees with a dependency cycle are left unchanged.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runArrange(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: overwrite input)")
	cmd.Flags().Float64Var(&opts.layout.LevelSpacing, "level-spacing", opts.layout.LevelSpacing, "horizontal distance between levels")
	cmd.Flags().Float64Var(&opts.layout.RowSpacing, "row-spacing", opts.layout.RowSpacing, "vertical distance between skills of a level")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "print the levels without writing")

	return cmd
}

func (c *CLI) runArrange(ctx context.Context, path string, opts arrangeOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	t, err := loadTree(path)
	if err != nil {
		return err
	}

	grid, err := layout.Arrange(t, opts.layout)
	if err != nil {
		return err
	}
	printInfo("%s levels", StyleNumber.Render(fmt.Sprint(len(grid.Columns))))
	for lvl, col := range grid.Columns {
		names := make([]string, 0, len(col))
		for _, id := range col {
			if n, ok := t.Find(id); ok {
				names = append(names, n.Name)
			}
		}
		printDetail("%d: %v", lvl, names)
	}
	if opts.dryRun {
		return nil
	}

	s := editor.New(t, editor.Options{Layout: opts.layout, Logger: logger})
	if err := s.AutoArrange(ctx); err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Arranged %d skills", s.Tree().Len()))

	out := opts.output
	if out == "" {
		out = path
	}
	if err := saveTree(s.Tree(), out); err != nil {
		return err
	}
	printFile(out)
	return nil
}
