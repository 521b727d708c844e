package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/skilltree/pkg/editor"
	"github.com/matzehuels/skilltree/pkg/errors"
)

type addOpts struct {
	parent  string
	branch  bool
	section bool
	custom  bool
	output  string
}

func (c *CLI) addCommand() *cobra.Command {
	var opts addOpts

	cmd := &cobra.Command{
		Use:   "add [file] [skill|branch|name]",
		Short: "Add a library skill, branch, section or custom skill to a tree",
		Example: `  skilltree add frontend.json react --parent frameworks-1234
  skilltree add backend.json node-backend --branch
  skilltree add mine.json "Side projects" --section
  skilltree add mine.json "Rust" --custom --parent side-projects-5678`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n := 0
			for _, set := range []bool{opts.branch, opts.section, opts.custom} {
				if set {
					n++
				}
			}
			if n > 1 {
				return fmt.Errorf("--branch, --section and --custom are mutually exclusive")
			}
			return c.runAdd(cmd.Context(), args[0], args[1], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.parent, "parent", "p", "", "id of the parent node (default: top level)")
	cmd.Flags().BoolVarP(&opts.branch, "branch", "b", false, "add a whole library branch")
	cmd.Flags().BoolVarP(&opts.section, "section", "s", false, "add an empty top-level section with this name")
	cmd.Flags().BoolVar(&opts.custom, "custom", false, "add a custom skill with this name")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: overwrite input)")

	return cmd
}

func (c *CLI) runAdd(ctx context.Context, path, what string, opts addOpts) error {
	logger := loggerFromContext(ctx)

	t, err := loadTree(path)
	if err != nil {
		return err
	}
	cat, err := c.catalog()
	if err != nil {
		return err
	}

	s := editor.New(t, editor.Options{Catalog: cat, Logger: logger})
	if opts.parent != "" && !t.Has(opts.parent) {
		return errors.NotFound("parent", opts.parent)
	}

	var added []string
	switch {
	case opts.section:
		id, err := s.AddSection(ctx, what)
		if err != nil {
			return err
		}
		added = []string{id}
	case opts.custom:
		id, err := s.AddSkill(ctx, opts.parent, what)
		if err != nil {
			return err
		}
		added = []string{id}
	case opts.branch:
		if added, err = s.AddBranchFromLibrary(ctx, opts.parent, what); err != nil {
			return err
		}
	default:
		id, err := s.AddFromLibrary(ctx, opts.parent, what, nil)
		if err != nil {
			return err
		}
		added = []string{id}
	}

	out := opts.output
	if out == "" {
		out = path
	}
	if err := saveTree(s.Tree(), out); err != nil {
		return err
	}
	if out == "-" {
		return nil
	}

	for _, id := range added {
		if n, ok := s.Tree().Find(id); ok {
			printSuccess("Added %s %s", StyleValue.Render(n.Name), StyleDim.Render(id))
		}
	}
	printFile(out)
	return nil
}
