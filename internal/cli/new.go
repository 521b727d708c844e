package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/skilltree/pkg/tree"
)

type newOpts struct {
	output      string
	name        string
	description string
}

func (c *CLI) newCommand() *cobra.Command {
	var opts newOpts

	cmd := &cobra.Command{
		Use:   "new [template]",
		Short: "Create a skill tree from a template, or an empty one",
		Example: `  skilltree new frontend-developer -o frontend.json
  skilltree new --name "Rust" -o rust.json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			template := ""
			if len(args) == 1 {
				template = args[0]
			}
			return c.runNew(cmd.Context(), template, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: <id>.json, - for stdout)")
	cmd.Flags().StringVar(&opts.name, "name", "", "tree name (overrides the template name)")
	cmd.Flags().StringVar(&opts.description, "description", "", "tree description")

	return cmd
}

func (c *CLI) runNew(ctx context.Context, template string, opts newOpts) error {
	logger := loggerFromContext(ctx)

	var t *tree.Tree
	if template == "" {
		name := opts.name
		if name == "" {
			name = "My skill tree"
		}
		t = tree.New(tree.NewID("tree"), name, opts.description)
	} else {
		cat, err := c.catalog()
		if err != nil {
			return err
		}
		if t, err = cat.Instantiate(template); err != nil {
			return err
		}
		logger.Debugf("Instantiated template %s: %d skills", template, t.Len())
		if opts.name != "" {
			t.Name = opts.name
		}
		if opts.description != "" {
			t.Description = opts.description
		}
	}

	out := opts.output
	if out == "" {
		out = t.ID + ".json"
	}
	if err := saveTree(t, out); err != nil {
		return err
	}
	if out == "-" {
		return nil
	}

	printSuccess("Created %s", StyleValue.Render(t.Name))
	printFile(out)
	printDetail("%d skills", t.Len())
	printNewline()
	printNextStep("Edit it", fmt.Sprintf("%s edit %s", appName, out))
	return nil
}
