package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/matzehuels/skilltree/pkg/errors"
	"github.com/matzehuels/skilltree/pkg/server"
	"github.com/matzehuels/skilltree/pkg/tree"
)

func (c *CLI) serveCommand() *cobra.Command {
	var cfg server.Config

	cmd := &cobra.Command{
		Use:   "serve [file...]",
		Short: "Serve trees read-only at their share links",
		Long: `Serve publishes the given trees at <origin>/tree/<id>. Each link answers
with the tree drawn as SVG; /export and /dot return JSON and Graphviz source.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), args, cfg)
		},
	}

	cmd.Flags().StringVar(&cfg.Addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&cfg.Origin, "origin", "", "public origin for share links (default: http://localhost plus the --addr port)")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, paths []string, cfg server.Config) error {
	logger := loggerFromContext(ctx)

	if cfg.Origin != "" {
		if err := errors.ValidateURL(cfg.Origin); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidInput, err, "--origin %q", cfg.Origin)
		}
	}

	trees := make([]*tree.Tree, 0, len(paths))
	for _, path := range paths {
		t, err := loadTree(path)
		if err != nil {
			return err
		}
		trees = append(trees, t)
	}

	srv := server.New(cfg, logger, trees...)
	for _, t := range trees {
		printInfo("%s %s", StyleValue.Render(t.Name), StyleLink.Render(srv.ShareURL(t.ID)))
	}
	return srv.Run(ctx)
}
