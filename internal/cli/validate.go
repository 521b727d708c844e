package cli

import (
	"context"
	stderrors "errors"

	"github.com/spf13/cobra"

	"github.com/matzehuels/skilltree/pkg/errors"
	"github.com/matzehuels/skilltree/pkg/layout"
)

func (c *CLI) validateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [file...]",
		Short: "Check tree files for format errors and dependency cycles",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd.Context(), args)
		},
	}
}

func runValidate(ctx context.Context, paths []string) error {
	logger := loggerFromContext(ctx)

	failed := 0
	for _, path := range paths {
		t, err := loadTree(path)
		if err != nil {
			printError("%s", err)
			failed++
			continue
		}
		levels, err := layout.Level(t)
		if err != nil {
			var ce *errors.CycleError
			if stderrors.As(err, &ce) {
				printError("%s: dependency cycle %v", path, ce.Path)
			} else {
				printError("%s: %s", path, err)
			}
			failed++
			continue
		}
		depth := 0
		for _, l := range levels {
			depth = max(depth, l+1)
		}
		logger.Debugf("%s: %d skills, %d levels", path, t.Len(), depth)
		printSuccess("%s %s", path, StyleDim.Render(t.Name))
	}
	if failed > 0 {
		return errors.New(errors.ErrCodeInvalidInput, "%d of %d files invalid", failed, len(paths))
	}
	return nil
}
