package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/skilltree/pkg/editor"
	"github.com/matzehuels/skilltree/pkg/observability"
	"github.com/matzehuels/skilltree/pkg/tree"
)

func (c *CLI) editCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "edit [file]",
		Short: "Edit a skill tree interactively",
		Long: `Edit opens a terminal outline of the tree. Track progress, rename, add
sections and skills (or pick them from the library), link prerequisites,
duplicate, delete and auto-arrange. Press w to save.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runEdit(cmd.Context(), args[0])
		},
	}
}

func (c *CLI) runEdit(ctx context.Context, path string) error {
	t, err := loadTree(path)
	if err != nil {
		return err
	}
	cat, err := c.catalog()
	if err != nil {
		return err
	}

	// The terminal belongs to the editor; hook logging would corrupt it.
	observability.Reset()

	saves := 0
	save := func(t *tree.Tree) error {
		saves++
		return saveTree(t, path)
	}
	s := editor.New(t, editor.Options{Catalog: cat})
	m := NewEditModel(ctx, s, cat, save)

	final, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return fmt.Errorf("editor: %w", err)
	}

	if fm, ok := final.(EditModel); ok && fm.Dirty() {
		printWarning("Quit with unsaved changes")
	} else if saves > 0 {
		printSuccess("Saved %s", path)
	}
	return nil
}
