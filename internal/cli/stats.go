package cli

import (
	"context"
	"fmt"
	"slices"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/skilltree/pkg/tree"
)

func (c *CLI) statsCommand() *cobra.Command {
	var showTree bool

	cmd := &cobra.Command{
		Use:   "stats [file]",
		Short: "Show progress statistics for a tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(cmd.Context(), args[0], showTree)
		},
	}
	cmd.Flags().BoolVarP(&showTree, "tree", "t", false, "also print every skill with its progress")
	return cmd
}

func runStats(_ context.Context, path string, showTree bool) error {
	t, err := loadTree(path)
	if err != nil {
		return err
	}
	st := t.Stats()

	fmt.Println(StyleTitle.Render(t.Name))
	if t.Description != "" {
		printDetail("%s", t.Description)
	}
	printNewline()
	printKeyValue("Progress", fmt.Sprintf("%s %d%%", progressBar(st.Progress, 20), st.Progress))
	printKeyValue("Skills", fmt.Sprintf("%d (%d leaves)", st.Nodes, st.Leaves))
	printKeyValue("Links", strconv.Itoa(st.Links))
	printKeyValue("Available", strconv.Itoa(st.Available))
	printKeyValue("Locked", strconv.Itoa(st.Locked))
	printNewline()

	statusRows := [][]string{}
	for _, s := range []tree.Status{tree.StatusCompleted, tree.StatusInProgress, tree.StatusNotStarted} {
		statusRows = append(statusRows, []string{string(s), strconv.Itoa(st.ByStatus[s]), percent(st.ByStatus[s], st.Nodes)})
	}
	fmt.Println(newTable("Status", "Skills", "Share").Rows(statusRows...).Render())

	cats := make([]string, 0, len(st.ByCategory))
	for c := range st.ByCategory {
		cats = append(cats, c)
	}
	slices.Sort(cats)
	catRows := make([][]string, 0, len(cats))
	for _, c := range cats {
		catRows = append(catRows, []string{c, strconv.Itoa(st.ByCategory[c]), percent(st.ByCategory[c], st.Nodes)})
	}
	if len(catRows) > 0 {
		fmt.Println(newTable("Category", "Skills", "Share").Rows(catRows...).Render())
	}

	if next := t.Frontier(); len(next) > 0 {
		printNewline()
		printInfo("Ready to start")
		for _, n := range next {
			printDetail("%s", n.Name)
		}
	}

	if showTree {
		printNewline()
		t.Walk(func(n *tree.Node, depth int) bool {
			fmt.Printf("%*s%s\n", depth*2, "", skillLine(t, n))
			return true
		})
	}
	return nil
}

func percent(n, total int) string {
	if total == 0 {
		return "0%"
	}
	return fmt.Sprintf("%d%%", (n*100+total/2)/total)
}
