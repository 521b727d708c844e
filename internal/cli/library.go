package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/skilltree/pkg/library"
)

func (c *CLI) templatesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "templates",
		Short: "List tree templates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := c.catalog()
			if err != nil {
				return err
			}
			rows := make([][]string, 0, len(cat.Templates))
			for _, tpl := range cat.Templates {
				sections := make([]string, len(tpl.Sections))
				for i, s := range tpl.Sections {
					sections[i] = s.Name
				}
				rows = append(rows, []string{tpl.ID, tpl.Name, strconv.Itoa(tpl.Size()), strings.Join(sections, ", ")})
			}
			fmt.Println(newTable("ID", "Name", "Skills", "Sections").Rows(rows...).Render())
			printNextStep("Start one", appName+" new <id>")
			return nil
		},
	}
}

func (c *CLI) libraryCommand() *cobra.Command {
	var category string
	var branches bool

	cmd := &cobra.Command{
		Use:   "library [query]",
		Short: "Search the skill library",
		Long:  `Search the skill library by fuzzy matching on names. Without a query every skill is listed, grouped by category.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := c.catalog()
			if err != nil {
				return err
			}
			query := ""
			if len(args) == 1 {
				query = args[0]
			}
			if branches {
				printBranches(cat.SearchBranches(query))
				return nil
			}
			printSkills(cat, filterCategory(cat.Search(query), category))
			return nil
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "only show skills in this category")
	cmd.Flags().BoolVarP(&branches, "branches", "b", false, "search skill branches instead of skills")

	return cmd
}

func filterCategory(skills []library.Skill, category string) []library.Skill {
	if category == "" {
		return skills
	}
	var out []library.Skill
	for _, s := range skills {
		if s.Category == category {
			out = append(out, s)
		}
	}
	return out
}

func printSkills(cat *library.Catalog, skills []library.Skill) {
	if len(skills) == 0 {
		printWarning("No matching skills")
		return
	}
	rows := make([][]string, 0, len(skills))
	for _, s := range skills {
		requires := make([]string, 0, len(s.Requires))
		for _, r := range s.Requires {
			if dep, ok := cat.Skill(r); ok {
				requires = append(requires, dep.Name)
			}
		}
		rows = append(rows, []string{s.ID, s.Name, s.Category, s.Difficulty, strings.Join(requires, ", ")})
	}
	fmt.Println(newTable("ID", "Skill", "Category", "Difficulty", "Requires").Rows(rows...).Render())
}

func printBranches(branches []library.Branch) {
	if len(branches) == 0 {
		printWarning("No matching branches")
		return
	}
	rows := make([][]string, 0, len(branches))
	for _, b := range branches {
		rows = append(rows, []string{b.ID, b.Name, strings.Join(b.Skills, ", ")})
	}
	fmt.Println(newTable("ID", "Branch", "Skills").Rows(rows...).Render())
}

// newTable returns a rounded table with the CLI's header style.
func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styleHeader.Padding(0, 1)
			}
			if col == 0 {
				return StyleDim.Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})
}
