package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aryanbv/folio/internal/catalog"
	"github.com/aryanbv/folio/internal/output"
	"github.com/aryanbv/folio/internal/profile"
	"github.com/aryanbv/folio/internal/techstack"
)

var (
	techCategory string
	techQuery    string
)

var techCmd = &cobra.Command{
	Use:   "tech",
	Short: "Show the technology grid",
	Long: `Score every catalog technology from the live GitHub profile: language
share first, then the number of repositories using it, then the catalog's
own rating. Technologies seen on GitHub but absent from the catalog are
listed under "discovered".`,
	RunE: runTech,
}

func init() {
	techCmd.Flags().StringVar(&techCategory, "category", "", "Filter by category id (all, featured, languages, frontend, ...)")
	techCmd.Flags().StringVar(&techQuery, "query", "", "Case-insensitive search text")
	rootCmd.AddCommand(techCmd)
}

func runTech(cmd *cobra.Command, args []string) error {
	rt, err := loadRuntime()
	if err != nil {
		return err
	}
	if err := rt.agg.RefreshSource(cmd.Context(), profile.SourceGitHub); err != nil {
		return err
	}

	snap := rt.agg.Board().Get(profile.SourceGitHub)
	engine := techstack.FromSnapshot(snap, rt.catalog.Defaults())
	items := catalog.Apply(engine.Items(rt.catalog), catalog.Query{Category: techCategory, Search: techQuery})
	summary := techstack.Summarize(items)

	w := cmd.OutOrStdout()
	if flagJSON {
		return writeJSON(w, map[string]any{
			"items":   items,
			"summary": summary,
		})
	}

	fmt.Fprintln(w, output.Section("Tech Stack "+output.StatusBadge(snap)))
	if len(items) == 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, " No technologies match.")
		return nil
	}

	var tbl *output.Table
	current := ""
	for _, it := range items {
		if it.Category != current {
			if tbl != nil {
				tbl.Fprint(w)
			}
			current = it.Category
			fmt.Fprintln(w)
			fmt.Fprintln(w, " "+output.StyleBold.Render(rt.catalog.CategoryTitle(current)))
			tbl = output.NewTable("Technology", "Proficiency", "Projects", "Signal").AlignRight(2)
		}
		tbl.AddRow(it.Name, output.ProficiencyBar(it.Proficiency, 20), output.Count(it.ProjectCount), it.Signal)
	}
	tbl.Fprint(w)

	fmt.Fprintln(w)
	fmt.Fprintf(w, " %d technologies across %d categories, average proficiency %d%%, %s project uses\n",
		summary.Total, summary.Categories, summary.AverageProficiency, output.Count(summary.TotalProjects))
	return nil
}
