package app

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aryanbv/folio/internal/catalog"
	"github.com/aryanbv/folio/internal/output"
	"github.com/aryanbv/folio/internal/profile"
	"github.com/aryanbv/folio/internal/techstack"
)

var (
	projectsCategory string
	projectsQuery    string
	projectsLive     bool

	certsCategory string
	certsQuery    string

	timelineType string
)

var projectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "Show the project showcase",
	Long: `List the curated projects. With --live, showcase repositories from the
GitHub profile (non-fork, with a description) are appended.`,
	RunE: runProjects,
}

var certsCmd = &cobra.Command{
	Use:   "certs",
	Short: "Show certificates",
	RunE:  runCerts,
}

var timelineCmd = &cobra.Command{
	Use:   "timeline",
	Short: "Show the education, project and achievement timeline",
	RunE:  runTimeline,
}

func init() {
	projectsCmd.Flags().StringVar(&projectsCategory, "category", "", "Filter by category id (all, featured, ai, web, fullstack, ...)")
	projectsCmd.Flags().StringVar(&projectsQuery, "query", "", "Case-insensitive search text")
	projectsCmd.Flags().BoolVar(&projectsLive, "live", false, "Include showcase repositories from GitHub")

	certsCmd.Flags().StringVar(&certsCategory, "category", "", "Filter by category id (all, featured, ai, dsa, ...)")
	certsCmd.Flags().StringVar(&certsQuery, "query", "", "Case-insensitive search text")

	timelineCmd.Flags().StringVar(&timelineType, "type", catalog.CategoryAll,
		"Entry type ("+strings.Join(catalog.TimelineTabs, ", ")+")")

	rootCmd.AddCommand(projectsCmd, certsCmd, timelineCmd)
}

func runProjects(cmd *cobra.Command, args []string) error {
	rt, err := loadRuntime()
	if err != nil {
		return err
	}

	var snap *profile.Snapshot
	if projectsLive {
		if err := rt.agg.RefreshSource(cmd.Context(), profile.SourceGitHub); err != nil {
			return err
		}
		snap = rt.agg.Board().Get(profile.SourceGitHub)
	}
	all := techstack.Showcase(snap, rt.catalog, rt.cfg.GitHub.ShowcaseLimit)
	projects := catalog.Apply(all, catalog.Query{Category: projectsCategory, Search: projectsQuery})

	w := cmd.OutOrStdout()
	if flagJSON {
		return writeJSON(w, map[string]any{"projects": projects})
	}

	fmt.Fprintln(w, output.Section(fmt.Sprintf("Projects (%d)", len(projects))))
	for _, p := range projects {
		fmt.Fprintln(w)
		title := output.StyleBold.Render(p.Title)
		if p.Featured {
			title += " " + output.StyleAccent.Render("★")
		}
		fmt.Fprintf(w, " %s  %s\n", title, output.StyleMuted.Render(p.Category))
		if p.Description != "" {
			fmt.Fprintf(w, " %s\n", p.Description)
		}
		if len(p.Technologies) > 0 {
			fmt.Fprintf(w, " %s\n", output.StyleMuted.Render(strings.Join(p.Technologies, " · ")))
		}
		for _, link := range []string{p.GithubURL, p.LiveURL} {
			if link != "" {
				fmt.Fprintf(w, " %s\n", link)
			}
		}
	}
	return nil
}

func runCerts(cmd *cobra.Command, args []string) error {
	rt, err := loadRuntime()
	if err != nil {
		return err
	}
	certs := catalog.Apply(rt.catalog.Certificates, catalog.Query{Category: certsCategory, Search: certsQuery})

	w := cmd.OutOrStdout()
	if flagJSON {
		return writeJSON(w, map[string]any{"certificates": certs})
	}

	fmt.Fprintln(w, output.Section(fmt.Sprintf("Certificates (%d)", len(certs))))
	fmt.Fprintln(w)
	tbl := output.NewTable("Title", "Issuer", "Issued", "Credential")
	for _, c := range certs {
		tbl.AddRow(c.Title, c.Issuer, c.IssueDate, c.CredentialID)
	}
	tbl.Fprint(w)
	return nil
}

func runTimeline(cmd *cobra.Command, args []string) error {
	rt, err := loadRuntime()
	if err != nil {
		return err
	}
	entries := rt.catalog.TimelineFor(timelineType)

	w := cmd.OutOrStdout()
	if flagJSON {
		return writeJSON(w, map[string]any{"entries": entries})
	}

	fmt.Fprintln(w, output.Section("Timeline"))
	for _, e := range entries {
		fmt.Fprintln(w)
		date := e.Date
		if e.Current {
			date += " " + output.StyleAccent.Render("(current)")
		}
		fmt.Fprintf(w, " %s  %s\n", output.StyleMuted.Render(date), output.StyleBold.Render(e.Title))
		fmt.Fprintf(w, " %s\n", e.Organization)
		for _, a := range e.Achievements {
			fmt.Fprintf(w, "   • %s\n", a)
		}
	}
	return nil
}
