package app

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/aryanbv/folio/internal/catalog"
	"github.com/aryanbv/folio/internal/output"
	"github.com/aryanbv/folio/internal/profile"
)

var (
	statsContributions bool
	statsDays          int
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show GitHub and LeetCode dashboards",
	Long: `Fetch the GitHub profile and LeetCode statistics concurrently and render
both dashboards. A provider that cannot be reached is shown with its cached
fallback numbers and marked [cached]. Platforms without a public API are
listed from the catalog and marked [static].`,
	RunE: runStats,
}

func init() {
	statsCmd.Flags().BoolVar(&statsContributions, "contributions", false, "Include the contribution heatmap")
	statsCmd.Flags().IntVar(&statsDays, "days", 90, fmt.Sprintf("Heatmap window in days (at most %d)", profile.MaxContributionDays))
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	if statsContributions && statsDays < 1 {
		return fmt.Errorf("--days must be positive, got %d", statsDays)
	}
	statsDays = min(statsDays, profile.MaxContributionDays)

	rt, err := loadRuntime()
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	if err := rt.agg.Refresh(ctx); err != nil {
		return err
	}
	board := rt.agg.Board()
	gh := board.Get(profile.SourceGitHub)
	lc := board.Get(profile.SourceLeetCode)

	var days []profile.ContributionDay
	if statsContributions {
		days, err = rt.github.Contributions(ctx, statsDays)
		if err != nil {
			logger.Warn("contributions unavailable", "kind", profile.Classify(err), "err", err)
		}
	}

	w := cmd.OutOrStdout()
	if flagJSON {
		result := map[string]any{
			"github":    gh,
			"leetcode":  lc,
			"platforms": rt.catalog.Platforms,
		}
		if statsContributions {
			result["contributions"] = days
		}
		return writeJSON(w, result)
	}

	now := time.Now()
	renderGitHub(w, gh, rt.cfg.GitHub.ShowcaseLimit, now)
	renderLeetCode(w, lc)
	for _, p := range rt.catalog.Platforms {
		renderPlatform(w, p)
	}
	if statsContributions {
		fmt.Fprintln(w, output.Section(fmt.Sprintf("Contributions (last %d days)", statsDays)))
		fmt.Fprintln(w)
		fmt.Fprint(w, output.Heatmap(days))
	}
	return nil
}

func renderGitHub(w io.Writer, s *profile.Snapshot, showcase int, now time.Time) {
	fmt.Fprintln(w, output.Section("GitHub "+output.StatusBadge(s)))
	fmt.Fprintln(w)
	if s == nil || s.Status == profile.StatusError {
		fmt.Fprintln(w, " "+output.StyleMuted.Render(unavailable(s)))
		return
	}

	if p := s.Profile; p != nil {
		name := p.Login
		if p.Name != "" {
			name = fmt.Sprintf("%s (%s)", p.Name, p.Login)
		}
		fmt.Fprintf(w, " %s  joined %s\n", output.StyleBold.Render(name), output.Since(p.CreatedAt, now))
		if p.Bio != "" {
			fmt.Fprintf(w, " %s\n", output.StyleMuted.Render(p.Bio))
		}
		fmt.Fprintln(w)
	}

	tbl := output.NewTable("Metric", "Value").AlignRight(1)
	tbl.AddRow("Repositories", output.Count(s.RepositoryCount))
	tbl.AddRow("Stars", output.Count(s.StarCount))
	tbl.AddRow("Forks", output.Count(s.ForkCount))
	tbl.AddRow("Followers", output.Count(s.FollowerCount))
	tbl.AddRow("Following", output.Count(s.FollowingCount))
	tbl.Fprint(w)

	if len(s.LanguageBreakdown) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, " "+output.StyleBold.Render("Languages"))
		for _, ls := range s.LanguageBreakdown {
			fmt.Fprintf(w, " %s\n", output.ShareBar(ls, 24))
		}
	}

	if s.IsLive() {
		if repos := profile.Showcase(s.Repositories, showcase); len(repos) > 0 {
			fmt.Fprintln(w)
			repoTbl := output.NewTable("Repository", "Language", "Stars", "Updated").AlignRight(2)
			for _, r := range repos {
				repoTbl.AddRow(r.Name, r.PrimaryLanguage, output.Count(r.StarCount), output.Since(r.UpdatedAt, now))
			}
			repoTbl.Fprint(w)
		}
	}

	if s.Message != "" {
		fmt.Fprintln(w)
		fmt.Fprintln(w, " "+output.StyleWarning.Render(s.Message))
	}
}

func renderLeetCode(w io.Writer, s *profile.Snapshot) {
	fmt.Fprintln(w, output.Section("LeetCode "+output.StatusBadge(s)))
	fmt.Fprintln(w)
	if s == nil || s.Coding == nil {
		fmt.Fprintln(w, " "+output.StyleMuted.Render(unavailable(s)))
		return
	}

	c := s.Coding
	tbl := output.NewTable("Metric", "Value").AlignRight(1)
	tbl.AddRow("Solved", output.Count(c.TotalSolved))
	tbl.AddRow("Easy", output.StyleSuccess.Render(output.Count(c.EasySolved)))
	tbl.AddRow("Medium", output.StyleWarning.Render(output.Count(c.MediumSolved)))
	tbl.AddRow("Hard", output.StyleError.Render(output.Count(c.HardSolved)))
	tbl.AddRow("Ranking", output.Count(c.Ranking))
	tbl.AddRow("Acceptance", output.Percent(c.AcceptanceRate))
	tbl.AddRow("Contribution points", output.Count(c.ContributionPoints))
	tbl.AddRow("Reputation", output.Count(c.Reputation))
	tbl.Fprint(w)

	if s.Message != "" {
		fmt.Fprintln(w)
		fmt.Fprintln(w, " "+output.StyleWarning.Render(s.Message))
	}
}

func renderPlatform(w io.Writer, p catalog.Platform) {
	fmt.Fprintln(w, output.Section(p.Name+" "+output.StyleMuted.Render("[static]")))
	fmt.Fprintln(w)
	tbl := output.NewTable("Metric", "Value").AlignRight(1)
	for _, st := range p.Stats {
		tbl.AddRow(st.Label, st.Value)
	}
	tbl.Fprint(w)
}

func unavailable(s *profile.Snapshot) string {
	if s != nil && s.Message != "" {
		return s.Message
	}
	return "No data available."
}
