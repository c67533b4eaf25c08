package ironlogctl

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/2beens/ironlog/internal/ironlog/format"
	"github.com/2beens/ironlog/internal/ironlog/view"

	"github.com/spf13/cobra"
)

func newPaceCmd() *cobra.Command {
	var distance, duration string
	cmd := &cobra.Command{
		Use:   "pace",
		Short: "Compute the pace for a distance and a duration",
		RunE: func(cmd *cobra.Command, _ []string) error {
			pace := format.Pace(format.ParseOptionalFloat(distance), format.ParseOptionalFloat(duration))
			if pace == nil {
				return fmt.Errorf("distance and duration must both be positive numbers")
			}
			fmt.Fprintln(cmd.OutOrStdout(), format.PaceLabel(*pace))
			return nil
		},
	}
	cmd.Flags().StringVarP(&distance, "distance", "d", "", "distance in km")
	cmd.Flags().StringVarP(&duration, "duration", "t", "", "duration in minutes")
	return cmd
}

func newExercisesCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "exercises",
		Short: "List the exercise catalog",
		RunE: func(cmd *cobra.Command, _ []string) error {
			exercises, err := opts.client().ListExercises(opts.context(cmd))
			if err != nil {
				return err
			}
			tw := newTabWriter(cmd.OutOrStdout())
			for _, e := range exercises {
				equipment := ""
				if e.Equipment != nil {
					equipment = *e.Equipment
				}
				muscle := ""
				if e.MuscleGroup != nil {
					muscle = *e.MuscleGroup
				}
				fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", e.ID, e.Name, muscle, equipment)
			}
			return tw.Flush()
		},
	}
}

func newHistoryCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "List past sessions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			sessions, err := opts.client().ListSessions(opts.context(cmd))
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(sessions) == 0 {
				fmt.Fprintln(out, "No sessions yet. Start your first workout!")
				return nil
			}

			tw := newTabWriter(out)
			for _, card := range view.NewHistoryCards(sessions) {
				chips := make([]string, 0, len(card.Chips))
				for _, c := range card.Chips {
					chips = append(chips, c.Text)
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\n", card.Date, strings.Join(chips, " · "), card.Notes)
			}
			return tw.Flush()
		},
	}
}

func newSessionCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "session <id>",
		Short: "Show the sets and cardio of one session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil || id <= 0 {
				return fmt.Errorf("invalid session id: %s", args[0])
			}
			detail, err := opts.client().GetSession(opts.context(cmd), id)
			if err != nil {
				return err
			}
			writeSession(cmd.OutOrStdout(), view.NewSessionView(detail))
			return nil
		},
	}
}

func writeSession(out io.Writer, sv view.SessionView) {
	fmt.Fprintf(out, "Session #%d  %s\n", sv.ID, sv.Date)
	if sv.Notes != "" {
		fmt.Fprintf(out, "📝 %s\n", sv.Notes)
	}
	if sv.Calories != "" {
		fmt.Fprintf(out, "🔥 %s\n", sv.Calories)
	}
	if sv.Empty {
		fmt.Fprintln(out, "No sets logged in this session.")
		return
	}

	for _, g := range sv.Groups {
		if g.Muscle != "" {
			fmt.Fprintf(out, "\n%s (%s)\n", g.Name, g.Muscle)
		} else {
			fmt.Fprintf(out, "\n%s\n", g.Name)
		}
		for _, s := range g.Sets {
			line := fmt.Sprintf("  %d. %s", s.SetNumber, s.Main)
			if s.Sub != "" {
				line += "  (" + s.Sub + ")"
			}
			fmt.Fprintln(out, line)
		}
	}
	for _, g := range sv.Cardio {
		fmt.Fprintf(out, "\n%s %s\n", g.Icon, g.Title)
		for _, c := range g.Entries {
			line := "  " + c.Main
			if c.Sub != "" {
				line += "  (" + c.Sub + ")"
			}
			fmt.Fprintln(out, line)
		}
	}
}

func newBodyWeightCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:     "bodyweight",
		Aliases: []string{"bw"},
		Short:   "List body weight entries",
		RunE: func(cmd *cobra.Command, _ []string) error {
			entries, err := opts.client().ListBodyWeight(opts.context(cmd))
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(entries) == 0 {
				fmt.Fprintln(out, "No entries yet.")
				return nil
			}
			tw := newTabWriter(out)
			for _, row := range view.NewBodyWeightRows(entries) {
				fmt.Fprintf(tw, "%s\t%s kg\t%s\n", row.Date, row.Weight, row.Notes)
			}
			return tw.Flush()
		},
	}
}

func newForgeCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "forge",
		Short: "Show training totals and the calendar heatmap",
		RunE: func(cmd *cobra.Command, _ []string) error {
			overview, err := opts.client().AnalyticsOverview(opts.context(cmd))
			if err != nil {
				return err
			}
			forge := view.BuildForge(overview, time.Now())
			out := cmd.OutOrStdout()

			tw := newTabWriter(out)
			for _, p := range forge.Pills {
				fmt.Fprintf(tw, "%s\t%s\n", p.Label, p.Value)
			}
			if err := tw.Flush(); err != nil {
				return err
			}

			fmt.Fprintln(out)
			writeHeatmap(out, forge.Heatmap)
			return nil
		},
	}
}

var heatmapGlyphs = []string{"·", "░", "▒", "▓", "█"}

// writeHeatmap prints one row per weekday, one column per week.
func writeHeatmap(out io.Writer, h view.Heatmap) {
	if h.Empty {
		fmt.Fprintln(out, view.NoDataText)
		return
	}
	for day := 0; day < 7; day++ {
		var sb strings.Builder
		for _, week := range h.Weeks {
			if day >= len(week) {
				sb.WriteString(" ")
				continue
			}
			sb.WriteString(heatmapGlyphs[week[day].Level])
		}
		fmt.Fprintln(out, sb.String())
	}
}

func newTabWriter(out io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
}
