package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/lingo/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history [run-id]",
	Short: "Show completed lessons, or the answers of one lesson",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		target, _ := cmd.Flags().GetString("target")

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := cmd.Context()
		out := cmd.OutOrStdout()
		repo := s.EventRepo()

		if len(args) == 1 {
			answers, err := repo.QueryAnswers(ctx, args[0])
			if err != nil {
				return fmt.Errorf("query answers: %w", err)
			}
			if len(answers) == 0 {
				return fmt.Errorf("no answers recorded for lesson %q", args[0])
			}
			for _, a := range answers {
				mark := "✓"
				if !a.Correct {
					mark = "✗"
				}
				fmt.Fprintf(out, "%2d. %s %s\n", a.QuestionIndex+1, mark, a.Prompt)
				fmt.Fprintf(out, "      answered: %s\n", a.Given)
				if !a.Correct {
					fmt.Fprintf(out, "      expected: %s\n", a.Expected)
				}
			}
			return nil
		}

		lessons, err := repo.QueryLessons(ctx, store.QueryOpts{Limit: limit, Target: target})
		if err != nil {
			return fmt.Errorf("query lessons: %w", err)
		}
		if len(lessons) == 0 {
			fmt.Fprintln(out, "No lessons completed yet.")
			return nil
		}

		fmt.Fprintf(out, "%-16s  %-10s  %-12s  %-24s  %-7s  %s\n",
			"Date", "Language", "Difficulty", "Topic", "Score", "Run")
		fmt.Fprintln(out, strings.Repeat("─", 100))
		for _, l := range lessons {
			score := fmt.Sprintf("%d/%d", l.Score, l.Total)
			if l.EndedEarly {
				score += "*"
			}
			fmt.Fprintf(out, "%-16s  %-10s  %-12s  %-24s  %-7s  %s\n",
				l.Timestamp.Local().Format("2006-01-02 15:04"),
				truncate(l.TargetLanguage, 10),
				l.Difficulty,
				truncate(l.Topic, 24),
				score,
				l.RunID,
			)
		}

		stats, err := repo.StatsByLanguage(ctx)
		if err != nil {
			return fmt.Errorf("query language stats: %w", err)
		}
		fmt.Fprintln(out)
		fmt.Fprintln(out, "By Language")
		fmt.Fprintln(out, strings.Repeat("─", 48))
		for _, st := range stats {
			if target != "" && !strings.EqualFold(st.TargetLanguage, target) {
				continue
			}
			pct := 0
			if st.Total > 0 {
				pct = st.Score * 100 / st.Total
			}
			fmt.Fprintf(out, "%-12s  %3d lessons  %3d%% correct  %3d perfect\n",
				st.TargetLanguage, st.Lessons, pct, st.Perfect)
		}
		fmt.Fprintln(out, "\n* ran out of hearts")
		return nil
	},
}

func init() {
	historyCmd.Flags().IntP("limit", "n", 20, "Number of lessons to show")
	historyCmd.Flags().StringP("target", "t", "", "Only lessons for this language")
}
