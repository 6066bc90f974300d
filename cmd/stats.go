package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/timesdrill/internal/screen"
	"github.com/abhisek/timesdrill/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show best score and average response time",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := loadEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()
		if err := e.openStore(cmd); err != nil {
			return err
		}

		st, err := e.store.StatsRepo().Load(cmd.Context())
		if err != nil {
			return fmt.Errorf("load stats: %w", err)
		}

		p := e.printer
		fmt.Printf("%-14s %s\n", p.T("home.best")+":", screen.BestScoreText(p, st))
		fmt.Printf("%-14s %s\n", p.T("home.avg")+":", screen.AverageTimeText(p, st))
		return nil
	},
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent quizzes",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		e, err := loadEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()
		if err := e.openStore(cmd); err != nil {
			return err
		}

		sessions, err := e.store.EventRepo().QuerySessions(cmd.Context(), store.QueryOpts{Limit: limit})
		if err != nil {
			return fmt.Errorf("query sessions: %w", err)
		}

		p := e.printer
		if len(sessions) == 0 {
			fmt.Println(p.T("history.empty"))
			return nil
		}

		header := p.T("history.header")
		fmt.Println(header)
		fmt.Println(strings.Repeat("─", len([]rune(header))))
		for _, rec := range sessions {
			fmt.Println(screen.SessionRowText(p, rec))
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().IntP("limit", "n", 20, "Number of quizzes to show")
}
