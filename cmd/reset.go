package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete the best score, average time and quiz history",
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")
		if !yes {
			fmt.Print("Delete all statistics and quiz history? [y/N] ")
			scanner := bufio.NewScanner(os.Stdin)
			if !scanner.Scan() || !strings.EqualFold(strings.TrimSpace(scanner.Text()), "y") {
				fmt.Println("Nothing deleted.")
				return nil
			}
		}

		e, err := loadEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()
		if err := e.openStore(cmd); err != nil {
			return err
		}

		ctx := cmd.Context()
		if err := e.store.StatsRepo().Reset(ctx); err != nil {
			return fmt.Errorf("reset stats: %w", err)
		}
		if err := e.store.EventRepo().Reset(ctx); err != nil {
			return fmt.Errorf("reset history: %w", err)
		}
		e.log.Info("learner data reset")
		fmt.Println("Statistics and history deleted.")
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolP("yes", "y", false, "Do not ask for confirmation")
}
