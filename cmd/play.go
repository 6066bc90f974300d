package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/timesdrill/internal/app"
	"github.com/abhisek/timesdrill/internal/quizgen"
	"github.com/abhisek/timesdrill/internal/session"
	"github.com/abhisek/timesdrill/internal/worksheet"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a quiz",
	Long: "Start a quiz straight away. With --numbers the questions are generated\n" +
		"immediately; with --worksheet a saved JSON worksheet is replayed.",
	RunE: runPlay,
}

func init() {
	playCmd.Flags().IntSlice("numbers", nil, "Tables to practise, e.g. 2,3,7")
	playCmd.Flags().Int("count", 10, "Number of questions")
	playCmd.Flags().String("level", string(quizgen.LevelMedium), "Difficulty: easy, medium or hard")
	playCmd.Flags().String("worksheet", "", "Replay a JSON worksheet written by generate")
	playCmd.MarkFlagsMutuallyExclusive("numbers", "worksheet")
}

func runPlay(cmd *cobra.Command, args []string) error {
	numbers, _ := cmd.Flags().GetIntSlice("numbers")
	count, _ := cmd.Flags().GetInt("count")
	levelVal, _ := cmd.Flags().GetString("level")
	path, _ := cmd.Flags().GetString("worksheet")

	level, err := quizgen.ParseLevel(levelVal)
	if err != nil {
		return err
	}

	e, err := loadEnv(cmd)
	if err != nil {
		return err
	}
	defer e.Close()

	opts := app.Options{Settings: session.Settings{Selection: numbers, Count: count, Level: level}}
	switch {
	case path != "":
		ws, err := worksheet.ReadFile(path, quizgen.New())
		if err != nil {
			return err
		}
		opts.Settings = session.Settings{Selection: ws.Selection, Count: len(ws.Items), Level: ws.Level}
		opts.Questions = ws.Questions()
		e.log.Info("replaying worksheet", "path", path, "questions", len(ws.Items))
	case len(numbers) > 0:
		if err := opts.Settings.Validate(); err != nil {
			return fmt.Errorf("%s: %w", e.printer.T("err.invalid_input"), err)
		}
		opts.AutoStart = true
	}

	if err := e.openStore(cmd); err != nil {
		return err
	}
	return runWith(e, opts)
}
