package cmd

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/timesdrill/internal/quizgen"
	"github.com/abhisek/timesdrill/internal/screen"
	"github.com/abhisek/timesdrill/internal/session"
	"github.com/abhisek/timesdrill/internal/worksheet"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Write a question set as a worksheet",
	Long: "Generate questions without starting the quiz and write them as plain\n" +
		"text, JSON (replayable with play --worksheet) or an Excel workbook.",
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().IntSlice("numbers", nil, "Tables to practise, e.g. 2,3,7 (required)")
	generateCmd.Flags().Int("count", 10, "Number of questions")
	generateCmd.Flags().String("level", string(quizgen.LevelMedium), "Difficulty: easy, medium or hard")
	generateCmd.Flags().String("format", string(worksheet.FormatText), "Output format: text, json or xlsx")
	generateCmd.Flags().StringP("output", "o", "", "Output file (stdout when empty; required for xlsx)")
	generateCmd.Flags().Uint64("seed", 0, "Random seed for a reproducible worksheet")

	_ = generateCmd.MarkFlagRequired("numbers")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	numbers, _ := cmd.Flags().GetIntSlice("numbers")
	count, _ := cmd.Flags().GetInt("count")
	levelVal, _ := cmd.Flags().GetString("level")
	formatVal, _ := cmd.Flags().GetString("format")
	output, _ := cmd.Flags().GetString("output")
	seed, _ := cmd.Flags().GetUint64("seed")

	level, err := quizgen.ParseLevel(levelVal)
	if err != nil {
		return err
	}
	format, err := worksheet.ParseFormat(formatVal)
	if err != nil {
		return err
	}
	if format == worksheet.FormatXLSX && output == "" {
		return errors.New("--output is required for xlsx")
	}

	e, err := loadEnv(cmd)
	if err != nil {
		return err
	}
	defer e.Close()

	settings := session.Settings{Selection: numbers, Count: count, Level: level}
	if err := settings.Validate(); err != nil {
		return fmt.Errorf("%s: %w", e.printer.T("err.invalid_input"), err)
	}

	var opts []quizgen.Option
	seeded := cmd.Flags().Changed("seed")
	if seeded {
		opts = append(opts, quizgen.WithSeed(seed))
	}
	gen := quizgen.New(opts...)

	questions, err := gen.GenerateChunked(cmd.Context(), settings.Request(e.profile(level)), e.cfg.GenTimeout, nil)
	if err != nil {
		msg, _ := screen.GenerationErrorText(e.printer, err)
		e.log.Info("generation failed", "error", err)
		return errors.New(msg)
	}

	ws := worksheet.New(level, settings.Selection, questions, time.Now())
	if seeded {
		ws.Seed = &seed
	}
	e.log.Info("worksheet generated",
		"questions", len(questions), "format", string(format), "output", output)

	if output == "" {
		return worksheet.Write(os.Stdout, ws, format, e.printer)
	}
	if err := worksheet.WriteFile(output, ws, format, e.printer); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Wrote %d questions to %s\n", len(questions), output)
	return nil
}
