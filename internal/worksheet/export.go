package worksheet

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/abhisek/timesdrill/internal/i18n"
	"github.com/abhisek/timesdrill/internal/store"
)

// Write encodes ws to out in the given format. Labels are rendered with p.
func Write(out io.Writer, ws *Worksheet, format Format, p *i18n.Printer) error {
	switch format {
	case FormatText:
		return writeText(out, ws, p)
	case FormatJSON:
		return writeJSON(out, ws)
	case FormatXLSX:
		return writeXLSX(out, ws, p)
	}
	return fmt.Errorf("unknown worksheet format %q", format)
}

// WriteFile writes ws to path, creating parent directories.
func WriteFile(path string, ws *Worksheet, format Format, p *i18n.Printer) error {
	if err := store.EnsureDir(path); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create worksheet: %w", err)
	}
	if err := Write(f, ws, format, p); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func writeJSON(out io.Writer, ws *Worksheet) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(ws); err != nil {
		return fmt.Errorf("encode worksheet: %w", err)
	}
	return nil
}

func writeText(out io.Writer, ws *Worksheet, p *i18n.Printer) error {
	var b strings.Builder
	title := p.T("worksheet.title")
	fmt.Fprintf(&b, "%s\n%s\n", title, strings.Repeat("=", len([]rune(title))))
	fmt.Fprintf(&b, "%s: %s\n", p.T("setup.level"), p.T("level."+string(ws.Level)))
	if len(ws.Selection) > 0 {
		fmt.Fprintf(&b, "%s: %s\n", p.T("setup.numbers"), joinInts(ws.Selection))
	}
	b.WriteString("\n")

	width := len(strconv.Itoa(len(ws.Items)))
	for i, it := range ws.Items {
		q := it.question()
		fmt.Fprintf(&b, "%*d. %-14s", width, i+1, q.PromptText())
		for j, o := range it.Options {
			fmt.Fprintf(&b, "  %s %d", optionLetter(j), o)
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "\n%s\n", p.T("worksheet.answer_key"))
	for i, it := range ws.Items {
		fmt.Fprintf(&b, "%*d. %d\n", width, i+1, it.Answer)
	}

	_, err := io.WriteString(out, b.String())
	return err
}

func writeXLSX(out io.Writer, ws *Worksheet, p *i18n.Printer) error {
	f := excelize.NewFile()
	defer f.Close()

	questions := p.T("worksheet.questions")
	answers := p.T("worksheet.answer_key")
	if err := f.SetSheetName("Sheet1", questions); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	if _, err := f.NewSheet(answers); err != nil {
		return fmt.Errorf("create answer sheet: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("create style: %w", err)
	}

	qHeader := []any{p.T("worksheet.number"), p.T("worksheet.question"), "a)", "b)", "c)", "d)"}
	if err := f.SetSheetRow(questions, "A1", &qHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	aHeader := []any{p.T("worksheet.number"), p.T("worksheet.question"), p.T("worksheet.answer")}
	if err := f.SetSheetRow(answers, "A1", &aHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for i, it := range ws.Items {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		prompt := it.question().PromptText()

		row := []any{i + 1, prompt}
		for _, o := range it.Options {
			row = append(row, o)
		}
		if err := f.SetSheetRow(questions, cell, &row); err != nil {
			return fmt.Errorf("write question %d: %w", i+1, err)
		}

		key := []any{i + 1, prompt, it.Answer}
		if err := f.SetSheetRow(answers, cell, &key); err != nil {
			return fmt.Errorf("write answer %d: %w", i+1, err)
		}
	}

	for _, sheet := range []string{questions, answers} {
		if err := f.SetCellStyle(sheet, "A1", "F1", bold); err != nil {
			return err
		}
		if err := f.SetColWidth(sheet, "B", "B", 16); err != nil {
			return err
		}
	}
	f.SetActiveSheet(0)

	if err := f.Write(out); err != nil {
		return fmt.Errorf("write xlsx: %w", err)
	}
	return nil
}

func joinInts(ns []int) string {
	parts := make([]string, len(ns))
	for i, n := range ns {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ", ")
}
