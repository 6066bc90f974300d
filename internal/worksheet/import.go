package worksheet

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/abhisek/timesdrill/internal/quizgen"
	"github.com/abhisek/timesdrill/internal/schemacheck"
)

//go:embed worksheet.schema.json
var schemaJSON []byte

var worksheetSchema = schemacheck.Schema{Name: "worksheet", Definition: schemaJSON}

// QuestionChecker re-checks imported questions. *quizgen.Generator
// satisfies it.
type QuestionChecker interface {
	Validate(q *quizgen.Question) error
}

// Read decodes a JSON worksheet. The document is checked against the
// worksheet schema first, then every question goes through check.
func Read(r io.Reader, check QuestionChecker) (*Worksheet, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read worksheet: %w", err)
	}
	if err := schemacheck.Validate(worksheetSchema, raw); err != nil {
		return nil, err
	}

	var ws Worksheet
	if err := json.Unmarshal(raw, &ws); err != nil {
		return nil, fmt.Errorf("decode worksheet: %w", err)
	}

	for i, it := range ws.Items {
		q := it.question()
		if err := check.Validate(&q); err != nil {
			return nil, fmt.Errorf("question %d (%s): %w", i+1, q.PromptText(), err)
		}
	}
	return &ws, nil
}

// ReadFile opens path and calls Read.
func ReadFile(path string, check QuestionChecker) (*Worksheet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open worksheet: %w", err)
	}
	defer f.Close()

	ws, err := Read(f, check)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ws, nil
}
