package lint

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/sprite-ai/lintlens/internal/model"
)

// ESLint `--format json` output: one result object per file.
type eslintResult struct {
	FilePath string          `json:"filePath"`
	Messages []eslintMessage `json:"messages"`
}

type eslintMessage struct {
	RuleID   string `json:"ruleId"`
	Severity int    `json:"severity"` // 1 = warning, 2 = error
	Message  string `json:"message"`
	Line     int    `json:"line"`
	Column   int    `json:"column"`
}

// ParseESLintJSON decodes ESLint JSON results into the same grouping
// the text parser produces. Files outside the project prefix are
// skipped, as are messages with an unknown severity or no rule
// (parse-stage fatal errors carry a nil ruleId).
func ParseESLintJSON(r io.Reader, opts Options) (*model.ResultSet, error) {
	var results []eslintResult
	if err := json.NewDecoder(r).Decode(&results); err != nil {
		return nil, fmt.Errorf("decoding eslint json: %w", err)
	}

	rs := model.NewResultSet()
	for _, res := range results {
		if opts.Prefix == "" || !strings.Contains(res.FilePath, opts.Prefix) {
			continue
		}
		for _, msg := range res.Messages {
			var sev model.Severity
			switch msg.Severity {
			case 2:
				sev = model.SeverityError
			case 1:
				sev = model.SeverityWarning
			default:
				continue
			}
			if msg.RuleID == "" {
				continue
			}
			rs.Add(res.FilePath, model.Diagnostic{
				Line:     msg.Line,
				Column:   msg.Column,
				Severity: sev,
				Message:  msg.Message,
				Rule:     msg.RuleID,
			})
		}
	}

	return rs, nil
}
