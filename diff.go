package xjson

import (
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Diff renders a line-oriented diff between two records' yaml trees,
// "-" for lines only in from, "+" for lines only in to. Equal records
// diff to the empty string.
func Diff(from, to *Record) string {
	fromYaml := from.Yaml() + "\n"
	toYaml := to.Yaml() + "\n"
	diffCfg := diffpatch.New()
	fromRunes, toRunes, lines := diffCfg.DiffLinesToRunes(fromYaml, toYaml)
	diffs := diffCfg.DiffCharsToLines(diffCfg.DiffMainRunes(fromRunes, toRunes, false), lines)
	var sb strings.Builder
	same := true
	for i := range diffs {
		diff := &diffs[i]
		var marker string
		switch diff.Type {
		case diffpatch.DiffDelete:
			marker = "-"
			same = false
		case diffpatch.DiffInsert:
			marker = "+"
			same = false
		case diffpatch.DiffEqual:
			marker = " "
		}
		for _, line := range splitLines(diff.Text) {
			sb.WriteString(marker)
			sb.WriteString(line)
			sb.WriteString("\n")
		}
	}
	if same {
		return ""
	}
	return sb.String()
}

func splitLines(text string) []string {
	lines := strings.Split(text, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	return lines
}
