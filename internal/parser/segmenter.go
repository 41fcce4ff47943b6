package parser

import (
	"strings"
	"unicode/utf8"
)

// segment разбивает транскрипт на фразы-кандидаты.
// Порядок фраз соответствует порядку в исходном тексте.
func segment(r *Rules, transcript string) []string {
	parts := r.splitRe.Split(transcript, -1)

	clauses := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if utf8.RuneCountInString(part) > r.minClauseLen {
			clauses = append(clauses, part)
		}
	}
	return clauses
}
