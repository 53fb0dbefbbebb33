package engine

import (
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/google/uuid"
)

// nearDuplicateThreshold is the normalized edit distance below which two
// task lines are treated as the same task.
const nearDuplicateThreshold = 0.2

// priorityKeywords map action verbs to a priority contribution. Unknown
// tasks get priority 1.
var priorityKeywords = map[string]int{
	"develop": 3,
	"build":   3,
	"fix":     3,
	"test":    2,
	"ensure":  2,
	"verify":  2,
	"enable":  1,
	"refine":  1,
	"review":  1,
}

// parseTasks extracts an ordered task list from free-form conversation text.
// Lines are split on sentence boundaries, trimmed, deduplicated against
// near-identical earlier lines, and scored by keyword priority.
func parseTasks(text string) []Task {
	var tasks []Task
	for _, raw := range splitStatements(text) {
		stmt := strings.TrimSuffix(strings.TrimSpace(raw), ".")
		if stmt == "" {
			continue
		}
		if isNearDuplicate(stmt, tasks) {
			continue
		}
		tasks = append(tasks, Task{
			ID:       uuid.NewString(),
			Text:     stmt,
			Priority: scorePriority(stmt),
			Position: len(tasks),
		})
	}
	return tasks
}

// splitStatements breaks text into candidate task statements: one per line,
// and within a line one per sentence.
func splitStatements(text string) []string {
	var out []string
	for _, line := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		out = append(out, strings.SplitAfter(line, ". ")...)
	}
	return out
}

func isNearDuplicate(stmt string, existing []Task) bool {
	candidate := strings.ToLower(stmt)
	for _, t := range existing {
		prior := strings.ToLower(t.Text)
		longest := len(candidate)
		if len(prior) > longest {
			longest = len(prior)
		}
		if longest == 0 {
			continue
		}
		dist := levenshtein.ComputeDistance(candidate, prior)
		if float64(dist)/float64(longest) < nearDuplicateThreshold {
			return true
		}
	}
	return false
}

func scorePriority(stmt string) int {
	priority := 1
	for _, word := range strings.Fields(strings.ToLower(stmt)) {
		if p, ok := priorityKeywords[strings.Trim(word, ".,;:")]; ok && p > priority {
			priority = p
		}
	}
	return priority
}
