package engine

import (
	"fmt"
	"strings"
)

// minTermLength filters out short connective words when comparing tasks.
const minTermLength = 6

var graphStopwords = map[string]bool{
	"dynamic":  true,
	"advanced": true,
	"complex":  true,
	"ensure":   true,
	"enable":   true,
	"develop":  true,
}

// buildEdges infers dependencies between tasks: a later task that shares a
// significant term with an earlier one depends on it. Edges always point
// forward in task order, so the graph is acyclic by construction.
func buildEdges(tasks []Task) []Edge {
	terms := make([]map[string]bool, len(tasks))
	for i, t := range tasks {
		terms[i] = significantTerms(t.Text)
	}
	var edges []Edge
	for j := 1; j < len(tasks); j++ {
		for i := 0; i < j; i++ {
			if sharesTerm(terms[i], terms[j]) {
				edges = append(edges, Edge{From: i, To: j})
			}
		}
	}
	return edges
}

func significantTerms(text string) map[string]bool {
	terms := make(map[string]bool)
	for _, word := range strings.Fields(strings.ToLower(text)) {
		word = strings.Trim(word, ".,;:()\"'")
		if len(word) < minTermLength || graphStopwords[word] {
			continue
		}
		terms[word] = true
	}
	return terms
}

func sharesTerm(a, b map[string]bool) bool {
	for term := range a {
		if b[term] {
			return true
		}
	}
	return false
}

// renderGraph draws the dependency graph as indented ASCII, one node per
// task in input order with its prerequisites listed beneath it.
func renderGraph(tasks []Task, edges []Edge) string {
	dependsOn := make(map[int][]int)
	for _, e := range edges {
		dependsOn[e.To] = append(dependsOn[e.To], e.From)
	}

	var b strings.Builder
	b.WriteString("Task Dependency Graph\n")
	for i, t := range tasks {
		fmt.Fprintf(&b, "[%d] %s\n", i+1, clip(t.Text, 64))
		for _, from := range dependsOn[i] {
			fmt.Fprintf(&b, "    └─ depends on [%d] %s\n", from+1, clip(tasks[from].Text, 48))
		}
	}
	fmt.Fprintf(&b, "%d tasks, %d dependencies", len(tasks), len(edges))
	return b.String()
}

func clip(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width-1]) + "…"
}
