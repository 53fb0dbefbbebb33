package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	dashboardTitle = "Real-Time Monitoring Dashboard"
	dashboardDesc  = "Task Processing and Resource Monitoring"

	paneMetricsTitle = "Resource Metrics"
	paneTasksTitle   = "Processed Tasks"
	paneGraphTitle   = "Task Dependency Graph"

	emptyPaneHint = "Waiting for a monitoring pass."
)

func (m Model) View() string {
	header := titleStyle.Render(dashboardTitle) + "\n" + descStyle.Render(dashboardDesc)
	if m.runs != nil {
		header += "\n" + descStyle.Render(m.historyLine())
	}

	metrics := m.renderSection(paneMetricsTitle, m.metricsContent())
	tasks := m.renderSection(paneTasksTitle, m.tasksContent())
	graph := m.renderSection(paneGraphTitle, m.graphContent())

	body := strings.Join([]string{header, metrics, tasks, graph}, "\n\n")
	return m.placeWithFooter(body, m.renderStatus(), m.renderFooter())
}

func (m Model) historyLine() string {
	line := fmt.Sprintf("History: %d runs", m.historyCount)
	if m.historyErr != nil {
		line += " (history unavailable)"
	}
	return line
}

func (m Model) metricsContent() string {
	if m.metrics == nil {
		return placeholderStyle.Render(emptyPaneHint)
	}
	mm := m.metrics
	lines := []string{
		fmt.Sprintf("%-12s %s", "Heap", formatBytes(mm.HeapBytes)),
		fmt.Sprintf("%-12s %d", "Goroutines", mm.Goroutines),
		fmt.Sprintf("%-12s %d", "GC Cycles", mm.GCCycles),
		fmt.Sprintf("%-12s %s", "Elapsed", mm.Elapsed),
		fmt.Sprintf("%-12s %d", "Tasks", mm.TaskCount),
	}
	return strings.Join(lines, "\n")
}

func (m Model) tasksContent() string {
	if m.tasks == nil {
		return placeholderStyle.Render(emptyPaneHint)
	}
	if len(m.tasks) == 0 {
		return placeholderStyle.Render("No tasks found in the sample text.")
	}
	lines := make([]string, 0, len(m.tasks))
	for _, t := range m.tasks {
		lines = append(lines, fmt.Sprintf("· (P%d) %s", t.Priority, truncate(t.Text, m.contentWidth()-10)))
	}
	return strings.Join(lines, "\n")
}

func (m Model) graphContent() string {
	if m.graph == "" {
		return placeholderStyle.Render(emptyPaneHint)
	}
	return m.graph
}

func (m Model) renderSection(title, content string) string {
	header := paneTitleStyle.Render(title)
	return header + "\n" + paneBoxStyle.Width(m.sectionWidth()).Render(content)
}

func (m Model) renderStatus() string {
	style := statusBarStyle
	switch m.statusKind {
	case statusSuccess:
		style = statusSuccessStyle
	case statusError:
		style = statusErrorStyle
	}
	text := m.status
	if m.running {
		text = m.spinner.View() + " " + text
	}
	if m.width == 0 {
		return style.Render(text)
	}
	flat := strings.ReplaceAll(text, "\n", " ")
	return style.Render(padRight(flat, m.width-style.GetHorizontalPadding()))
}

func (m Model) renderFooter() string {
	parts := make([]string, 0, 2)
	for _, binding := range m.keys.ShortHelp() {
		help := binding.Help()
		parts = append(parts, help.Key+" "+help.Desc)
	}
	return footerStyle.Render(strings.Join(parts, "  "))
}

func (m Model) placeWithFooter(body, statusLine, footer string) string {
	if m.height == 0 {
		return body + "\n\n" + statusLine + "\n" + footer
	}
	contentHeight := m.height - 2
	if contentHeight < 1 {
		contentHeight = 1
	}
	if lipgloss.Height(body) >= contentHeight {
		return body + "\n" + statusLine + "\n" + footer
	}
	main := lipgloss.Place(m.width, contentHeight, lipgloss.Left, lipgloss.Top, body)
	return main + "\n" + statusLine + "\n" + footer
}

func (m Model) sectionWidth() int {
	if m.width == 0 {
		return 76
	}
	width := m.width - 4
	if width < 20 {
		width = m.width
	}
	return width
}

func (m Model) contentWidth() int {
	return m.sectionWidth() - paneBoxStyle.GetHorizontalFrameSize()
}

func padRight(s string, width int) string {
	if width <= 0 {
		return s
	}
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width <= 1 {
		return string(runes[:width])
	}
	return string(runes[:width-1]) + "…"
}

func formatBytes(b uint64) string {
	const unit = 1024
	if b < unit {
		return fmt.Sprintf("%d B", b)
	}
	div, exp := uint64(unit), 0
	for n := b / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(b)/float64(div), "KMGTPE"[exp])
}
