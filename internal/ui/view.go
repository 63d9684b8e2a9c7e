package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("42"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	metricStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212"))

	traceStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39"))

	fixedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("208"))

	statusStyle = lipgloss.NewStyle().
			Italic(true).
			Foreground(lipgloss.Color("245"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("driftlab — Wright-Fisher genetic drift"))
	b.WriteString("\n\n")

	p := m.params
	b.WriteString(labelStyle.Render(fmt.Sprintf(
		"N=%d  seed=%d  p00=%.2f  p01=%.2f  p11=%.2f  replicates=%d  batch=+%d",
		p.N, p.Seed, p.P00, p.P01, p.P11, p.Replicates, p.BatchSize)))
	b.WriteString("\n\n")

	if m.sess.Initialized() {
		b.WriteString(labelStyle.Render("generation "))
		b.WriteString(metricStyle.Render(fmt.Sprintf("%d", m.sess.Generation())))
		b.WriteString("\n\n")
		b.WriteString(m.renderTraces())
	} else {
		b.WriteString(labelStyle.Render("no populations yet"))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.mode == modeEditParams {
		b.WriteString(m.input.View())
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("enter apply · esc cancel"))
	} else {
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("i init · n/space +batch · e export csv · p params · q quit"))
	}
	b.WriteString("\n")
	return b.String()
}

func (m Model) renderTraces() string {
	traceWidth := m.width - 24
	if traceWidth < 10 {
		traceWidth = 40
	}

	var b strings.Builder
	for i, rep := range m.sess.Replicates() {
		history := rep.History()
		current := rep.Current()

		style := traceStyle
		if current == 0 || current == 1 {
			style = fixedStyle // fixed for one allele
		}

		b.WriteString(labelStyle.Render(fmt.Sprintf("rep_%-2d ", i+1)))
		b.WriteString(style.Render(Sparkline(history, traceWidth)))
		b.WriteString(metricStyle.Render(fmt.Sprintf(" %.3f", current)))
		b.WriteString("\n")
	}
	return b.String()
}
