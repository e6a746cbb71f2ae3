package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ahhahh555/gel-calculator/solver"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

func styleCell(row, _ int) lipgloss.Style {
	if row == table.HeaderRow {
		return headerStyle
	}
	return cellStyle
}

func stockLabel(c float64) string {
	return strconv.FormatFloat(c, 'f', -1, 64) + "%"
}

// mixKind is the integer/decimal classification shown to the user.
func mixKind(m solver.Mix) string {
	if m.IsInteger() {
		return "integer"
	}
	return "decimal"
}

// stockBreakdown renders "6%: 5.00ml + 10%: 1.00ml".
func stockBreakdown(stocks []float64, m solver.Mix) string {
	parts := make([]string, len(m.Volumes))
	for i, v := range m.Volumes {
		parts[i] = fmt.Sprintf("%s: %.2fml", stockLabel(stocks[i]), v)
	}
	return strings.Join(parts, " + ")
}

// FormatResult produces the ranked recipe table for one report.
func FormatResult(r Report) string {
	var b strings.Builder

	labels := make([]string, len(r.Stocks))
	for i, c := range r.Stocks {
		labels[i] = stockLabel(c)
	}
	title := fmt.Sprintf("Target %s in %.2fml from %s", stockLabel(r.Target), r.Volume, strings.Join(labels, ", "))
	if r.Name != "" {
		title = r.Name + ": " + title
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")

	t := table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(styleCell).
		Headers("#", "Stocks", "Diluent", "Diluent %", "Concentration", "Type")

	if len(r.Solutions) == 0 {
		t.Row("-", "no solution", "", "", "", "")
	}
	for i, m := range r.Solutions {
		t.Row(
			strconv.Itoa(i+1),
			stockBreakdown(r.Stocks, m),
			fmt.Sprintf("%.2fml", m.Diluent),
			fmt.Sprintf("%.1f%%", m.DiluentShare(r.Volume)*100),
			fmt.Sprintf("%.4f%%", m.Concentration),
			mixKind(m),
		)
	}
	b.WriteString(t.String())
	b.WriteString("\n")
	return b.String()
}

// FormatSummary lists every report of a batch run with its best score.
func FormatSummary(reports []Report, totalMs int64) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(styleCell).
		Headers("Request", "Solutions", "Best", "Time")

	for _, r := range reports {
		best := "-"
		if len(r.Solutions) > 0 {
			best = strconv.Itoa(r.Solutions[0].Score)
		}
		t.Row(r.Name, strconv.Itoa(len(r.Solutions)), best, fmt.Sprintf("%dms", r.TimeMs))
	}
	t.Row("TOTAL", "", "", fmt.Sprintf("%dms", totalMs))
	return t.String() + "\n"
}

// FormatStocks lists the standard catalogue with effective concentrations.
func FormatStocks() string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(styleCell).
		Headers("Label", "Effective")
	for _, c := range solver.StandardStocks {
		t.Row(stockLabel(c), stockLabel(solver.Stock(c).Effective()))
	}
	return t.String() + "\n"
}
