package tui

import (
	"fmt"
	"strings"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/lipgloss"

	"github.com/stateprimer/primer/internal/paginator"
)

var barStyle = lipgloss.NewStyle().
	Foreground(ColorBlue).
	Background(ColorBlue)

// renderStatsOverlay renders per-topic visit counts as a bar chart with a
// legend mapping bar positions to topic titles.
func renderStatsOverlay(nav *Navigator, snap paginator.Snapshot, width, height int) string {
	title := titleStyle.Render("Topic Visits")

	if len(snap.Topics) == 0 {
		modal := modalStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
			title, "", helpStyle.Render("No topics to chart.")))
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, modal)
	}

	chartWidth := len(snap.Topics) * 4
	if chartWidth < 20 {
		chartWidth = 20
	}
	chartHeight := 8
	if height < 20 {
		chartHeight = 5
	}

	bc := barchart.New(chartWidth, chartHeight,
		barchart.WithBarGap(1),
		barchart.WithBarWidth(3),
	)

	var legendLines []string
	for i, tp := range snap.Topics {
		visits := nav.Visits(tp.ID)
		bc.Push(barchart.BarData{
			Label: fmt.Sprintf("%d", i+1),
			Values: []barchart.BarValue{
				{Name: tp.ID, Value: float64(visits), Style: barStyle},
			},
		})
		legendLines = append(legendLines,
			fmt.Sprintf("%d. %-28s %d", i+1, tp.Title, visits))
	}

	bc.Draw()

	legend := helpStyle.Render(strings.Join(legendLines, "\n"))
	footer := helpStyle.Render("s/esc close")

	modal := modalStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		title, "", bc.View(), "", legend, "", footer))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, modal)
}
