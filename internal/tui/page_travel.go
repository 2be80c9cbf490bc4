package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// place is one static travel recommendation card.
type place struct {
	Name    string
	Country string
	Blurb   string
	Tags    []string
}

// travelPlaces is fixed demo content; the page holds no state beyond scroll.
var travelPlaces = []place{
	{
		Name:    "Kyoto",
		Country: "Japan",
		Blurb:   "Temples, gardens, and quiet alleys. Best in late autumn when the maples turn.",
		Tags:    []string{"culture", "food", "walking"},
	},
	{
		Name:    "Lofoten",
		Country: "Norway",
		Blurb:   "Sharp peaks straight out of the sea. Midnight sun in summer, aurora in winter.",
		Tags:    []string{"hiking", "photography"},
	},
	{
		Name:    "Oaxaca",
		Country: "Mexico",
		Blurb:   "Mole, mezcal, and markets. Day trips to Hierve el Agua and Monte Albán.",
		Tags:    []string{"food", "history"},
	},
	{
		Name:    "Ljubljana",
		Country: "Slovenia",
		Blurb:   "A riverside capital small enough to walk, with Lake Bled an hour away.",
		Tags:    []string{"city", "day-trips"},
	},
	{
		Name:    "Hoi An",
		Country: "Vietnam",
		Blurb:   "Lantern-lit old town, tailor shops, and beaches a short bicycle ride out.",
		Tags:    []string{"food", "beach", "cycling"},
	},
}

// TravelPage renders the static travel-recommendations demo layout.
type TravelPage struct {
	keys   KeyMap
	offset int
}

// NewTravelPage creates the travel demo page.
func NewTravelPage() *TravelPage {
	return &TravelPage{keys: DefaultKeyMap()}
}

func (p *TravelPage) ID() string { return "travel" }

func (p *TravelPage) Init() tea.Cmd { return nil }

func (p *TravelPage) Update(msg tea.Msg) (tea.Cmd, *PageNav) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil, nil
	}

	k := p.keys
	switch {
	case key.Matches(keyMsg, k.Quit):
		return tea.Quit, nil

	case key.Matches(keyMsg, k.Back):
		return nil, &PageNav{PageID: "topics"}

	case key.Matches(keyMsg, k.Up):
		if p.offset > 0 {
			p.offset--
		}

	case key.Matches(keyMsg, k.Down):
		if p.offset < len(travelPlaces)-1 {
			p.offset++
		}
	}
	return nil, nil
}

func (p *TravelPage) View(width, height int) string {
	if width <= 0 || height <= 0 {
		return "Initializing..."
	}

	cardWidth := width - 6
	if cardWidth > 68 {
		cardWidth = 68
	}
	if cardWidth < 24 {
		cardWidth = 24
	}

	title := titleStyle.Render("Where to Next?")
	subtitle := summaryStyle.Render("Static layout demo: fixed content, no state holder behind it.")

	var cards []string
	for _, pl := range travelPlaces[p.offset:] {
		cards = append(cards, renderPlaceCard(pl, cardWidth))
	}

	body := lipgloss.JoinVertical(lipgloss.Left, cards...)
	status := statusStyle.Width(width).Render(" ↑/↓ scroll • esc back to topics • q quit")

	content := lipgloss.JoinVertical(lipgloss.Left, title, subtitle, "", body)
	lines := strings.Split(content, "\n")
	if len(lines) > height-1 {
		lines = lines[:height-1]
		content = strings.Join(lines, "\n")
	}

	gap := height - lipgloss.Height(content) - 1
	if gap > 0 {
		content += strings.Repeat("\n", gap)
	}
	return lipgloss.JoinVertical(lipgloss.Left, content, status)
}

func renderPlaceCard(pl place, width int) string {
	header := titleStyle.Render(pl.Name) + summaryStyle.Render("  —  "+pl.Country)
	blurb := itemStyle.Width(width - 4).Render(pl.Blurb)

	tags := make([]string, len(pl.Tags))
	for i, tag := range pl.Tags {
		tags[i] = highlightStyle.Render("#" + tag)
	}

	return cardStyle.Width(width).Render(
		lipgloss.JoinVertical(lipgloss.Left, header, blurb, strings.Join(tags, " ")),
	)
}
