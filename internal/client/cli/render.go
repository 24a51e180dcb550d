package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dmitrijs2005/gophfund/internal/cards"
	"github.com/dmitrijs2005/gophfund/internal/models"
	"github.com/dmitrijs2005/gophfund/internal/progress"
	"golang.org/x/term"
)

const defaultWidth = 80

var (
	accent = lipgloss.Color("#8BC34A")
	muted  = lipgloss.Color("#9E9E9E")

	titleStyle = lipgloss.NewStyle().Bold(true)
	mutedStyle = lipgloss.NewStyle().Foreground(muted)
)

var cardStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(accent).
	Padding(0, 1)

// terminalWidth is a test seam; it falls back to defaultWidth when stdout
// is not a terminal.
var terminalWidth = func() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return defaultWidth
	}
	return w
}

// cardsPerScreen picks how many campaigns one screen shows. Narrow
// terminals get a list instead of cards.
func cardsPerScreen(width int) int {
	switch {
	case width < 80:
		return 10
	case width < 120:
		return 2
	default:
		return 3
	}
}

// renderScreen draws items as boxed cards side by side, or as list rows on
// narrow terminals.
func renderScreen(items []models.CampaignSummary, f *progress.Formatter, width int) string {
	if width < 80 {
		return renderRows(items, f, width)
	}

	per := cardsPerScreen(width)
	// border (2) and padding (2) per box
	inner := max(width/per-4, 10)

	boxes := make([]string, 0, len(items))
	for _, c := range cards.RenderAll(cards.Convert(items, toCampaign), f) {
		boxes = append(boxes, cardStyle.Width(inner+2).Render(cardBody(c, inner)))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, boxes...)
}

func toCampaign(c models.CampaignSummary) cards.Campaign { return cards.Campaign(c) }

func cardBody(c cards.Card, width int) string {
	lines := []string{titleStyle.Render(truncate(c.Emoji+" "+c.Name, width))}
	if c.Badge != "" {
		lines = append(lines, mutedStyle.Render(truncate(c.Badge, width)))
	}
	if c.ProgressPercent != nil {
		lines = append(lines, fmt.Sprintf("%s %d%%", progress.Bar(*c.ProgressPercent, max(width-7, 1)), *c.ProgressPercent))
	}
	if c.Raised != "" {
		lines = append(lines, truncate("Raised "+c.Raised, width))
	}
	lines = append(lines, mutedStyle.Render(truncate(c.Href, width)))
	return strings.Join(lines, "\n")
}

func renderRows(items []models.CampaignSummary, f *progress.Formatter, width int) string {
	titleWidth := max(width-45, 10)

	rows := make([]string, 0, len(items))
	for _, c := range items {
		p := progress.Percentage(c.AmountRaised, c.Goal)
		rows = append(rows, fmt.Sprintf("%-*s %s %3d%%  %s  %s",
			titleWidth, truncate(c.DisplayTitle(), titleWidth),
			progress.Bar(p, 10), p,
			f.FormatOrPlain(c.AmountRaised, c.Currency),
			mutedStyle.Render(c.Slug)))
	}
	return strings.Join(rows, "\n")
}

func renderDetail(d *models.CampaignDetail, f *progress.Formatter, width int) string {
	v := f.Describe(d.AmountRaised, d.Goal, d.DonorCount, d.Currency)

	lines := []string{
		titleStyle.Render(d.DisplayTitle()),
		fmt.Sprintf("%s %d%%", progress.Bar(v.Percent, 20), v.Percent),
		fmt.Sprintf("%s of %s, %d donors", v.Raised, v.Goal, v.DonorCount),
	}
	if d.Category != nil && d.Category.Title != "" {
		lines = append(lines, mutedStyle.Render(d.Category.Title))
	}
	if d.BeneficiaryName != "" {
		lines = append(lines, "For "+d.BeneficiaryName)
	}
	if d.Deadline != "" {
		lines = append(lines, "Deadline "+d.Deadline)
	}
	if d.Story != "" {
		lines = append(lines, "", d.Story)
	} else if d.ShortDescription != "" {
		lines = append(lines, "", d.ShortDescription)
	}
	for _, u := range d.Updates {
		lines = append(lines, "", titleStyle.Render(u.Title)+" "+mutedStyle.Render(u.PublishedAt))
		if u.Body != "" {
			lines = append(lines, u.Body)
		}
	}

	return cardStyle.Width(max(min(width, 100)-2, 20)).Render(strings.Join(lines, "\n"))
}

// truncate cuts s to width cells, marking the cut with an ellipsis.
func truncate(s string, width int) string {
	if lipgloss.Width(s) <= width {
		return s
	}
	r := []rune(s)
	for len(r) > 0 && lipgloss.Width(string(r))+1 > width {
		r = r[:len(r)-1]
	}
	return string(r) + "…"
}
