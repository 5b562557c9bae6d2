package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type homeSection struct {
	title string
	body  []string
}

var homeSections = []homeSection{
	{
		title: "Welcome to the Backyard",
		body: []string{
			"A small patch of native plants, two feeders and a birdbath have turned this yard into a daily stop for dozens of species.",
			"This page collects what we see, what the neighborhood reports, and what rare visitors are turning up around the country.",
		},
	},
	{
		title: "Regular Visitors",
		body: []string{
			"Anna's Hummingbird · Lesser Goldfinch · House Finch",
			"California Towhee · Black Phoebe · Mourning Dove",
			"Bushtit flocks in the mornings, and an Allen's Hummingbird every spring.",
		},
	},
	{
		title: "Feeder Notes",
		body: []string{
			"Nectar is four parts water to one part sugar, no dye, changed every three days in summer.",
			"Nyjer seed keeps the goldfinches happy; the squirrels have not figured out the baffle yet.",
		},
	},
	{
		title: "Explore",
		body: []string{
			"2  Recent sightings reported near the yard",
			"3  Notable and rare birds by state",
			"4  Send us a note about your own visitors",
		},
	},
}

// renderHome draws the static landing page.
func renderHome(th Theme, width int) string {
	styles := th.Styles()
	textWidth := clamp(width-2, 20, 96)
	body := lipgloss.NewStyle().Width(textWidth)

	var b strings.Builder
	b.WriteString(styles.Logo.Render("🐦 Backyard Birds"))
	b.WriteString("\n\n")
	for i, section := range homeSections {
		b.WriteString(styles.Heading.Render(section.title))
		b.WriteString("\n")
		for _, para := range section.body {
			b.WriteString(body.Inherit(styles.Text).Render(para))
			b.WriteString("\n")
		}
		if i < len(homeSections)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
