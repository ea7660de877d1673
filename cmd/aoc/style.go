package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/aoc22/puzzle"
)

var (
	dayStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFD700")).
			Width(8)

	answerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00FF87"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#808080"))

	markerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF5F87"))
)

func formatAnswer(day int, ans puzzle.Answer) string {
	return lipgloss.JoinHorizontal(lipgloss.Top,
		dayStyle.Render(fmt.Sprintf("day %02d", day)),
		labelStyle.Render(" part 1: "), answerStyle.Render(ans.Part1),
		labelStyle.Render("  part 2: "), answerStyle.Render(ans.Part2),
	)
}
