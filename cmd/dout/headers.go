package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var sectionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))

// section prints a styled demo section header.
func section(title string) {
	fmt.Println(sectionStyle.Render("== " + title + " =="))
}
