package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("69"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
	answerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#E0E0E0"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B")).Bold(true)
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#4CAF50")).Bold(true)
	ruleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#444444"))
)

func printError(w io.Writer, err error) {
	fmt.Fprintln(w, errorStyle.Render("error: "+err.Error()))
}

func rule() string {
	return ruleStyle.Render("────────────────────────────────────────────────────────────────────────────────")
}
