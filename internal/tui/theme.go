package tui

import "github.com/charmbracelet/lipgloss"

var (
	// Core palette
	Green       = lipgloss.Color("#00FF41")
	BrightGreen = lipgloss.Color("#39FF14")
	MedGreen    = lipgloss.Color("#00C832")
	DarkGreen   = lipgloss.Color("#008F11")
	DimGreen    = lipgloss.Color("#003B00")
	Black       = lipgloss.Color("#0D0208")

	TitleStyle = lipgloss.NewStyle().
			Background(DarkGreen).
			Foreground(Black).
			Bold(true).
			Padding(0, 1)

	// Inputs
	InputBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(DarkGreen).
				Padding(0, 1)

	InputActiveStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(Green).
				Padding(0, 1)

	SearchResultStyle = lipgloss.NewStyle().
				Foreground(BrightGreen).
				Bold(true)

	// Table
	TableHeaderStyle = lipgloss.NewStyle().
				Foreground(Green).
				Bold(true).
				BorderStyle(lipgloss.NormalBorder()).
				BorderForeground(DarkGreen).
				BorderBottom(true)

	TableCellStyle = lipgloss.NewStyle().
			Foreground(Green)

	TableSelectedStyle = lipgloss.NewStyle().
				Foreground(Black).
				Background(MedGreen)

	// Error
	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF4136")).
			Bold(true)

	// Help text
	HelpStyle = lipgloss.NewStyle().
			Foreground(DimGreen)
)
