package main

import "github.com/charmbracelet/lipgloss"

const (
	rowTextFGColor         = "#c0c0c0"
	rowSelectedTextFGColor = "#e0e0e0"
	rowSelectedBGColor     = "#3a3a3a"
	searchHighlightBGColor = "#f5c542"
	searchHighlightFGColor = "#000000"
	tabActiveBGColor       = "#ff9f1c"
	tabActiveFGColor       = "#000000"
	dimFGColor             = "#8a8a8a"
)

const (
	sidebarWidth = 40
	swatchMarker = "■"
	pillMarker   = "▐"
)

var (
	appstyle = lipgloss.NewStyle().Margin(1, 2)

	tabStyle       = lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color(rowTextFGColor))
	tabActiveStyle = lipgloss.NewStyle().Padding(0, 1).Bold(true).
			Background(lipgloss.Color(tabActiveBGColor)).
			Foreground(lipgloss.Color(tabActiveFGColor))
	titleStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)

	rowStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color(rowTextFGColor))
	rowSelectedStyle = lipgloss.NewStyle().
				Background(lipgloss.Color(rowSelectedBGColor)).
				Foreground(lipgloss.Color(rowSelectedTextFGColor))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color(dimFGColor))
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(rowSelectedTextFGColor))

	cellStyle = lipgloss.NewStyle().Padding(0, 1)

	panelStyle        = lipgloss.NewStyle().BorderStyle(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("240"))
	panelFocusedStyle = panelStyle.BorderForeground(lipgloss.Color(tabActiveBGColor))

	timeWindowArea = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("245")).
			Padding(0, 0).BorderLeft(true)

	searchHighlight = lipgloss.NewStyle().
			Background(lipgloss.Color(searchHighlightBGColor)).
			Foreground(lipgloss.Color(searchHighlightFGColor))
)
