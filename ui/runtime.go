package ui

import (
	"imgconv/config"
	tea "github.com/charmbracelet/bubbletea"
)

func Start(cfg config.Config) {
	fileSelector := CreateFileSelector(cfg)
	if err := tea.NewProgram(fileSelector).Start(); err != nil {
		panic(err)
	}
}
