package cli

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jhoicas/mebel-store/internal/application/syncstore"
)

var (
	remoteStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#2ECC71")).Bold(true)
	localStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F1C40F"))
	kindStyle   = lipgloss.NewStyle().Width(18)
)

// renderMode sin TTY lipgloss no emite secuencias de color.
func renderMode(m syncstore.Mode) string {
	if m == syncstore.Remote {
		return remoteStyle.Render(m.String())
	}
	return localStyle.Render(m.String())
}

func renderKind(kind string) string {
	return kindStyle.Render(kind)
}
