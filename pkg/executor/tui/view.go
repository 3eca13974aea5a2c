package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/entrhq/fpview/pkg/panel"
	"github.com/entrhq/fpview/pkg/presenter"
	"github.com/entrhq/fpview/pkg/ui"
)

// View renders the entire TUI interface.
func (m *model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	snap := m.panel.Snapshot()
	return lipgloss.JoinVertical(lipgloss.Left,
		m.buildChrome(snap),
		m.viewport.View(),
		m.buildBottomBar(),
	)
}

// buildChrome renders everything above the result body.
func (m *model) buildChrome(snap panel.Snapshot) string {
	parts := []string{m.buildHeader(), m.buildControls(snap)}
	if line := m.buildLoadingIndicator(snap); line != "" {
		parts = append(parts, line)
	}
	if snap.ErrorVisible {
		parts = append(parts, errorPanelStyle.Width(max(m.width-4, 20)).Render(snap.ErrorMessage))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// bannerMinHeight is the terminal height from which the block-letter banner fits.
const bannerMinHeight = 40

func (m *model) buildHeader() string {
	if m.height >= bannerMinHeight {
		return lipgloss.JoinVertical(lipgloss.Left,
			headerStyle.Render(ui.GenerateASCIIArt("fpview")),
			tipsStyle.Render("  browser fingerprint viewer"),
		)
	}
	return lipgloss.JoinHorizontal(lipgloss.Bottom,
		headerStyle.Render("◆ fpview"),
		tipsStyle.Render("  browser fingerprint viewer"),
	)
}

func (m *model) buildControls(snap panel.Snapshot) string {
	scan := buttonStyle
	if !snap.TriggerEnabled {
		scan = disabledButtonStyle
	}

	copyStyle := disabledButtonStyle
	switch {
	case snap.Copy.Label != panel.CopyLabel:
		copyStyle = confirmedButtonStyle
	case snap.Rendered:
		copyStyle = buttonStyle
	}

	toggle := disabledButtonStyle
	if snap.Rendered {
		toggle = buttonStyle
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		scan.Render(snap.TriggerLabel),
		" ",
		copyStyle.Render(snap.Copy.Label),
		" ",
		toggle.Render(snap.ToggleLabel),
	)
}

func (m *model) buildLoadingIndicator(snap panel.Snapshot) string {
	switch {
	case m.initializing:
		return loadingStyle.Render(m.spinner.View() + " Starting collector...")
	case snap.Loading:
		return loadingStyle.Render(m.spinner.View() + " Collecting fingerprint...")
	default:
		return ""
	}
}

func (m *model) buildBottomBar() string {
	if m.status != "" {
		return statusBarStyle.Foreground(salmonPink).Render(m.status)
	}
	return statusBarStyle.Render(m.help.View(m.keys))
}

// buildBody renders the result panel: hash, grouped rows, plugins and the
// optional raw JSON view.
func (m *model) buildBody(snap panel.Snapshot) string {
	if !snap.ResultsVisible || !snap.Rendered {
		if m.initializing || snap.Loading || snap.ErrorVisible {
			return ""
		}
		return tipsStyle.Render("  Press s to scan this browser's fingerprint.")
	}

	f := snap.Fields
	var b strings.Builder

	b.WriteString(sectionTitleStyle.Render("Identity"))
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("Fingerprint Hash"))
	b.WriteString(hashStyle.Render(plain(f.Hash)))
	b.WriteString("\n")

	for _, section := range presenter.Sections(f) {
		b.WriteString("\n")
		b.WriteString(sectionTitleStyle.Render(section.Title))
		b.WriteString("\n")
		for _, row := range section.Rows {
			b.WriteString(labelStyle.Render(row.Label))
			b.WriteString(renderValue(row.Value))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(sectionTitleStyle.Render("Plugins"))
	b.WriteString("\n")
	for _, plugin := range f.Plugins {
		b.WriteString(valueStyle.Render("  • " + plain(plugin)))
		b.WriteString("\n")
	}

	if snap.RawVisible {
		b.WriteString("\n")
		b.WriteString(sectionTitleStyle.Render("Raw JSON"))
		b.WriteString("\n")
		b.WriteString(highlightJSON(f.RawJSON, m.highlightStyle))
		b.WriteString("\n")
	}

	return b.String()
}
