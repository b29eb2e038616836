package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/pixpal/internal/pixel"
	"github.com/san-kum/pixpal/internal/viz"
)

// Screen layout of the edit view. Mouse hit-testing depends on these, so
// the header always has exactly gridTop lines and every palette column line
// is exactly gridLeft cells wide.
const (
	gridTop   = 4
	gridLeft  = 8
	cellWidth = 2
)

func gridAt(x, y int) (int, int, bool) {
	if x < gridLeft || y < gridTop {
		return 0, 0, false
	}
	gx := (x - gridLeft) / cellWidth
	gy := y - gridTop
	if gx >= pixel.Width || gy >= pixel.Height {
		return 0, 0, false
	}
	return gx, gy, true
}

func paletteAt(x, y, slots int) (int, bool) {
	row := y - gridTop
	if x < 1 || x >= gridLeft-2 || row < 0 || row >= slots {
		return 0, false
	}
	return row, true
}

func (m model) View() string {
	if m.state == stateTemplates {
		return m.viewTemplates()
	}
	return m.viewEdit()
}

func (m model) viewEdit() string {
	var b strings.Builder
	s := m.styles

	b.WriteString(viz.GradientText("PixPal Editor", m.theme.Primary, m.theme.Accent) + "\n")

	tmpl := m.ed.Template
	if tmpl == "" {
		tmpl = "none"
	}
	name := m.ed.Name
	if name == "" {
		name = "untitled"
	}
	b.WriteString(s.Subtle.Render("template ") + s.Text.Render(tmpl) +
		s.Subtle.Render("   artwork ") + s.Text.Render(name) + "\n")

	if m.ed.Err != "" {
		b.WriteString(s.Error.Render("! "+m.ed.Err) + "\n")
	} else {
		b.WriteString("\n")
	}
	b.WriteString("\n")

	side := m.sidePanel()
	for y := 0; y < pixel.Height; y++ {
		b.WriteString(m.paletteLine(y))
		for x := 0; x < pixel.Width; x++ {
			b.WriteString(m.cell(x, y))
		}
		if y < len(side) {
			b.WriteString("   " + side[y])
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.promptLine() + "\n")
	b.WriteString(s.KeyHint.Render("←↑↓→ move  space paint  x clear  1-0 brush  tab slot  c choose  d drop") + "\n")
	b.WriteString(s.KeyHint.Render("e edit  p pick  # hex  enter done  t templates  o open  s save  r reset  q quit") + "\n")
	return b.String()
}

// paletteLine renders palette row y, padded to gridLeft cells.
func (m model) paletteLine(y int) string {
	if y >= m.ed.Palette.Len() {
		return strings.Repeat(" ", gridLeft)
	}
	color, _ := m.ed.Palette.Slot(y)

	cursor := " "
	if y == m.slot {
		cursor = m.styles.Accent.Render("▸")
	}
	key := fmt.Sprint((y + 1) % 10)

	bg := m.theme.Empty
	if hex, ok := pixel.NormalizeColor(color); ok {
		bg = lipgloss.Color(hex)
	}
	swatch := lipgloss.NewStyle().Background(bg).Render("  ")

	mark := " "
	switch {
	case m.ed.Mode.Active() && m.ed.Mode.Slot == y:
		mark = m.styles.Selected.Render("✎")
	case m.ed.Palette.Selected() == y:
		mark = m.styles.Selected.Render("●")
	}
	return cursor + m.styles.Subtle.Render(key) + " " + swatch + mark + "  "
}

func (m model) cell(x, y int) string {
	if x != m.cx || y != m.cy {
		return viz.Block(m.ed.Canvas, m.theme, x, y)
	}
	glyph := "[]"
	if m.ed.Mode.Kind == pixel.Picking {
		glyph = "<>"
	}
	bg := m.theme.Empty
	if color, ok := m.ed.Canvas.ColorAt(x, y); ok {
		if hex, ok := pixel.NormalizeColor(color); ok {
			bg = lipgloss.Color(hex)
		}
	}
	return lipgloss.NewStyle().Bold(true).Background(bg).Foreground(m.theme.Accent).Render(glyph)
}

func (m model) sidePanel() []string {
	s := m.styles
	var lines []string

	mode := "idle"
	switch m.ed.Mode.Kind {
	case pixel.Editing:
		mode = fmt.Sprintf("editing slot %d", m.ed.Mode.Slot+1)
	case pixel.Picking:
		mode = fmt.Sprintf("picking into slot %d", m.ed.Mode.Slot+1)
	}
	lines = append(lines, s.Subtle.Render("mode   ")+s.Accent.Render(mode))

	brush := m.ed.Palette.Brush()
	bg := m.theme.Empty
	if hex, ok := pixel.NormalizeColor(brush); ok {
		bg = lipgloss.Color(hex)
	}
	lines = append(lines, s.Subtle.Render("brush  ")+lipgloss.NewStyle().Background(bg).Render("  ")+" "+s.Text.Render(brush))

	lines = append(lines, s.Subtle.Render("cursor ")+s.Text.Render(pixel.Coord{X: m.cx, Y: m.cy}.String()))
	under := "empty"
	if color, ok := m.ed.Canvas.ColorAt(m.cx, m.cy); ok {
		under = color
	}
	lines = append(lines, s.Subtle.Render("under  ")+s.Text.Render(under))
	lines = append(lines, s.Subtle.Render("cells  ")+s.Text.Render(fmt.Sprintf("%d/%d", m.ed.Canvas.Len(), pixel.Width*pixel.Height)))
	lines = append(lines, "")

	usage := viz.Usage(m.ed.Canvas)
	if len(usage) > 0 {
		lines = append(lines, s.Subtle.Render("colors"))
	}
	for i, u := range usage {
		if i == 8 {
			lines = append(lines, s.Subtle.Render(fmt.Sprintf("  +%d more", len(usage)-i)))
			break
		}
		bg := m.theme.Empty
		if hex, ok := pixel.NormalizeColor(u.Color); ok {
			bg = lipgloss.Color(hex)
		}
		lines = append(lines, "  "+lipgloss.NewStyle().Background(bg).Render("  ")+" "+s.Text.Render(fmt.Sprintf("%-8s %3d", u.Color, u.Count)))
	}

	lines = append(lines, "")
	lines = append(lines, s.Subtle.Render("rows   ")+s.Selected.Render(viz.SparklineChart(viz.RowFill(m.ed.Canvas), pixel.Width)))
	return lines
}

func (m model) promptLine() string {
	s := m.styles
	switch m.state {
	case stateHex:
		return s.Accent.Render("slot color #") + s.Text.Render(m.input+"▋") + s.Subtle.Render("  enter apply  esc cancel")
	case stateImport:
		return s.Accent.Render("open file: ") + s.Text.Render(m.input+"▋") + s.Subtle.Render("  enter open  esc cancel")
	case stateSave:
		return s.Accent.Render("artwork name: ") + s.Text.Render(m.input+"▋") + s.Subtle.Render("  enter save  esc cancel")
	}
	return s.Subtle.Render(m.status)
}

func (m model) viewTemplates() string {
	var b strings.Builder
	s := m.styles

	b.WriteString("\n")
	b.WriteString("    " + s.Title.Render("Select Template") + "\n")
	b.WriteString(s.Subtle.Render("    "+strings.Repeat("─", 28)) + "\n\n")

	names := m.catalog.Names()
	if len(names) == 0 {
		b.WriteString("      " + s.Subtle.Render("no templates") + "\n")
	}
	for i, name := range names {
		t, _ := m.catalog.Find(name)
		count := s.Subtle.Render(fmt.Sprintf("%3d px", len(t.Pixels)))
		if i == m.tmplCursor {
			b.WriteString("    " + s.Accent.Render("▸ ") + s.Text.Render(fmt.Sprintf("%-18s", name)) + count + "\n")
		} else {
			b.WriteString("      " + s.Subtle.Render(fmt.Sprintf("%-18s", name)) + count + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(s.KeyHint.Render("    ↑↓ select   enter load   esc back") + "\n")
	return b.String()
}
