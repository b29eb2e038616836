package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/pixpal/internal/artwork"
	"github.com/san-kum/pixpal/internal/editor"
	"github.com/san-kum/pixpal/internal/pixel"
	"github.com/san-kum/pixpal/internal/storage"
	"github.com/san-kum/pixpal/internal/templates"
	"github.com/san-kum/pixpal/internal/viz"
	"github.com/sirupsen/logrus"
)

type state int

const (
	stateEdit state = iota
	stateTemplates
	stateHex
	stateImport
	stateSave
)

// Options configures an interactive session.
type Options struct {
	Editor      editor.Editor
	Catalog     *templates.Catalog
	Store       *storage.Store
	OutputDir   string
	DefaultName string
	Theme       viz.Theme
}

type model struct {
	state state
	ed    editor.Editor

	catalog     *templates.Catalog
	store       *storage.Store
	outDir      string
	defaultName string
	theme       viz.Theme
	styles      viz.Styles

	cx, cy     int
	slot       int
	tmplCursor int
	input      string
	status     string

	// dragSlot is the palette slot a mouse drag started on, or -1.
	dragSlot int

	width  int
	height int
}

func newModel(opts Options) model {
	catalog := opts.Catalog
	if catalog == nil {
		catalog = templates.Builtin()
	}
	ed := opts.Editor
	if ed.Palette.Len() == 0 {
		ed = editor.New(pixel.DefaultPalette())
	}
	theme := opts.Theme
	if theme.Name == "" {
		theme = viz.ThemeZinc
	}
	outDir := opts.OutputDir
	if outDir == "" {
		outDir = "."
	}
	return model{
		state:       stateEdit,
		ed:          ed,
		catalog:     catalog,
		store:       opts.Store,
		outDir:      outDir,
		defaultName: opts.DefaultName,
		theme:       theme,
		styles:      viz.NewStyles(theme),
		dragSlot:    -1,
		width:       80,
		height:      40,
	}
}

func (m model) Init() tea.Cmd { return nil }

// importedMsg carries the content of a file the user asked to open. It is
// applied to the editor in one step when it arrives.
type importedMsg struct {
	path string
	data []byte
	err  error
}

type savedMsg struct {
	path string
	id   string
	err  error
}

func readFile(path string) tea.Cmd {
	return func() tea.Msg {
		data, err := artwork.ReadRaw(path)
		return importedMsg{path: path, data: data, err: err}
	}
}

func (m model) save(doc artwork.Document) tea.Cmd {
	outDir, store := m.outDir, m.store
	return func() tea.Msg {
		path := filepath.Join(outDir, artwork.FileName(doc.Name))
		if err := artwork.WriteFile(path, doc); err != nil {
			return savedMsg{path: path, err: err}
		}
		msg := savedMsg{path: path}
		if store != nil {
			msg.id, msg.err = store.Save(doc)
		}
		return msg
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg), nil
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case importedMsg:
		return m.applyImport(msg), nil
	case savedMsg:
		if msg.err != nil {
			logrus.WithError(msg.err).WithField("path", msg.path).Error("save failed")
			m.status = fmt.Sprintf("save failed: %v", msg.err)
			return m, nil
		}
		m.status = "saved " + msg.path
		if msg.id != "" {
			m.status += " (library: " + msg.id + ")"
		}
		return m, nil
	}
	return m, nil
}

func (m model) applyImport(msg importedMsg) model {
	if msg.err != nil {
		logrus.WithError(msg.err).WithField("path", msg.path).Warn("import read failed")
		m.ed = m.ed.Fail(fmt.Errorf("cannot read %s", msg.path))
		return m
	}
	ed, err := m.ed.Import(msg.data)
	m.ed = ed
	if err != nil {
		m.status = ""
		return m
	}
	m.status = "opened " + msg.path
	return m
}

func (m model) handleKey(msg tea.KeyMsg) (model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	switch m.state {
	case stateEdit:
		return m.editKey(msg)
	case stateTemplates:
		return m.templateKey(msg), nil
	case stateHex, stateImport, stateSave:
		return m.promptKey(msg)
	}
	return m, nil
}

func (m model) editKey(msg tea.KeyMsg) (model, tea.Cmd) {
	var err error
	m.status = ""

	switch key := msg.String(); key {
	case "q":
		return m, tea.Quit
	case "up", "k":
		if m.cy > 0 {
			m.cy--
		}
	case "down", "j":
		if m.cy < pixel.Height-1 {
			m.cy++
		}
	case "left", "h":
		if m.cx > 0 {
			m.cx--
		}
	case "right", "l":
		if m.cx < pixel.Width-1 {
			m.cx++
		}
	case " ":
		m.ed, err = m.ed.Click(m.cx, m.cy)
	case "x", "backspace", "delete":
		m.ed = m.ed.ClearCell(m.cx, m.cy)
	case "1", "2", "3", "4", "5", "6", "7", "8", "9", "0":
		i := int(key[0]-'0') - 1
		if key == "0" {
			i = 9
		}
		if i < m.ed.Palette.Len() {
			m.slot = i
			m.ed, err = m.ed.SelectSlot(i)
		}
	case "tab":
		m.slot = (m.slot + 1) % m.ed.Palette.Len()
	case "shift+tab":
		m.slot = (m.slot + m.ed.Palette.Len() - 1) % m.ed.Palette.Len()
	case "c":
		m.ed, err = m.ed.SelectSlot(m.slot)
	case "d":
		var color string
		if color, err = m.ed.Palette.Slot(m.slot); err == nil {
			m.ed, err = m.ed.Drop(m.cx, m.cy, color)
		}
	case "e":
		m.ed, err = m.ed.BeginEdit(m.slot)
	case "p":
		if !m.ed.Mode.Active() {
			m.status = "press e to edit a slot first"
			break
		}
		m.ed = m.ed.TogglePick()
	case "#":
		if !m.ed.Mode.Active() {
			m.status = "press e to edit a slot first"
			break
		}
		m.state = stateHex
		m.input = ""
	case "enter", "esc":
		m.ed = m.ed.Done()
	case "t":
		m.state = stateTemplates
		m.tmplCursor = 0
		for i, name := range m.catalog.Names() {
			if name == m.ed.Template {
				m.tmplCursor = i
			}
		}
	case "r":
		m.ed = m.ed.Reset()
		m.status = "canvas cleared"
	case "o":
		m.state = stateImport
		m.input = ""
	case "s":
		m.state = stateSave
		m.input = m.ed.Name
		if m.input == "" {
			m.input = m.defaultName
		}
	}

	if err != nil {
		m.status = err.Error()
	}
	return m, nil
}

func (m model) templateKey(msg tea.KeyMsg) model {
	names := m.catalog.Names()
	switch msg.String() {
	case "q", "esc":
		m.state = stateEdit
	case "up", "k":
		if m.tmplCursor > 0 {
			m.tmplCursor--
		}
	case "down", "j":
		if m.tmplCursor < len(names)-1 {
			m.tmplCursor++
		}
	case "enter", " ":
		if len(names) == 0 {
			m.state = stateEdit
			break
		}
		if t, ok := m.catalog.Find(names[m.tmplCursor]); ok {
			m.ed = m.ed.LoadTemplate(t)
			m.status = "loaded template " + t.Name
		}
		m.state = stateEdit
	}
	return m
}

func (m model) promptKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.state = stateEdit
		m.input = ""
		return m, nil
	case tea.KeyEnter:
		return m.submit()
	case tea.KeyBackspace:
		if r := []rune(m.input); len(r) > 0 {
			m.input = string(r[:len(r)-1])
		}
		return m, nil
	case tea.KeySpace:
		if m.state != stateHex {
			m.input += " "
		}
		return m, nil
	case tea.KeyRunes:
		if m.state == stateHex {
			for _, r := range msg.Runes {
				if isHexDigit(r) && len(m.input) < 6 {
					m.input += string(r)
				}
			}
			return m, nil
		}
		m.input += string(msg.Runes)
	}
	return m, nil
}

func isHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

func (m model) submit() (model, tea.Cmd) {
	input := m.input
	prev := m.state
	m.state = stateEdit
	m.input = ""

	switch prev {
	case stateHex:
		ed, err := m.ed.SetEditingColor("#" + input)
		if err != nil {
			m.status = err.Error()
			return m, nil
		}
		m.ed = ed
	case stateImport:
		path := strings.TrimSpace(input)
		if path == "" {
			return m, nil
		}
		m.ed.Err = ""
		m.status = "opening " + path
		return m, readFile(path)
	case stateSave:
		doc := m.ed.Export(input)
		m.status = "saving " + doc.Name
		return m, m.save(doc)
	}
	return m, nil
}

func (m model) handleMouse(msg tea.MouseMsg) model {
	gx, gy, onGrid := gridAt(msg.X, msg.Y)
	slot, onPalette := paletteAt(msg.X, msg.Y, m.ed.Palette.Len())

	switch msg.Action {
	case tea.MouseActionPress:
		if m.state != stateEdit {
			return m
		}
		m.status = ""
		var err error
		switch {
		case onGrid && msg.Button == tea.MouseButtonLeft:
			m.cx, m.cy = gx, gy
			m.ed, err = m.ed.Click(gx, gy)
		case onGrid && msg.Button == tea.MouseButtonRight:
			m.cx, m.cy = gx, gy
			m.ed = m.ed.ClearCell(gx, gy)
		case onPalette && msg.Button == tea.MouseButtonLeft:
			m.dragSlot = slot
		case onPalette && msg.Button == tea.MouseButtonRight:
			m.slot = slot
			m.ed, err = m.ed.BeginEdit(slot)
		}
		if err != nil {
			m.status = err.Error()
		}
	case tea.MouseActionRelease:
		from := m.dragSlot
		m.dragSlot = -1
		if from < 0 || m.state != stateEdit {
			return m
		}
		var err error
		switch {
		case onPalette && slot == from:
			m.slot = slot
			m.ed, err = m.ed.SelectSlot(slot)
		case onGrid:
			var color string
			if color, err = m.ed.Palette.Slot(from); err == nil {
				m.cx, m.cy = gx, gy
				m.ed, err = m.ed.Drop(gx, gy, color)
			}
		}
		if err != nil {
			m.status = err.Error()
		}
	}
	return m
}

// Run starts the editor on the alternate screen with mouse support.
func Run(opts Options) error {
	p := tea.NewProgram(newModel(opts), tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}
