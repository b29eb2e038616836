package tui

import (
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/pixpal/internal/artwork"
	"github.com/san-kum/pixpal/internal/pixel"
	"github.com/san-kum/pixpal/internal/storage"
)

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "space":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(m model, keys ...string) model {
	for _, k := range keys {
		next, _ := m.Update(key(k))
		m = next.(model)
	}
	return m
}

func typeText(m model, text string) model {
	for _, r := range text {
		if r == ' ' {
			m = press(m, "space")
			continue
		}
		m = press(m, string(r))
	}
	return m
}

// run feeds msg to the model and then resolves any returned command once,
// the way the bubbletea runtime would.
func run(m model, msg tea.Msg) model {
	next, cmd := m.Update(msg)
	m = next.(model)
	if cmd != nil {
		if out := cmd(); out != nil {
			next, _ = m.Update(out)
			m = next.(model)
		}
	}
	return m
}

func mouse(x, y int, button tea.MouseButton, action tea.MouseAction) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Button: button, Action: action}
}

func screen(gx, gy int) (int, int) {
	return gridLeft + gx*cellWidth, gridTop + gy
}

func colorAt(m model, x, y int) string {
	c, ok := m.ed.Canvas.ColorAt(x, y)
	if !ok {
		return ""
	}
	return c
}

var _ = Describe("interactive editor", func() {
	var m model

	BeforeEach(func() {
		m = newModel(Options{})
	})

	Describe("painting", func() {
		It("paints the cursor cell with the brush", func() {
			m = press(m, "2", "right", "down", "space")
			Expect(colorAt(m, 1, 1)).To(Equal("#ff0000"))
		})

		It("keeps the cursor inside the grid", func() {
			m = press(m, "left", "up")
			Expect(m.cx).To(Equal(0))
			Expect(m.cy).To(Equal(0))
			for i := 0; i < 40; i++ {
				m = press(m, "down", "right")
			}
			Expect(m.cx).To(Equal(pixel.Width - 1))
			Expect(m.cy).To(Equal(pixel.Height - 1))
		})

		It("repaints in place and clears", func() {
			m = press(m, "2", "space", "3", "space")
			Expect(m.ed.Canvas.Len()).To(Equal(1))
			Expect(colorAt(m, 0, 0)).To(Equal("#00ff00"))

			m = press(m, "x")
			Expect(m.ed.Canvas.Len()).To(Equal(0))
		})

		It("drops the palette cursor color without changing the brush", func() {
			m = press(m, "tab", "tab", "tab", "d")
			Expect(colorAt(m, 0, 0)).To(Equal("#0000ff"))
			Expect(m.ed.Palette.Brush()).To(Equal("#ffffff"))
		})

		It("resets the canvas", func() {
			m = press(m, "space", "right", "space", "r")
			Expect(m.ed.Canvas.Len()).To(BeZero())
		})
	})

	Describe("editing and picking", func() {
		It("edits the selected slot with a hex value", func() {
			m = press(m, "3", "e", "#")
			Expect(m.state).To(Equal(stateHex))
			m = typeText(m, "12zz3456")
			Expect(m.input).To(Equal("123456"))
			m = press(m, "enter")

			Expect(m.state).To(Equal(stateEdit))
			slot, _ := m.ed.Palette.Slot(2)
			Expect(slot).To(Equal("#123456"))
			Expect(m.ed.Palette.Brush()).To(Equal("#123456"))
			Expect(m.ed.Mode).To(Equal(pixel.EditingMode(2)))
		})

		It("refuses to pick without an edited slot", func() {
			m = press(m, "p")
			Expect(m.ed.Mode).To(Equal(pixel.IdleMode()))
			Expect(m.status).NotTo(BeEmpty())
		})

		It("samples a painted cell into the edited slot", func() {
			var err error
			m.ed, err = m.ed.Drop(4, 4, "#abcdef")
			Expect(err).NotTo(HaveOccurred())

			m = press(m, "3", "e", "p")
			Expect(m.ed.Mode).To(Equal(pixel.PickingMode(2)))

			// empty cell: nothing happens, still picking
			m = press(m, "space")
			Expect(m.ed.Mode).To(Equal(pixel.PickingMode(2)))
			Expect(m.ed.Canvas.Len()).To(Equal(1))

			// clear is suppressed while picking
			for i := 0; i < 4; i++ {
				m = press(m, "right", "down")
			}
			m = press(m, "x")
			Expect(colorAt(m, 4, 4)).To(Equal("#abcdef"))

			m = press(m, "space")
			Expect(m.ed.Mode).To(Equal(pixel.EditingMode(2)))
			slot, _ := m.ed.Palette.Slot(2)
			Expect(slot).To(Equal("#abcdef"))
			Expect(m.ed.Palette.Brush()).To(Equal("#abcdef"))

			m = press(m, "enter")
			Expect(m.ed.Mode).To(Equal(pixel.IdleMode()))
		})
	})

	Describe("templates", func() {
		It("loads the highlighted template", func() {
			m = press(m, "t")
			Expect(m.state).To(Equal(stateTemplates))
			names := m.catalog.Names()
			m = press(m, "down", "enter")

			want, _ := m.catalog.Find(names[1])
			Expect(m.state).To(Equal(stateEdit))
			Expect(m.ed.Template).To(Equal(names[1]))
			Expect(m.ed.Canvas.Cells()).To(ConsistOf(want.Pixels))
		})

		It("returns without loading on esc", func() {
			m = press(m, "space", "t", "esc")
			Expect(m.state).To(Equal(stateEdit))
			Expect(m.ed.Canvas.Len()).To(Equal(1))
		})
	})

	Describe("import", func() {
		var dir string

		BeforeEach(func() {
			dir = GinkgoT().TempDir()
		})

		open := func(m model, path string) model {
			m = press(m, "o")
			Expect(m.state).To(Equal(stateImport))
			m = typeText(m, path)
			return run(m, key("enter"))
		}

		It("replaces the canvas with a valid file", func() {
			path := filepath.Join(dir, "in.json")
			Expect(os.WriteFile(path, []byte(`{"name":"cat","pixels":[{"x":2,"y":3,"color":"#010101"}]}`), 0644)).To(Succeed())

			m = press(m, "space")
			m = open(m, path)
			Expect(m.ed.Err).To(BeEmpty())
			Expect(m.ed.Name).To(Equal("cat"))
			Expect(m.ed.Canvas.Cells()).To(Equal([]pixel.Cell{{X: 2, Y: 3, Color: "#010101"}}))
		})

		It("keeps the canvas and reports invalid content", func() {
			path := filepath.Join(dir, "bad.json")
			Expect(os.WriteFile(path, []byte(`{"pixels":[{"x":10,"y":0,"color":"#fff"}]}`), 0644)).To(Succeed())

			m = press(m, "space")
			m = open(m, path)
			Expect(m.ed.Err).To(Equal("Invalid JSON format"))
			Expect(colorAt(m, 0, 0)).To(Equal("#ffffff"))
		})

		It("reports unreadable files", func() {
			m = open(m, filepath.Join(dir, "missing.json"))
			Expect(m.ed.Err).To(ContainSubstring("cannot read"))
		})

		It("clears a previous error when a new import starts", func() {
			m.ed.Err = "Invalid JSON format"
			m = press(m, "o")
			m = typeText(m, "x")
			next, cmd := m.Update(key("enter"))
			Expect(cmd).NotTo(BeNil())
			Expect(next.(model).ed.Err).To(BeEmpty())
		})
	})

	Describe("save", func() {
		It("writes the document and stores a library copy", func() {
			out := GinkgoT().TempDir()
			lib := storage.New(GinkgoT().TempDir())
			m = newModel(Options{OutputDir: out, Store: lib})

			m = press(m, "2", "space", "s")
			Expect(m.state).To(Equal(stateSave))
			m = typeText(m, "red dot")
			m = run(m, key("enter"))

			doc, err := artwork.ReadFile(filepath.Join(out, "red dot.json"))
			Expect(err).NotTo(HaveOccurred())
			Expect(doc.Name).To(Equal("red dot"))
			Expect(doc.Pixels).To(Equal([]pixel.Cell{{X: 0, Y: 0, Color: "#ff0000"}}))
			Expect(m.status).To(ContainSubstring("saved"))

			items, err := lib.List()
			Expect(err).NotTo(HaveOccurred())
			Expect(items).To(HaveLen(1))
		})

		It("falls back to the default name", func() {
			out := GinkgoT().TempDir()
			m = newModel(Options{OutputDir: out})
			m = press(m, "s")
			m = run(m, key("enter"))
			Expect(filepath.Join(out, "pixel-art.json")).To(BeAnExistingFile())
		})

		It("cancels with esc", func() {
			m = press(m, "s", "a", "esc")
			Expect(m.state).To(Equal(stateEdit))
			Expect(m.input).To(BeEmpty())
		})
	})

	Describe("mouse", func() {
		It("paints on left click and clears on right click", func() {
			x, y := screen(3, 5)
			m = run(m, mouse(x, y, tea.MouseButtonLeft, tea.MouseActionPress))
			Expect(colorAt(m, 3, 5)).To(Equal("#ffffff"))
			Expect(m.cx).To(Equal(3))

			m = run(m, mouse(x+1, y, tea.MouseButtonRight, tea.MouseActionPress))
			Expect(m.ed.Canvas.Len()).To(BeZero())
		})

		It("selects a slot on palette click", func() {
			m = run(m, mouse(3, gridTop+4, tea.MouseButtonLeft, tea.MouseActionPress))
			m = run(m, mouse(3, gridTop+4, tea.MouseButtonLeft, tea.MouseActionRelease))
			Expect(m.ed.Palette.Brush()).To(Equal("#ffff00"))
			Expect(m.slot).To(Equal(4))
		})

		It("drops a dragged palette color on the grid", func() {
			m = run(m, mouse(3, gridTop+1, tea.MouseButtonLeft, tea.MouseActionPress))
			x, y := screen(9, 29)
			m = run(m, mouse(x, y, tea.MouseButtonNone, tea.MouseActionRelease))
			Expect(colorAt(m, 9, 29)).To(Equal("#ff0000"))
			Expect(m.ed.Palette.Brush()).To(Equal("#ffffff"))
			Expect(m.dragSlot).To(Equal(-1))
		})

		It("opens the slot editor on palette right click", func() {
			m = run(m, mouse(3, gridTop+6, tea.MouseButtonRight, tea.MouseActionPress))
			Expect(m.ed.Mode).To(Equal(pixel.EditingMode(6)))
		})

		It("ignores clicks outside the grid", func() {
			m = run(m, mouse(gridLeft+pixel.Width*cellWidth, gridTop, tea.MouseButtonLeft, tea.MouseActionPress))
			m = run(m, mouse(gridLeft, gridTop+pixel.Height, tea.MouseButtonLeft, tea.MouseActionPress))
			Expect(m.ed.Canvas.Len()).To(BeZero())
		})
	})

	Describe("view", func() {
		It("shows the import error", func() {
			m = run(m, importedMsg{path: "x", data: []byte("not json")})
			Expect(m.View()).To(ContainSubstring("Invalid JSON format"))
		})

		It("lists templates", func() {
			m = press(m, "t")
			Expect(m.View()).To(ContainSubstring("Heart"))
		})
	})
})
