// Package editor combines canvas, palette and interaction mode into the single
// state value behind the UI. Each method handles one user event and returns
// the next state.
package editor

import (
	"errors"
	"fmt"

	"github.com/san-kum/pixpal/internal/artwork"
	"github.com/san-kum/pixpal/internal/pixel"
	"github.com/san-kum/pixpal/internal/templates"
	"github.com/sirupsen/logrus"
)

var ErrNotEditing = errors.New("editor: no palette slot is being edited")

type Editor struct {
	Canvas  pixel.Canvas
	Palette pixel.Palette
	Mode    pixel.Mode

	// Name is the artwork name adopted from the last import.
	Name string
	// Template is the name of the last loaded template.
	Template string
	// Err is the user-facing message of the last failed import.
	Err string
}

func New(p pixel.Palette) Editor {
	return Editor{Palette: p, Mode: pixel.IdleMode()}
}

// Click handles a primary click on a grid cell. While picking, the click
// samples the cell into the edited slot instead of painting.
func (e Editor) Click(x, y int) (Editor, error) {
	if e.Mode.Kind == pixel.Picking {
		p, ok, err := e.Palette.PickFromCell(e.Canvas, x, y, e.Mode.Slot)
		if err != nil || !ok {
			return e, err
		}
		e.Palette = p
		e.Mode = pixel.EditingMode(e.Mode.Slot)
		return e, nil
	}

	c, err := e.Canvas.Put(x, y, e.Palette.Brush())
	if err != nil {
		return e, err
	}
	e.Canvas = c
	return e, nil
}

// ClearCell handles a secondary click. It is ignored while picking.
func (e Editor) ClearCell(x, y int) Editor {
	if e.Mode.Kind == pixel.Picking {
		return e
	}
	e.Canvas = e.Canvas.Clear(x, y)
	return e
}

// Drop paints a color dragged from the palette. The brush is left alone.
// Palette colors are painted as held, even one picked from an imported cell
// that does not parse.
func (e Editor) Drop(x, y int, color string) (Editor, error) {
	c, err := e.Canvas.Put(x, y, color)
	if err != nil {
		return e, err
	}
	e.Canvas = c
	return e, nil
}

func (e Editor) SelectSlot(i int) (Editor, error) {
	p, err := e.Palette.Select(i)
	if err != nil {
		return e, err
	}
	e.Palette = p
	return e, nil
}

// BeginEdit opens slot i for editing. Switching slots keeps the eyedropper
// armed if it was.
func (e Editor) BeginEdit(i int) (Editor, error) {
	if _, err := e.Palette.Slot(i); err != nil {
		return e, err
	}
	if e.Mode.Kind == pixel.Picking {
		e.Mode = pixel.PickingMode(i)
	} else {
		e.Mode = pixel.EditingMode(i)
	}
	return e, nil
}

// TogglePick arms or disarms the eyedropper. It does nothing when idle.
func (e Editor) TogglePick() Editor {
	switch e.Mode.Kind {
	case pixel.Editing:
		e.Mode = pixel.PickingMode(e.Mode.Slot)
	case pixel.Picking:
		e.Mode = pixel.EditingMode(e.Mode.Slot)
	}
	return e
}

// Done closes the slot editor.
func (e Editor) Done() Editor {
	e.Mode = pixel.IdleMode()
	return e
}

// SetEditingColor sets the edited slot to color and makes it the brush, the
// way dragging the color wheel updates the brush live.
func (e Editor) SetEditingColor(color string) (Editor, error) {
	if !e.Mode.Active() {
		return e, ErrNotEditing
	}
	p, err := e.Palette.EditSlot(e.Mode.Slot, color)
	if err != nil {
		return e, err
	}
	p, err = p.SetBrush(color)
	if err != nil {
		return e, err
	}
	e.Palette = p
	return e, nil
}

// Reset clears every cell.
func (e Editor) Reset() Editor {
	e.Canvas = e.Canvas.ClearAll()
	return e
}

// LoadTemplate replaces the canvas with the template's pixels verbatim.
func (e Editor) LoadTemplate(t templates.Template) Editor {
	e.Canvas = pixel.FromCells(t.Pixels)
	e.Template = t.Name
	return e
}

// Import applies a raw artwork document. On failure the canvas is kept, Err
// holds the user-facing message and the *artwork.ImportError is returned.
func (e Editor) Import(raw []byte) (Editor, error) {
	e.Err = ""
	doc, err := artwork.Decode(raw)
	if err != nil {
		e.Err = err.Error()
		var ie *artwork.ImportError
		if errors.As(err, &ie) {
			logrus.WithField("detail", ie.Detail).Debug("import rejected")
		}
		return e, err
	}
	e.Canvas = pixel.FromCells(doc.Pixels)
	if doc.Name != "" {
		e.Name = doc.Name
	}
	logrus.WithFields(logrus.Fields{"name": doc.Name, "pixels": len(doc.Pixels)}).Debug("import applied")
	return e, nil
}

// LoadDocument opens an already validated document, such as one from the
// artwork library.
func (e Editor) LoadDocument(doc artwork.Document) Editor {
	e.Canvas = pixel.FromCells(doc.Pixels)
	e.Name = doc.Name
	e.Err = ""
	return e
}

// Fail records a user-facing error that did not come from document
// validation, such as an unreadable file.
func (e Editor) Fail(err error) Editor {
	e.Err = fmt.Sprint(err)
	return e
}

// Export flattens the canvas into a document. A blank name becomes
// artwork.DefaultName.
func (e Editor) Export(name string) artwork.Document {
	return artwork.NewDocument(name, e.Canvas.Cells())
}
