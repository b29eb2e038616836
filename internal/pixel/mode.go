package pixel

import "fmt"

type ModeKind int

const (
	Idle ModeKind = iota
	Editing
	// Picking is editing with the eyedropper armed: grid clicks sample a
	// color into the edited slot instead of painting.
	Picking
)

// Mode is the color-editing interaction state. Slot is meaningful only when
// Kind is Editing or Picking.
type Mode struct {
	Kind ModeKind
	Slot int
}

func IdleMode() Mode { return Mode{Kind: Idle} }

func EditingMode(slot int) Mode { return Mode{Kind: Editing, Slot: slot} }

func PickingMode(slot int) Mode { return Mode{Kind: Picking, Slot: slot} }

// Active reports whether a slot is being edited.
func (m Mode) Active() bool {
	return m.Kind == Editing || m.Kind == Picking
}

func (m Mode) String() string {
	switch m.Kind {
	case Editing:
		return fmt.Sprintf("editing(%d)", m.Slot)
	case Picking:
		return fmt.Sprintf("picking(%d)", m.Slot)
	default:
		return "idle"
	}
}
