package mouse

// Button selects a pointer button either by raw X detail ID or by
// symbolic name. Exactly one of the two fields is meaningful; use the
// ButtonID and ButtonName constructors. The zero Button resolves to
// detail 1 (left button on most displays).
type Button struct {
	id   uint8
	name string
}

// ButtonID selects a button by raw X detail ID.
func ButtonID(id uint8) Button {
	return Button{id: id}
}

// ButtonName selects a button by symbolic name, resolved through the
// session's button table.
func ButtonName(name string) Button {
	return Button{name: name}
}

// Symbolic names recognized by the default button table.
const (
	BtnLeft        = "button_left"
	BtnMiddle      = "button_middle"
	BtnRight       = "button_right"
	BtnScrollUp    = "scroll_up"
	BtnScrollDown  = "scroll_down"
	BtnScrollLeft  = "scroll_left"
	BtnScrollRight = "scroll_right"
)

// ButtonMap maps symbolic button names to X detail IDs. It is read-only
// after construction.
type ButtonMap map[string]uint8

// DefaultButtons returns the standard seven-entry table. A fresh map is
// returned each call so callers can never alias a shared default.
func DefaultButtons() ButtonMap {
	return ButtonMap{
		BtnLeft:        1,
		BtnMiddle:      2,
		BtnRight:       3,
		BtnScrollUp:    4,
		BtnScrollDown:  5,
		BtnScrollLeft:  6,
		BtnScrollRight: 7,
	}
}

// Resolve maps a Button to its X detail ID. Resolution is pure and
// total: a name found in the table yields the mapped ID, an unknown
// name yields 1, a raw ID is passed through, and the zero Button
// yields 1. The silent fallback is deliberate; unknown names are not
// an error.
func (m ButtonMap) Resolve(b Button) uint8 {
	if b.name != "" {
		if id, ok := m[b.name]; ok {
			return id
		}
		return 1
	}
	if b.id == 0 {
		return 1
	}
	return b.id
}
