package trellis

// Size is a width/height pair in backend units. A zero component asks the
// backend to choose that axis itself.
type Size struct {
	Width, Height float64
}

// WindowFlags are forwarded verbatim to the backend when a panel opens its
// region. The view tree never interprets them.
type WindowFlags uint32

const (
	WindowNoTitleBar WindowFlags = 1 << iota // hide the title bar of a top-level window
	WindowNoResize                           // keep the backend from resizing the region
	WindowNoMove                             // keep the backend from moving the region
	WindowAutoResize                         // fit the region to its content every frame
)

// ViewKind distinguishes the closed set of view variants.
type ViewKind uint8

const (
	KindPanel     ViewKind = iota // window or child region holding other views
	KindButton                    // clickable control
	KindText                      // static text
	KindTextInput                 // editable text bound to a backend buffer
)

// String returns the variant name.
func (k ViewKind) String() string {
	switch k {
	case KindPanel:
		return "Panel"
	case KindButton:
		return "Button"
	case KindText:
		return "Text"
	case KindTextInput:
		return "TextInput"
	default:
		return "ViewKind(?)"
	}
}
