package input

// Event is a marker interface for everything the input source can deliver to
// the control loop. The unexported method keeps the set of events closed to
// this package: embed Base to satisfy it.
type Event interface {
	isEvent()
}

// Base can be embedded in event types to implement Event.
type Base struct{}

func (Base) isEvent() {}

// KeyType classifies a key press.
type KeyType int

const (
	// KeyRune is a printable character.
	KeyRune KeyType = iota
	// KeyEnter is the Enter/Return key.
	KeyEnter
	// KeyOther is any other key; Name holds its textual form.
	KeyOther
)

// KeyCode identifies a single key press.
type KeyCode struct {
	Type KeyType
	Rune rune
	Name string
}

// Rune builds the code for a printable character.
func Rune(r rune) KeyCode {
	return KeyCode{Type: KeyRune, Rune: r}
}

// Enter is the code for the Enter key.
var Enter = KeyCode{Type: KeyEnter}

// Named builds the code for a non-printable key such as "esc" or "ctrl+c".
func Named(name string) KeyCode {
	return KeyCode{Type: KeyOther, Name: name}
}

// String returns the key as used in key bindings: the character itself,
// "enter", or the key name.
func (k KeyCode) String() string {
	switch k.Type {
	case KeyRune:
		return string(k.Rune)
	case KeyEnter:
		return "enter"
	default:
		return k.Name
	}
}

// KeyEvent is a key press.
type KeyEvent struct {
	Base
	Code KeyCode
}

// OtherEvent is anything that is not a key press (mouse, focus, paste...).
// It never changes state.
type OtherEvent struct {
	Base
}

var (
	_ Event = KeyEvent{}
	_ Event = OtherEvent{}
)
