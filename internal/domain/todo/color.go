package todo

// Color is an optional tag attached to a Todo.
type Color string

const (
	NoColor     Color = ""
	ColorGreen  Color = "green"
	ColorBlue   Color = "blue"
	ColorOrange Color = "orange"
	ColorPurple Color = "purple"
	ColorRed    Color = "red"
)

// AllColors returns every selectable color in display order.
func AllColors() []Color {
	return []Color{ColorGreen, ColorBlue, ColorOrange, ColorPurple, ColorRed}
}

// IsValid returns true if the color is one of the defined tags.
// NoColor is not a valid tag.
func (c Color) IsValid() bool {
	switch c {
	case ColorGreen, ColorBlue, ColorOrange, ColorPurple, ColorRed:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (c Color) String() string {
	return string(c)
}
