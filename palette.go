package diagrams

// Palette is the colour cycle used for shapes without an explicit colour.
// The four colours stay distinguishable for the common forms of colour
// blindness.
var Palette = [...]string{"#D81B60", "#1E88E5", "#FFC107", "#004D40"}

// FallbackColor returns the palette colour for the i-th shape, cycling
// through Palette. Negative indices count from the end of the cycle.
func FallbackColor(i int) string {
	n := len(Palette)
	return Palette[((i%n)+n)%n]
}

// ColorOr returns color, or the fallback colour for index i if color is empty.
func ColorOr(color string, i int) string {
	if color == "" {
		return FallbackColor(i)
	}
	return color
}
