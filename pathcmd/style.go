package pathcmd

// Styled is a finished path together with its paint. Empty colours mean
// "not set" and are left to the document layer.
type Styled struct {
	Path   *Path
	Fill   string
	Stroke string
}

// Filled attaches a fill colour to path.
func (path *Path) Filled(color string) Styled {
	return Styled{Path: path, Fill: color}
}

// Stroked attaches a stroke colour to path.
func (path *Path) Stroked(color string) Styled {
	return Styled{Path: path, Stroke: color}
}

// Stroked returns a copy of s with stroke colour set.
func (s Styled) Stroked(color string) Styled {
	s.Stroke = color
	return s
}
