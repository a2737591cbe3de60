package builder

// LineKind classifies a buffered output line.
type LineKind int

const (
	// LineCode is an ordinary statement or block header.
	LineCode LineKind = iota
	// LineBlank renders as an empty line with no trailing whitespace.
	LineBlank
	// LineComment renders with the "# " comment leader at the record's depth.
	LineComment
	// LineRaw renders verbatim at column zero regardless of the open scopes.
	// Escape hatch for shebangs, encoding cookies and similar.
	LineRaw
)

func (k LineKind) String() string {
	switch k {
	case LineCode:
		return "code"
	case LineBlank:
		return "blank"
	case LineComment:
		return "comment"
	case LineRaw:
		return "raw"
	default:
		return "unknown"
	}
}

// LineRecord is one unit of buffered output. Records are immutable once
// appended; the buffer is append-only during construction and consumed only
// at render time.
type LineRecord struct {
	Text  string
	Depth int
	Kind  LineKind
}
