package builder

import (
	"strings"

	"github.com/teranos/codecraft/logger"
)

// docstringPlacement distinguishes frames that are conventionally documented
// by a leading string literal from frames where a triple-quoted string is
// merely an expression statement. Placement is resolved against the kind of
// the innermost open frame through this table, never by inspecting types at
// runtime.
type docstringPlacement int

const (
	// placementBody documents the enclosing block: the string is expected as
	// the first statement of the body.
	placementBody docstringPlacement = iota
	// placementInline renders the same text as an ordinary statement; legal,
	// but not a documented position in the target grammar.
	placementInline
)

var docstringPlacements = map[FrameKind]docstringPlacement{
	FrameClass:    placementBody,
	FrameFunction: placementBody,
	FrameMethod:   placementBody,
	FrameIf:       placementInline,
	FrameElif:     placementInline,
	FrameElse:     placementInline,
	FrameFor:      placementInline,
	FrameWhile:    placementInline,
	FrameTry:      placementInline,
	FrameExcept:   placementInline,
	FrameFinally:  placementInline,
	FrameWith:     placementInline,
	FrameBlock:    placementInline,
}

// Docstring buffers a documentation string. At module level (no open frames)
// it lands at depth 0; callers are expected to invoke it before other
// content, the engine does not reorder. Inside a block it lands at the body
// depth of the innermost frame, quoted with the grammar's triple-quote
// convention, and counts as the frame's first statement.
func (d *Document) Docstring(text string) {
	depth := d.Depth()
	if f := d.top(); f != nil {
		if docstringPlacements[f.kind] == placementBody && f.bodyEmitted {
			// Past the first statement the string no longer documents the
			// block; it still renders, but as a plain expression.
			logger.Debugw("docstring after block body started",
				"kind", f.kind.String(), "header", f.header)
		}
	}
	for _, line := range quoteDocstring(text) {
		d.append(LineRecord{Text: line, Depth: depth, Kind: LineCode})
	}
}

// quoteDocstring applies the multi-line string convention: one line for a
// single-line docstring, otherwise an opening quote line, the text lines,
// and a closing quote line.
func quoteDocstring(text string) []string {
	if !strings.Contains(text, "\n") {
		return []string{`"""` + text + `"""`}
	}
	lines := []string{`"""`}
	lines = append(lines, strings.Split(text, "\n")...)
	return append(lines, `"""`)
}
