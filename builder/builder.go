// Package builder emits syntactically structured Python source from a
// sequence of imperative calls. A Document owns an append-only line buffer,
// a registry of module-level imports and a stack of open structural blocks
// (classes, functions, control flow). Block-entry calls push a frame and
// return a Handle whose Close pops it; emission calls buffer lines at the
// depth of the innermost open frame. Generate renders the whole document,
// Validate feeds the rendered text through the pycheck syntax checker, and
// Save persists it with optional external formatting.
//
// A Document is single-owner, single-threaded state. Concurrent mutation
// must be serialized by the caller.
package builder

import (
	"strings"
)

// DefaultIndentWidth is the number of indent characters per nesting level.
const DefaultIndentWidth = 4

// Document is the root container for one generated source file.
type Document struct {
	lines   []LineRecord
	imports *ImportRegistry
	stack   []*frame

	indentWidth int
	indentChar  rune
}

// Option configures a Document at construction time.
type Option func(*Document)

// WithIndent sets the number of indent characters per nesting level.
func WithIndent(width int) Option {
	return func(d *Document) {
		if width > 0 {
			d.indentWidth = width
		}
	}
}

// WithIndentChar sets the indentation character (space or tab).
func WithIndentChar(ch rune) Option {
	return func(d *Document) {
		d.indentChar = ch
	}
}

// New creates an empty Document at module level (no open frames, depth 0).
func New(opts ...Option) *Document {
	d := &Document{
		imports:     NewImportRegistry(),
		indentWidth: DefaultIndentWidth,
		indentChar:  ' ',
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Imports exposes the module-level import registry.
func (d *Document) Imports() *ImportRegistry {
	return d.imports
}

// Depth returns the indentation depth new statements would be buffered at:
// the body depth of the innermost open frame, or 0 at module level.
func (d *Document) Depth() int {
	if f := d.top(); f != nil {
		return f.depth
	}
	return 0
}

// Lines returns a copy of the buffered line records.
func (d *Document) Lines() []LineRecord {
	out := make([]LineRecord, len(d.lines))
	copy(out, d.lines)
	return out
}

// top returns the innermost open frame, or nil at module level.
func (d *Document) top() *frame {
	if len(d.stack) == 0 {
		return nil
	}
	return d.stack[len(d.stack)-1]
}

// append buffers a record. Code records count as the body of the enclosing
// frame; blanks and comments do not, since the target grammar does not accept
// them as block statements.
func (d *Document) append(rec LineRecord) {
	if rec.Kind == LineCode {
		if f := d.top(); f != nil && rec.Depth == f.depth {
			f.bodyEmitted = true
		}
	}
	d.lines = append(d.lines, rec)
}

// appendCode buffers one code line at the current depth.
func (d *Document) appendCode(text string) {
	d.append(LineRecord{Text: text, Depth: d.Depth(), Kind: LineCode})
}

// enter composes a block: any decorator lines and the header are buffered at
// the parent depth, then a frame one level deeper is pushed.
func (d *Document) enter(kind FrameKind, header string, decorators []string) *Handle {
	for _, dec := range decorators {
		if !strings.HasPrefix(dec, "@") {
			dec = "@" + dec
		}
		d.appendCode(dec)
	}
	parent := d.Depth()
	d.appendCode(header)
	f := &frame{kind: kind, header: header, depth: parent + 1}
	d.stack = append(d.stack, f)
	return &Handle{doc: d, frame: f}
}

// indent returns the leading whitespace for one depth level count.
func (d *Document) indent(depth int) string {
	return strings.Repeat(string(d.indentChar), d.indentWidth*depth)
}
