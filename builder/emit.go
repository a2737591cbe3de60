package builder

import (
	"fmt"

	"github.com/teranos/codecraft/errors"
)

// Line buffers one statement at the current depth.
func (d *Document) Line(code string) {
	d.appendCode(code)
}

// Return buffers a return statement. An empty expression renders a bare
// "return".
func (d *Document) Return(expr string) {
	if expr == "" {
		d.appendCode("return")
		return
	}
	d.appendCode(fmt.Sprintf("return %s", expr))
}

// Comment buffers a comment at the current depth. The leader is added at
// render time; pass the text without "#".
func (d *Document) Comment(text string) {
	d.append(LineRecord{Text: text, Depth: d.Depth(), Kind: LineComment})
}

// Blank buffers a single blank line.
func (d *Document) Blank() {
	d.append(LineRecord{Kind: LineBlank})
}

// BlankLines buffers n blank lines.
func (d *Document) BlankLines(n int) {
	for i := 0; i < n; i++ {
		d.Blank()
	}
}

// Raw buffers text rendered verbatim at column zero, regardless of the
// current depth.
func (d *Document) Raw(text string) {
	d.append(LineRecord{Text: text, Depth: 0, Kind: LineRaw})
}

// Attr buffers an annotated attribute inside the innermost class body.
// Issued outside a class block it is a usage error (errors.ErrOutsideClass).
func (d *Document) Attr(name, typeHint, defaultValue string) error {
	top := d.top()
	if top == nil || top.kind != FrameClass {
		return errors.Wrapf(errors.ErrOutsideClass, "attribute %q", name)
	}
	if defaultValue != "" {
		d.appendCode(fmt.Sprintf("%s: %s = %s", name, typeHint, defaultValue))
	} else {
		d.appendCode(fmt.Sprintf("%s: %s", name, typeHint))
	}
	return nil
}
