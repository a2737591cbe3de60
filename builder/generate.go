package builder

import "strings"

// importSeparatorLines is the number of blank lines between the import block
// and the first buffered record.
const importSeparatorLines = 2

// Generate renders the document. It is a pure function of current state:
// calling it twice with no mutation in between yields byte-identical text.
//
// Blocks still open at generation time are handled defensively rather than
// rejected: rendering proceeds as if every open frame were closed, and an
// open frame with an empty body gets its "pass" placeholder in the output.
// The document itself is not mutated, so the open frames remain usable
// afterwards.
func (d *Document) Generate() string {
	importLines := d.imports.Render()
	body := d.renderRecords()

	lines := make([]string, 0, len(importLines)+importSeparatorLines+len(body))
	lines = append(lines, importLines...)
	if len(importLines) > 0 && len(body) > 0 {
		for i := 0; i < importSeparatorLines; i++ {
			lines = append(lines, "")
		}
	}
	lines = append(lines, body...)
	return strings.Join(lines, "\n")
}

func (d *Document) renderRecords() []string {
	out := make([]string, 0, len(d.lines)+1)
	for _, rec := range d.lines {
		out = append(out, d.renderRecord(rec))
	}
	// Render-time auto-close: only the innermost open frame can still be
	// empty, since a nested header counts as its parent's body.
	if f := d.top(); f != nil && !f.bodyEmitted {
		out = append(out, d.indent(f.depth)+placeholderStmt)
	}
	return out
}

func (d *Document) renderRecord(rec LineRecord) string {
	switch rec.Kind {
	case LineBlank:
		return ""
	case LineRaw:
		return rec.Text
	case LineComment:
		return d.indent(rec.Depth) + "# " + rec.Text
	default:
		if rec.Text == "" {
			// Interior blank line of a multi-line string; indentation would
			// be trailing whitespace.
			return ""
		}
		return d.indent(rec.Depth) + rec.Text
	}
}
