package builder

import (
	"fmt"
	"sort"
	"strings"
)

// ImportRegistry deduplicates module-level imports and renders the canonical
// import block. A module name maps to at most one entry; an entry can carry
// both a whole-module import and a from-import with selected symbols, and
// renders both forms when it does. Insertion order is preserved: whole-module
// imports render first, in the order each module was first imported whole,
// then from-imports in the order each module first contributed a symbol.
type ImportRegistry struct {
	entries map[string]*importEntry
	next    int
}

type importEntry struct {
	module    string
	whole     bool
	wholeSeq  int
	symbols   []string
	symbolSet map[string]struct{}
	fromSeq   int
}

// NewImportRegistry creates an empty registry.
func NewImportRegistry() *ImportRegistry {
	return &ImportRegistry{entries: make(map[string]*importEntry)}
}

// Add records an import of module. With no symbols it is a whole-module
// import; with symbols it is a from-import. Repeated calls merge: the same
// module and overlapping symbol sets never produce duplicate output, and a
// whole-module import layered over a from-import (or vice versa) keeps both
// forms.
func (r *ImportRegistry) Add(module string, symbols ...string) {
	e, ok := r.entries[module]
	if !ok {
		e = &importEntry{module: module, wholeSeq: -1, fromSeq: -1}
		r.entries[module] = e
	}
	if len(symbols) == 0 {
		if !e.whole {
			e.whole = true
			e.wholeSeq = r.next
			r.next++
		}
		return
	}
	if e.fromSeq < 0 {
		e.fromSeq = r.next
		r.next++
		e.symbolSet = make(map[string]struct{})
	}
	for _, sym := range symbols {
		if _, dup := e.symbolSet[sym]; dup {
			continue
		}
		e.symbolSet[sym] = struct{}{}
		e.symbols = append(e.symbols, sym)
	}
}

// Empty reports whether the registry holds no imports.
func (r *ImportRegistry) Empty() bool {
	return len(r.entries) == 0
}

// Render returns the import block, one statement per line.
func (r *ImportRegistry) Render() []string {
	whole := make([]*importEntry, 0, len(r.entries))
	from := make([]*importEntry, 0, len(r.entries))
	for _, e := range r.entries {
		if e.whole {
			whole = append(whole, e)
		}
		if e.fromSeq >= 0 {
			from = append(from, e)
		}
	}
	sort.Slice(whole, func(i, j int) bool { return whole[i].wholeSeq < whole[j].wholeSeq })
	sort.Slice(from, func(i, j int) bool { return from[i].fromSeq < from[j].fromSeq })

	lines := make([]string, 0, len(whole)+len(from))
	for _, e := range whole {
		lines = append(lines, fmt.Sprintf("import %s", e.module))
	}
	for _, e := range from {
		lines = append(lines, fmt.Sprintf("from %s import %s", e.module, strings.Join(e.symbols, ", ")))
	}
	return lines
}

// Import records a module-level import, or degrades to an in-place statement
// when any block is open: an import issued inside a block is conditional on
// that block and cannot be hoisted to module scope. In-place imports are
// tracked independently and never deduplicated against the registry.
func (d *Document) Import(module string, symbols ...string) {
	if d.top() != nil {
		if len(symbols) > 0 {
			d.appendCode(fmt.Sprintf("from %s import %s", module, strings.Join(symbols, ", ")))
		} else {
			d.appendCode(fmt.Sprintf("import %s", module))
		}
		return
	}
	d.imports.Add(module, symbols...)
}
