package builder

import (
	"fmt"
	"strings"

	"github.com/teranos/codecraft/errors"
)

// ClassOpts carries the optional parts of a class header.
type ClassOpts struct {
	Bases      []string
	Decorators []string
}

// FuncOpts carries the optional parts of a function or method header.
type FuncOpts struct {
	Params     []string
	Returns    string
	Decorators []string
	Async      bool
}

// Class opens a class block. At most one ClassOpts is honored.
func (d *Document) Class(name string, opts ...ClassOpts) *Handle {
	var o ClassOpts
	if len(opts) > 0 {
		o = opts[0]
	}
	header := fmt.Sprintf("class %s%s:", name, formatBases(o.Bases))
	return d.enter(FrameClass, header, o.Decorators)
}

// Function opens a function block. At most one FuncOpts is honored.
func (d *Document) Function(name string, opts ...FuncOpts) *Handle {
	var o FuncOpts
	if len(opts) > 0 {
		o = opts[0]
	}
	return d.enter(FrameFunction, funcHeader(name, o), o.Decorators)
}

// Method opens a method block inside the innermost class. A leading "self"
// parameter is injected unless the first parameter already names the
// instance ("self" or "cls"). Calling Method while the innermost open block
// is not a class is a usage error (errors.ErrOutsideClass).
func (d *Document) Method(name string, opts ...FuncOpts) (*Handle, error) {
	top := d.top()
	if top == nil || top.kind != FrameClass {
		return nil, errors.Wrapf(errors.ErrOutsideClass, "method %q", name)
	}
	var o FuncOpts
	if len(opts) > 0 {
		o = opts[0]
	}
	if len(o.Params) == 0 {
		o.Params = []string{"self"}
	} else if !strings.Contains(o.Params[0], "self") && !strings.Contains(o.Params[0], "cls") {
		o.Params = append([]string{"self"}, o.Params...)
	}
	return d.enter(FrameMethod, funcHeader(name, o), o.Decorators), nil
}

// If opens an if block.
func (d *Document) If(condition string) *Handle {
	return d.enter(FrameIf, fmt.Sprintf("if %s:", condition), nil)
}

// Elif opens an elif block. It is the caller's responsibility to place it
// immediately after the matching if/elif sibling at the same depth; the
// chain is a usage contract, not enforced structurally.
func (d *Document) Elif(condition string) *Handle {
	return d.enter(FrameElif, fmt.Sprintf("elif %s:", condition), nil)
}

// Else opens an else block.
func (d *Document) Else() *Handle {
	return d.enter(FrameElse, "else:", nil)
}

// For opens a for loop over iterable with the given target.
func (d *Document) For(target, iterable string) *Handle {
	return d.enter(FrameFor, fmt.Sprintf("for %s in %s:", target, iterable), nil)
}

// While opens a while loop.
func (d *Document) While(condition string) *Handle {
	return d.enter(FrameWhile, fmt.Sprintf("while %s:", condition), nil)
}

// Try opens a try block.
func (d *Document) Try() *Handle {
	return d.enter(FrameTry, "try:", nil)
}

// Except opens an except block. Both arguments may be empty: Except("", "")
// renders a bare "except:", Except("ValueError", "e") renders
// "except ValueError as e:".
func (d *Document) Except(exception, as string) *Handle {
	header := "except:"
	switch {
	case exception != "" && as != "":
		header = fmt.Sprintf("except %s as %s:", exception, as)
	case exception != "":
		header = fmt.Sprintf("except %s:", exception)
	}
	return d.enter(FrameExcept, header, nil)
}

// Finally opens a finally block.
func (d *Document) Finally() *Handle {
	return d.enter(FrameFinally, "finally:", nil)
}

// With opens a resource scope. as may be empty.
func (d *Document) With(expression, as string) *Handle {
	header := fmt.Sprintf("with %s:", expression)
	if as != "" {
		header = fmt.Sprintf("with %s as %s:", expression, as)
	}
	return d.enter(FrameWith, header, nil)
}

// Block opens a generic block with a caller-composed header. The trailing
// colon is appended when missing.
func (d *Document) Block(header string) *Handle {
	if !strings.HasSuffix(header, ":") {
		header += ":"
	}
	return d.enter(FrameBlock, header, nil)
}

func funcHeader(name string, o FuncOpts) string {
	prefix := ""
	if o.Async {
		prefix = "async "
	}
	returns := ""
	if o.Returns != "" {
		returns = fmt.Sprintf(" -> %s", o.Returns)
	}
	return fmt.Sprintf("%sdef %s(%s)%s:", prefix, name, strings.Join(o.Params, ", "), returns)
}

func formatBases(bases []string) string {
	if len(bases) == 0 {
		return ""
	}
	return fmt.Sprintf("(%s)", strings.Join(bases, ", "))
}
