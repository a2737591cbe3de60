// Package pycheck is a structural syntax checker for Python source text.
//
// It validates the block structure the builder emits: indentation discipline,
// non-empty blocks after a header line, bracket balance across continuation
// lines, string termination (including triple-quoted strings), and the
// attachment of elif/else/except/finally to a compatible chain head. It is a
// line-oriented scanner, not a full parser; expression-level errors are out
// of its reach.
//
// Check never panics and never mutates its input. The first failure stops
// the scan.
package pycheck

import (
	"fmt"
	"strings"
)

// Result is the outcome of a syntax check. Line and Col are 1-based and only
// meaningful when OK is false.
type Result struct {
	OK      bool
	Line    int
	Col     int
	Message string
}

func (r Result) String() string {
	if r.OK {
		return "ok"
	}
	return fmt.Sprintf("line %d, col %d: %s", r.Line, r.Col, r.Message)
}

// chainHeads lists, for each dependent clause keyword, the block keywords a
// preceding sibling at the same depth must have opened for the clause to
// attach.
var chainHeads = map[string]map[string]bool{
	"elif":    {"if": true, "elif": true},
	"else":    {"if": true, "elif": true, "for": true, "while": true, "try": true, "except": true},
	"except":  {"try": true, "except": true},
	"finally": {"try": true, "except": true, "else": true},
}

// blockKeywords are the statement keywords that open a trackable block when
// the logical line ends with a colon.
var blockKeywords = map[string]bool{
	"class": true, "def": true, "if": true, "elif": true, "else": true,
	"for": true, "while": true, "try": true, "except": true, "finally": true,
	"with": true, "match": true, "case": true, "async": true,
}

type checker struct {
	indents  []int          // open indentation levels, innermost last
	lastHead map[int]string // last block keyword opened at each indent level
	expect   bool           // previous logical line opened a block
	expectAt int            // line number of the header that demands a body

	brackets  []bracket // open brackets across continuation lines
	inTriple  bool
	tripleQ   byte // quote char of the open triple-quoted string
	tripleAt  int  // line where the triple-quoted string opened
	backslash bool // previous physical line ended with a continuation

	open      bool // a logical line is in progress
	logical   string
	logicalAt int
}

type bracket struct {
	ch   byte
	line int
	col  int
}

// Check scans src and reports the first structural syntax failure, if any.
func Check(src string) Result {
	c := &checker{
		indents:  []int{0},
		lastHead: make(map[int]string),
	}
	lines := strings.Split(src, "\n")
	for i, text := range lines {
		if res := c.feed(i+1, text); res != nil {
			return *res
		}
	}
	return c.finish()
}

// feed processes one physical line.
func (c *checker) feed(line int, text string) *Result {
	newLogical := !c.open
	stripped, res := c.scan(line, text)
	if res != nil {
		return res
	}
	trimmed := trim(stripped)

	if newLogical {
		if trimmed == "" && !c.inTriple && len(c.brackets) == 0 && !c.backslash {
			return nil // blank or comment-only line
		}
		if res := c.checkIndent(line, indentWidth(text)); res != nil {
			return res
		}
		c.open = true
		c.logical = trimmed
		c.logicalAt = line
	} else if trimmed != "" {
		c.logical += " " + trimmed
	}

	if c.inTriple || len(c.brackets) > 0 || c.backslash {
		return nil // logical line continues on the next physical line
	}
	c.open = false
	res = c.endLogical()
	c.logical = ""
	return res
}

// checkIndent applies the indentation stack discipline at the start of a new
// logical line.
func (c *checker) checkIndent(line, indent int) *Result {
	top := c.indents[len(c.indents)-1]
	if c.expect {
		if indent <= top {
			return fail(line, indent+1, "expected an indented block")
		}
		c.indents = append(c.indents, indent)
		c.expect = false
		return nil
	}
	if indent > top {
		return fail(line, indent+1, "unexpected indent")
	}
	for indent < top {
		delete(c.lastHead, top)
		c.indents = c.indents[:len(c.indents)-1]
		top = c.indents[len(c.indents)-1]
	}
	if indent != top {
		return fail(line, indent+1, "unindent does not match any outer indentation level")
	}
	return nil
}

// endLogical applies block and chain rules once a logical line is complete.
func (c *checker) endLogical() *Result {
	content := trim(c.logical)
	if content == "" {
		return nil
	}
	indent := c.indents[len(c.indents)-1]
	head := firstWord(content)

	if heads, dependent := chainHeads[head]; dependent {
		prev, ok := c.lastHead[indent]
		if !ok || !heads[prev] {
			return fail(c.logicalAt, indent+1, fmt.Sprintf("%q has no matching block to attach to", head))
		}
	}

	if content[len(content)-1] == ':' {
		c.expect = true
		c.expectAt = c.logicalAt
		if head == "async" {
			head = firstWord(trim(strings.TrimPrefix(content, "async")))
		}
		if blockKeywords[head] {
			c.lastHead[indent] = head
		} else {
			delete(c.lastHead, indent)
		}
		return nil
	}

	// An ordinary statement at this level breaks any open chain.
	delete(c.lastHead, indent)
	return nil
}

// finish applies end-of-input checks.
func (c *checker) finish() Result {
	if c.inTriple {
		return *fail(c.tripleAt, 1, "unterminated triple-quoted string literal")
	}
	if len(c.brackets) > 0 {
		b := c.brackets[len(c.brackets)-1]
		return *fail(b.line, b.col, fmt.Sprintf("%q was never closed", string(b.ch)))
	}
	if c.open {
		if res := c.endLogical(); res != nil {
			return *res
		}
	}
	if c.expect {
		return *fail(c.expectAt, 1, "expected an indented block")
	}
	return Result{OK: true}
}

func fail(line, col int, msg string) *Result {
	return &Result{Line: line, Col: col, Message: msg}
}

func trim(s string) string {
	return strings.Trim(s, " \t")
}

func indentWidth(s string) int {
	n := 0
	for n < len(s) && (s[n] == ' ' || s[n] == '\t') {
		n++
	}
	return n
}

func firstWord(s string) string {
	for i := 0; i < len(s); i++ {
		ch := s[i]
		alpha := ch == '_' || (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
		if !alpha {
			return s[:i]
		}
	}
	return s
}
