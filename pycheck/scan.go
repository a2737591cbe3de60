package pycheck

import (
	"fmt"
	"strings"
)

var closers = map[byte]byte{')': '(', ']': '[', '}': '{'}

// scan consumes the raw text of one physical line, tracking string, comment
// and bracket state. It returns the line's logical content with string
// literals collapsed to an empty-string token and comments removed.
func (c *checker) scan(line int, text string) (string, *Result) {
	c.backslash = false
	var out strings.Builder
	i := 0

	if c.inTriple {
		closing := strings.Repeat(string(c.tripleQ), 3)
		idx := strings.Index(text, closing)
		if idx < 0 {
			return "", nil // whole line is string content
		}
		c.inTriple = false
		out.WriteString(`""`)
		i = idx + len(closing)
	}

	for i < len(text) {
		ch := text[i]
		switch {
		case ch == '#':
			return out.String(), nil

		case ch == '\'' || ch == '"':
			if i+2 < len(text) && text[i+1] == ch && text[i+2] == ch {
				closing := strings.Repeat(string(ch), 3)
				idx := strings.Index(text[i+3:], closing)
				if idx < 0 {
					c.inTriple = true
					c.tripleQ = ch
					c.tripleAt = line
					return out.String(), nil
				}
				out.WriteString(`""`)
				i += 3 + idx + 3
				continue
			}
			end, ok := scanString(text, i+1, ch)
			if !ok {
				return "", fail(line, i+1, "unterminated string literal")
			}
			out.WriteString(`""`)
			i = end
			continue

		case ch == '(' || ch == '[' || ch == '{':
			c.brackets = append(c.brackets, bracket{ch: ch, line: line, col: i + 1})
			out.WriteByte(ch)

		case ch == ')' || ch == ']' || ch == '}':
			if len(c.brackets) == 0 || c.brackets[len(c.brackets)-1].ch != closers[ch] {
				return "", fail(line, i+1, fmt.Sprintf("unmatched %q", string(ch)))
			}
			c.brackets = c.brackets[:len(c.brackets)-1]
			out.WriteByte(ch)

		case ch == '\\' && i == len(text)-1:
			c.backslash = true

		default:
			out.WriteByte(ch)
		}
		i++
	}
	return out.String(), nil
}

// scanString advances past a single-quoted string body starting after the
// opening quote, honoring backslash escapes. It returns the index just past
// the closing quote.
func scanString(text string, start int, quote byte) (int, bool) {
	for i := start; i < len(text); i++ {
		switch text[i] {
		case '\\':
			i++ // skip escaped char
		case quote:
			return i + 1, true
		}
	}
	return 0, false
}
