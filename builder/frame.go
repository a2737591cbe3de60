package builder

import (
	"github.com/teranos/codecraft/errors"
	"github.com/teranos/codecraft/logger"
)

// FrameKind identifies the structural block a frame represents.
type FrameKind int

const (
	FrameClass FrameKind = iota
	FrameFunction
	FrameMethod
	FrameIf
	FrameElif
	FrameElse
	FrameFor
	FrameWhile
	FrameTry
	FrameExcept
	FrameFinally
	FrameWith
	FrameBlock
)

var frameKindNames = map[FrameKind]string{
	FrameClass:    "class",
	FrameFunction: "function",
	FrameMethod:   "method",
	FrameIf:       "if",
	FrameElif:     "elif",
	FrameElse:     "else",
	FrameFor:      "for",
	FrameWhile:    "while",
	FrameTry:      "try",
	FrameExcept:   "except",
	FrameFinally:  "finally",
	FrameWith:     "with",
	FrameBlock:    "block",
}

func (k FrameKind) String() string {
	if name, ok := frameKindNames[k]; ok {
		return name
	}
	return "unknown"
}

// frame is one open structural block on the scope stack. Only the top frame
// is mutable; depth is the indentation level of the frame's body.
type frame struct {
	kind        FrameKind
	header      string
	depth       int
	bodyEmitted bool
}

// Handle is returned by every block-entry call and closes its frame. The
// intended pattern pairs each entry with a deferred Close so the frame is
// released on every exit path:
//
//	h := doc.If("x > 0")
//	defer h.Close()
//
// Close is also the explicit manual close API for callers that sequence
// blocks without defer. A handle closes exactly once.
type Handle struct {
	doc    *Document
	frame  *frame
	closed bool
}

// Kind returns the frame kind this handle controls.
func (h *Handle) Kind() FrameKind {
	return h.frame.kind
}

// Close pops the handle's frame off the scope stack. If no statement was ever
// emitted into the frame's body, a single "pass" placeholder is appended first
// so the block stays syntactically non-empty.
//
// Closing a frame that is not the innermost open block returns
// errors.ErrFrameMismatch; closing twice returns errors.ErrFrameClosed. Both
// are usage errors: the document is left unchanged and the call is not
// retried.
func (h *Handle) Close() error {
	if h.closed {
		return errors.Wrapf(errors.ErrFrameClosed, "%s %q", h.frame.kind, h.frame.header)
	}
	top := h.doc.top()
	if top == nil {
		return errors.Wrapf(errors.ErrFrameMismatch,
			"closing %s %q with no open blocks", h.frame.kind, h.frame.header)
	}
	if top != h.frame {
		return errors.Wrapf(errors.ErrFrameMismatch,
			"closing %s %q while %s %q is still open",
			h.frame.kind, h.frame.header, top.kind, top.header)
	}
	if !h.frame.bodyEmitted {
		h.doc.append(LineRecord{Text: placeholderStmt, Depth: h.frame.depth, Kind: LineCode})
	}
	h.doc.stack = h.doc.stack[:len(h.doc.stack)-1]
	h.closed = true
	logger.Debugw("closed block", "kind", h.frame.kind.String(), "depth", h.frame.depth)
	return nil
}

// placeholderStmt is the no-op statement inserted into blocks that would
// otherwise be empty, which the target grammar forbids.
const placeholderStmt = "pass"
