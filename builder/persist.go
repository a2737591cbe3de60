package builder

import (
	"os"

	"github.com/teranos/codecraft/errors"
	"github.com/teranos/codecraft/logger"
	"github.com/teranos/codecraft/pyfmt"
)

// SaveOption configures a Save call.
type SaveOption func(*saveOpts)

type saveOpts struct {
	formatter pyfmt.Formatter
}

// WithFormatter runs the given formatter over the generated text before
// writing. Formatter failure aborts the save and is reported to the caller;
// the document is unchanged and Save can be retried without the formatter.
func WithFormatter(f pyfmt.Formatter) SaveOption {
	return func(o *saveOpts) {
		o.formatter = f
	}
}

// Save generates the document and writes it to path, overwriting any
// existing file. The write is a single bounded operation with no internal
// retries; a trailing newline is ensured.
func (d *Document) Save(path string, opts ...SaveOption) error {
	var o saveOpts
	for _, opt := range opts {
		opt(&o)
	}

	src := d.Generate()
	if o.formatter != nil {
		formatted, err := o.formatter.Format(src)
		if err != nil {
			return errors.Wrap(err, "format generated source")
		}
		src = formatted
	}
	if src != "" && src[len(src)-1] != '\n' {
		src += "\n"
	}

	if err := os.WriteFile(path, []byte(src), 0644); err != nil {
		return errors.Wrapf(err, "write %s", path)
	}
	logger.Debugw("saved document", "path", path, "bytes", len(src))
	return nil
}
