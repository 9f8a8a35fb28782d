// Package printer provides the output-writing interface consumed by color
// serialization and the border handler's declaration emission.
//
// It plays the role the teacher's text/runeio plays for input: a thin,
// error-propagating wrapper around a buffered writer.
package printer

import (
	"bufio"
	"fmt"
	"io"

	"github.com/tawesoft/cssbox/compat"
)

// Printer is the destination for serialized CSS text.
type Printer interface {
	WriteString(s string) error
	WriteChar(b byte) error
	Delim(ch byte, spaced bool) error
	Minify() bool
	Targets() *compat.Browsers
}

// Error wraps an underlying I/O failure encountered while printing.
type Error struct {
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("printer: %s", e.Err.Error())
}

func (e *Error) Unwrap() error {
	return e.Err
}

// TextPrinter is a Printer that writes to a bufio.Writer.
type TextPrinter struct {
	w       *bufio.Writer
	minify  bool
	targets *compat.Browsers
}

// New returns a TextPrinter writing to w. targets may be nil, meaning no
// specific browser targets are configured.
func New(w io.Writer, minify bool, targets *compat.Browsers) *TextPrinter {
	return &TextPrinter{
		w:       bufio.NewWriter(w),
		minify:  minify,
		targets: targets,
	}
}

func (p *TextPrinter) WriteString(s string) error {
	if _, err := p.w.WriteString(s); err != nil {
		return &Error{err}
	}
	return nil
}

func (p *TextPrinter) WriteChar(b byte) error {
	if err := p.w.WriteByte(b); err != nil {
		return &Error{err}
	}
	return nil
}

// Delim writes a delimiter character, surrounded by spaces unless minifying
// or spaced is false.
func (p *TextPrinter) Delim(ch byte, spaced bool) error {
	if spaced && !p.minify {
		if err := p.WriteChar(' '); err != nil {
			return err
		}
	}
	if err := p.WriteChar(ch); err != nil {
		return err
	}
	if spaced && !p.minify {
		return p.WriteChar(' ')
	}
	return nil
}

func (p *TextPrinter) Minify() bool { return p.minify }

func (p *TextPrinter) Targets() *compat.Browsers { return p.targets }

// Flush flushes any buffered output to the underlying writer.
func (p *TextPrinter) Flush() error {
	if err := p.w.Flush(); err != nil {
		return &Error{err}
	}
	return nil
}
