package printer

import (
	"bytes"
	"fmt"
	"strings"
)

const (
	esc = 0x1B
	gs  = 0x1D
	lf  = 0x0A
)

// Text alignment values for SetAlign.
const (
	AlignLeft   = 0
	AlignCenter = 1
	AlignRight  = 2
)

// Character sizes for SetFontSize.
const (
	FontNormal = 0x00
	FontDouble = 0x11 // double width and height
)

// Document accumulates an ESC/POS byte stream for a thermal printer.
type Document struct {
	buf   bytes.Buffer
	width int
}

// NewDocument starts a document at the given character width. 58mm paper
// fits 32 characters, 80mm fits 48.
func NewDocument(charWidth int) *Document {
	if charWidth <= 0 {
		charWidth = 32
	}
	d := &Document{width: charWidth}
	d.buf.Write([]byte{esc, '@'})
	return d
}

// LineFeed advances the paper one line.
func (d *Document) LineFeed() *Document {
	d.buf.WriteByte(lf)
	return d
}

// FeedLines advances the paper n lines.
func (d *Document) FeedLines(n int) *Document {
	for i := 0; i < n; i++ {
		d.buf.WriteByte(lf)
	}
	return d
}

// SetAlign sets the alignment for subsequent text.
func (d *Document) SetAlign(align int) *Document {
	d.buf.Write([]byte{esc, 'a', byte(align)})
	return d
}

// SetBold toggles emphasized printing.
func (d *Document) SetBold(on bool) *Document {
	b := byte(0)
	if on {
		b = 1
	}
	d.buf.Write([]byte{esc, 'E', b})
	return d
}

// SetFontSize sets the character size for subsequent text.
func (d *Document) SetFontSize(size byte) *Document {
	d.buf.Write([]byte{gs, '!', size})
	return d
}

// Text prints a line.
func (d *Document) Text(s string) *Document {
	d.buf.WriteString(s)
	d.buf.WriteByte(lf)
	return d
}

// TextF prints a formatted line.
func (d *Document) TextF(format string, args ...interface{}) *Document {
	d.buf.WriteString(fmt.Sprintf(format, args...))
	d.buf.WriteByte(lf)
	return d
}

// Separator prints char repeated across the full print width.
func (d *Document) Separator(char byte) *Document {
	d.buf.WriteString(strings.Repeat(string(char), d.width))
	d.buf.WriteByte(lf)
	return d
}

// KeyValue prints key flush left and value flush right on one line.
func (d *Document) KeyValue(key, value string) *Document {
	pad := d.width - len(key) - len(value)
	if pad < 1 {
		pad = 1
	}
	d.buf.WriteString(key)
	d.buf.WriteString(strings.Repeat(" ", pad))
	d.buf.WriteString(value)
	d.buf.WriteByte(lf)
	return d
}

// ItemLine prints "Nx name" with the total flush right.
func (d *Document) ItemLine(qty int, name, total string) *Document {
	prefix := fmt.Sprintf("%dx %s", qty, name)
	pad := d.width - len(prefix) - len(total)
	if pad < 1 {
		pad = 1
	}
	d.buf.WriteString(prefix)
	d.buf.WriteString(strings.Repeat(" ", pad))
	d.buf.WriteString(total)
	d.buf.WriteByte(lf)
	return d
}

// PartialCut cuts the paper, leaving the tab most printers expect.
func (d *Document) PartialCut() *Document {
	d.buf.Write([]byte{gs, 'V', 0x01})
	return d
}

// Bytes returns the accumulated stream.
func (d *Document) Bytes() []byte {
	return d.buf.Bytes()
}
