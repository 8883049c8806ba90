package draw

import (
	"bytes"
	"io"
	"os"
	"strconv"

	"golang.org/x/term"
)

// Terminal control sequences.
const (
	seqHome       = "\033[H"
	seqClear      = "\033[2J"
	seqClearLine  = "\033[2K"
	seqHideCursor = "\033[?25l"
	seqShowCursor = "\033[?25h"
)

// packetSize caps a single write to the output. 1400 bytes stays under a
// typical MTU, so an SSH session receives a frame as a steady packet stream.
const packetSize = 1400

// FrameWriter collects one frame of terminal output. Nothing reaches the
// underlying writer until Flush.
type FrameWriter struct {
	out    io.Writer
	frame  bytes.Buffer
	numBuf [20]byte
}

// NewFrameWriter returns a FrameWriter sending its frames to w.
func NewFrameWriter(w io.Writer) *FrameWriter {
	return &FrameWriter{out: w}
}

// Write appends p to the pending frame. It never fails.
func (f *FrameWriter) Write(p []byte) (int, error) {
	return f.frame.Write(p)
}

// Line replaces terminal row (1-based) with s.
func (f *FrameWriter) Line(row int, s string) {
	f.frame.WriteString("\033[")
	f.frame.Write(strconv.AppendInt(f.numBuf[:0], int64(row), 10))
	f.frame.WriteString(";1H" + seqClearLine)
	f.frame.WriteString(s)
}

// Begin hides the cursor and blanks the screen.
func (f *FrameWriter) Begin() {
	f.frame.WriteString(seqHideCursor + seqHome + seqClear)
}

// End blanks the screen and gives the cursor back.
func (f *FrameWriter) End() {
	f.frame.WriteString(seqHome + seqClear + seqShowCursor)
}

// Flush sends the pending frame in packetSize writes and starts a new one.
func (f *FrameWriter) Flush() error {
	defer f.frame.Reset()
	for data := f.frame.Bytes(); len(data) > 0; {
		n := min(len(data), packetSize)
		if _, err := f.out.Write(data[:n]); err != nil {
			return err
		}
		data = data[n:]
	}
	return nil
}

var _ io.Writer = (*FrameWriter)(nil)

// TermSizeFunc is a function that returns the terminal dimensions.
type TermSizeFunc func() (width, height int, err error)

// DefaultTermSizeFunc returns terminal size from os.Stdout.
var DefaultTermSizeFunc TermSizeFunc = func() (int, int, error) {
	return term.GetSize(int(os.Stdout.Fd()))
}
