// Package input turns raw terminal bytes and window key events into game commands.
package input

import (
	"bufio"
)

// Key is a recognised key press.
type Key uint8

const (
	KeyUp Key = iota + 1
	KeyDown
	KeyLeft
	KeyRight
	KeySpace
	KeyEscape
	KeyInterrupt // q or Ctrl+C on a terminal
)

// Command is an action applied to the world.
type Command uint8

const (
	Forward Command = iota + 1
	Backward
	RotateLeft
	RotateRight
	Fire
	Quit
)

func (c Command) String() string {
	switch c {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	case RotateLeft:
		return "rotate-left"
	case RotateRight:
		return "rotate-right"
	case Fire:
		return "fire"
	case Quit:
		return "quit"
	default:
		return "unknown"
	}
}

// Map returns the command bound to k.
func Map(k Key) (Command, bool) {
	switch k {
	case KeyUp:
		return Forward, true
	case KeyDown:
		return Backward, true
	case KeyLeft:
		return RotateLeft, true
	case KeyRight:
		return RotateRight, true
	case KeySpace:
		return Fire, true
	case KeyEscape, KeyInterrupt:
		return Quit, true
	}
	return 0, false
}

// Commands maps keys in order, dropping unbound ones.
func Commands(keys []Key) []Command {
	cmds := make([]Command, 0, len(keys))
	for _, k := range keys {
		if c, ok := Map(k); ok {
			cmds = append(cmds, c)
		}
	}
	return cmds
}

// Stream delivers input bytes via a channel.
type Stream struct {
	ch      chan byte
	pending []byte // Incomplete escape sequence carried to the next poll
	closed  bool
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
// The channel is closed when r returns an error, including io.EOF.
func StartStream(r *bufio.Reader) *Stream {
	s := &Stream{
		ch: make(chan byte, 128),
	}
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

// Poll drains all available bytes without blocking and parses them into keys.
// closed reports that the reader has ended; the keys read before that are
// still returned.
func (s *Stream) Poll() (keys []Key, closed bool) {
	buf := s.pending
	s.pending = nil

drain:
	for !s.closed {
		select {
		case b, ok := <-s.ch:
			if !ok {
				s.closed = true
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}

	keys, rest := Parse(buf)
	if len(rest) > 0 {
		if s.closed {
			keys = append(keys, KeyEscape)
		} else {
			s.pending = rest
		}
	}
	return keys, s.closed
}

// Parse converts buf into keys, one per press. Arrow keys arrive as
// ESC [ A..D; a trailing ESC [ without its final byte is returned as rest.
// A lone ESC is the escape key.
func Parse(buf []byte) (keys []Key, rest []byte) {
	for i := 0; i < len(buf); i++ {
		b := buf[i]

		if b == '\x1b' && i+1 < len(buf) && buf[i+1] == '[' {
			if i+2 >= len(buf) {
				return keys, buf[i:]
			}
			switch buf[i+2] {
			case 'A':
				keys = append(keys, KeyUp)
			case 'B':
				keys = append(keys, KeyDown)
			case 'C':
				keys = append(keys, KeyRight)
			case 'D':
				keys = append(keys, KeyLeft)
			}
			i += 2
			continue
		}

		if k, ok := byteKey(b); ok {
			keys = append(keys, k)
		}
	}
	return keys, nil
}

func byteKey(b byte) (Key, bool) {
	switch b {
	case 'w', 'W':
		return KeyUp, true
	case 's', 'S':
		return KeyDown, true
	case 'a', 'A':
		return KeyLeft, true
	case 'd', 'D':
		return KeyRight, true
	case ' ':
		return KeySpace, true
	case '\x1b':
		return KeyEscape, true
	case 'q', 'Q', '\x03':
		return KeyInterrupt, true
	}
	return 0, false
}

// Key repeat timing for sources that only report how long a key has been
// held, in update ticks.
const (
	RepeatDelay    = 18
	RepeatInterval = 2
)

// Repeats reports whether a key held for the given number of ticks produces
// a press on this tick: once when first pressed, then at a steady rate after
// RepeatDelay.
func Repeats(held int) bool {
	if held == 1 {
		return true
	}
	return held >= RepeatDelay && (held-RepeatDelay)%RepeatInterval == 0
}
