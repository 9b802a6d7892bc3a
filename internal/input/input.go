// Package input turns raw terminal bytes into a per-frame key snapshot.
package input

import (
	"bufio"
	"sync"
	"time"
)

// keyHoldDuration is how long a key is considered "held" after its last byte.
// Terminals send no key-up events, so a held key is one whose auto-repeat keeps arriving.
const keyHoldDuration = 80 * time.Millisecond

// Keys is a set of game keys.
type Keys struct {
	Quit  bool
	Left  bool
	Right bool
	Up    bool
	Down  bool
	Space bool
	Enter bool
}

// Input represents the current frame's input state.
type Input struct {
	Held    Keys   // Keys currently down
	Pressed Keys   // Keys that went down this frame
	Raw     []byte // Bytes received since the last frame
}

// keyState tracks the last time each key was seen.
type keyState struct {
	quit  time.Time
	left  time.Time
	right time.Time
	up    time.Time
	down  time.Time
	space time.Time
	enter time.Time
}

// Stream delivers input bytes via a channel and tracks key state across frames.
type Stream struct {
	ch      chan byte
	done    chan struct{}
	stopped chan struct{} // Closed when the reader goroutine exits
	once    sync.Once

	state   keyState
	prev    Keys
	pending []byte // Unfinished escape sequence from the previous frame
}

func newStream() *Stream {
	return &Stream{
		ch:      make(chan byte, 128),
		done:    make(chan struct{}),
		stopped: make(chan struct{}),
	}
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
// Call Close when the stream is no longer read.
func StartStream(r *bufio.Reader) *Stream {
	s := newStream()
	go func() {
		defer close(s.stopped)
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			select {
			case s.ch <- b:
			case <-s.done:
				return
			}
		}
	}()
	return s
}

// Close stops delivering bytes. The reader goroutine exits on its next byte
// instead of blocking on a full channel. Safe to call more than once.
func (s *Stream) Close() {
	s.once.Do(func() { close(s.done) })
}

// ReadInput drains all available bytes from the stream (non-blocking) and
// returns the snapshot for this frame. A closed stream reports Quit.
func ReadInput(s *Stream) Input {
	var buf []byte
	closed := false

drain:
	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				closed = true
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}

	in := s.apply(buf, time.Now())
	if closed {
		in.Held.Quit = true
		in.Pressed.Quit = true
	}
	return in
}

// Reset forgets all held keys, so nothing carries over into a new game.
func (s *Stream) Reset() {
	s.state = keyState{}
	s.prev = Keys{}
	s.pending = nil
}

// apply parses buf at time now and builds the snapshot.
// An escape sequence cut off at the end of buf is kept and completed by the next call.
func (s *Stream) apply(buf []byte, now time.Time) Input {
	data := buf
	if len(s.pending) > 0 {
		data = append(s.pending, buf...)
		s.pending = nil
	}

	for i := 0; i < len(data); i++ {
		b := data[i]

		// CSI sequence: ESC [ <code>
		if b == '\x1b' {
			if i+1 == len(data) || (data[i+1] == '[' && i+2 == len(data)) {
				s.pending = append([]byte(nil), data[i:]...)
				break
			}
			if data[i+1] != '[' {
				continue
			}
			switch data[i+2] {
			case 'A':
				s.state.up = now
			case 'B':
				s.state.down = now
			case 'C':
				s.state.right = now
			case 'D':
				s.state.left = now
			default:
				// Unknown sequence: drop the introducer, keep the rest.
				i++
				continue
			}
			i += 2
			continue
		}

		applyByteToState(&s.state, b, now)
	}

	held := Keys{
		Quit:  recent(now, s.state.quit),
		Left:  recent(now, s.state.left),
		Right: recent(now, s.state.right),
		Up:    recent(now, s.state.up),
		Down:  recent(now, s.state.down),
		Space: recent(now, s.state.space),
		Enter: recent(now, s.state.enter),
	}

	in := Input{
		Held:    held,
		Pressed: rising(s.prev, held),
		Raw:     buf,
	}
	s.prev = held
	return in
}

func recent(now, last time.Time) bool {
	return !last.IsZero() && now.Sub(last) < keyHoldDuration
}

// rising returns the keys held now that were not held before.
func rising(prev, cur Keys) Keys {
	return Keys{
		Quit:  cur.Quit && !prev.Quit,
		Left:  cur.Left && !prev.Left,
		Right: cur.Right && !prev.Right,
		Up:    cur.Up && !prev.Up,
		Down:  cur.Down && !prev.Down,
		Space: cur.Space && !prev.Space,
		Enter: cur.Enter && !prev.Enter,
	}
}

// applyByteToState updates the key state timestamps based on the pressed byte.
func applyByteToState(state *keyState, b byte, now time.Time) {
	switch b {
	case 'q', 'Q', '\x03':
		state.quit = now
	case 'a', 'A', 'j', 'J':
		state.left = now
	case 'd', 'D', 'l', 'L':
		state.right = now
	case 'w', 'W', 'i', 'I':
		state.up = now
	case 's', 'S', 'k', 'K':
		state.down = now
	case ' ':
		state.space = now
	case '\n', '\r':
		state.enter = now
	}
}
