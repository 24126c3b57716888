package zoo

import (
	"fmt"
	"io"
	"sync"
)

// Sink is the append-only console the animals speak into. The first write
// error sticks: later writes are skipped and Err reports it.
type Sink struct {
	mu  sync.Mutex
	w   io.Writer
	err error
}

func NewSink(w io.Writer) *Sink {
	if w == nil {
		w = io.Discard
	}
	return &Sink{w: w}
}

func (s *Sink) Print(a ...any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return
	}
	_, s.err = fmt.Fprint(s.w, a...)
}

func (s *Sink) Printf(format string, a ...any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return
	}
	_, s.err = fmt.Fprintf(s.w, format, a...)
}

func (s *Sink) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}
