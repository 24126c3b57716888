package models

import (
	"strconv"
	"sync/atomic"
)

// EntityID identifies an entity for the whole life of the process.
type EntityID uint64

func (id EntityID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

// Sequence issues monotonic entity identifiers. The zero value is ready to use
// and the first identifier it hands out is 1.
type Sequence struct {
	last atomic.Uint64
}

func NewSequence() *Sequence {
	return &Sequence{}
}

// Next returns a fresh identifier. Safe for concurrent use.
func (s *Sequence) Next() EntityID {
	return EntityID(s.last.Add(1))
}

// Current returns the last identifier issued, or 0 if none was.
func (s *Sequence) Current() EntityID {
	return EntityID(s.last.Load())
}
