package minfree

import "fmt"

// Window is the contiguous integer range [Start, Start+Length) known to
// still contain the answer at a given step of the search.
type Window struct {
	Start  uint64
	Length uint64
}

func (w Window) End() uint64 {
	return w.Start + w.Length
}

// Pivot returns the value used to split the window: always strictly greater
// than Start and at most End(), splitting the window roughly in half.
func (w Window) Pivot() uint64 {
	return w.Start + 1 + w.Length/2
}

func (w Window) String() string {
	return fmt.Sprintf("[%d, %d)", w.Start, w.End())
}
