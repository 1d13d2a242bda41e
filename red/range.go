package red

import "fmt"

// Range is a half open span [Start, End) of text offsets.
type Range struct {
	Start int
	End   int
}

func (r Range) Len() int { return r.End - r.Start }

// Contains reports whether off lies in r. An empty range contains nothing.
func (r Range) Contains(off int) bool {
	return r.Start <= off && off < r.End
}

// Covers reports whether o lies entirely within r.
func (r Range) Covers(o Range) bool {
	return r.Start <= o.Start && o.End <= r.End
}

func (r Range) String() string {
	return fmt.Sprintf("%d..%d", r.Start, r.End)
}
