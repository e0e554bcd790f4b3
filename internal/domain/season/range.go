package season

import (
	"errors"
	"fmt"
)

// Seasons covered by the dataset. A season is named by the year it starts.
const (
	DefaultStart = 2014
	DefaultEnd   = 2020
)

var ErrInvalidRange = errors.New("invalid season range")

// Range is an inclusive span of seasons.
type Range struct {
	Start int
	End   int
}

func DefaultRange() Range {
	return Range{Start: DefaultStart, End: DefaultEnd}
}

// Single returns the range covering exactly one season.
func Single(year int) Range {
	return Range{Start: year, End: year}
}

// Resolve fills the missing bounds from the default range. An explicit
// single season wins over both bounds. A defaulted bound never crosses the
// given one, so start=2021 alone resolves to 2021-2021.
func Resolve(start, end, single *int) Range {
	if single != nil {
		return Single(*single)
	}

	out := DefaultRange()
	if start != nil {
		out.Start = *start
	}
	if end != nil {
		out.End = *end
	}
	switch {
	case start != nil && end == nil && out.End < out.Start:
		out.End = out.Start
	case end != nil && start == nil && out.Start > out.End:
		out.Start = out.End
	}
	return out
}

func (r Range) Validate() error {
	if r.Start > r.End {
		return fmt.Errorf("%w: start season %d is after end season %d", ErrInvalidRange, r.Start, r.End)
	}
	return nil
}

func (r Range) Contains(year int) bool {
	return year >= r.Start && year <= r.End
}

func (r Range) String() string {
	return fmt.Sprintf("%d-%d", r.Start, r.End)
}
