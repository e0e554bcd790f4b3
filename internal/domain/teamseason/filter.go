package teamseason

import (
	"errors"
	"fmt"
)

var ErrInvalidFilter = errors.New("invalid team season filter")

// Bounds is an inclusive, optionally open-ended range on a computed value.
type Bounds struct {
	Low  *float64
	High *float64
}

func (b Bounds) IsZero() bool {
	return b.Low == nil && b.High == nil
}

func (b Bounds) Validate(name string) error {
	if b.Low != nil && b.High != nil && *b.Low > *b.High {
		return fmt.Errorf("%w: %s low %g is above high %g", ErrInvalidFilter, name, *b.Low, *b.High)
	}
	return nil
}

// Page is 1-based. A zero Page disables pagination.
type Page struct {
	Number int
	Size   int
}

func (p Page) Enabled() bool {
	return p.Number > 0
}

func (p Page) Offset() int {
	if !p.Enabled() {
		return 0
	}
	return (p.Number - 1) * p.Size
}

type GoalsFilter struct {
	TeamName      string
	GoalsScored   Bounds
	GoalsConceded Bounds
}

func (f GoalsFilter) Validate() error {
	return errors.Join(f.GoalsScored.Validate("goals_scored"), f.GoalsConceded.Validate("goals_conceded"))
}

type RecordFilter struct {
	TeamName string
	Wins     Bounds
	Losses   Bounds
	Draws    Bounds
}

func (f RecordFilter) Validate() error {
	return errors.Join(f.Wins.Validate("wins"), f.Losses.Validate("losses"), f.Draws.Validate("draws"))
}

type PointsFilter struct {
	TeamName string
	Season   *int
	Points   Bounds
	Page     Page
}

func (f PointsFilter) Validate() error {
	if f.Page.Number < 0 {
		return fmt.Errorf("%w: page must be >= 1", ErrInvalidFilter)
	}
	if f.Page.Enabled() && f.Page.Size < 1 {
		return fmt.Errorf("%w: page_size must be >= 1", ErrInvalidFilter)
	}
	return f.Points.Validate("points")
}

type EfficiencyFilter struct {
	TeamName     string
	GoalsPerShot Bounds
	GoalsPerGame Bounds
}

func (f EfficiencyFilter) Validate() error {
	return errors.Join(f.GoalsPerShot.Validate("goals_per_shot"), f.GoalsPerGame.Validate("goals_per_game"))
}
