package strategy

import (
	"github.com/pkg/errors"

	"github.com/conwaylab/golife/model"
)

// Offset is a pattern cell position relative to the pattern origin.
type Offset struct {
	Row int
	Col int
}

// FixedPattern clears the grid and sets alive exactly the cells at its
// hard-coded offset list, anchored at a configurable origin.
type FixedPattern struct {
	name    string
	offsets []Offset

	// OriginRow and OriginCol anchor the pattern's (0,0) offset.
	OriginRow int
	OriginCol int
}

// NewFixedPattern builds a pattern strategy from an offset list.
func NewFixedPattern(name string, offsets []Offset) FixedPattern {
	return FixedPattern{name: name, offsets: offsets}
}

// Name returns the pattern identifier.
func (p FixedPattern) Name() string { return p.name }

// At returns a copy of the pattern anchored at the given origin.
func (p FixedPattern) At(originRow, originCol int) FixedPattern {
	p.OriginRow, p.OriginCol = originRow, originCol
	return p
}

// Apply clears the grid and stamps the pattern. Fails with OutOfRange
// when the pattern's bounding box does not fit inside the grid at the
// configured origin, leaving the grid unmodified.
func (p FixedPattern) Apply(g *model.Grid) error {
	if len(p.offsets) == 0 {
		return errors.Wrapf(model.ErrInvalidParameter, "[FixedPattern.Apply] pattern %q has no cells", p.name)
	}

	minRow, minCol := p.offsets[0].Row, p.offsets[0].Col
	maxRow, maxCol := minRow, minCol
	for _, off := range p.offsets[1:] {
		minRow = min(minRow, off.Row)
		maxRow = max(maxRow, off.Row)
		minCol = min(minCol, off.Col)
		maxCol = max(maxCol, off.Col)
	}
	if p.OriginRow+minRow < 0 || p.OriginCol+minCol < 0 ||
		p.OriginRow+maxRow >= g.Height() || p.OriginCol+maxCol >= g.Width() {
		return errors.Wrapf(model.ErrOutOfRange,
			"[FixedPattern.Apply] pattern %q bounding box rows [%d,%d] cols [%d,%d] does not fit %dx%d grid",
			p.name, p.OriginRow+minRow, p.OriginRow+maxRow, p.OriginCol+minCol, p.OriginCol+maxCol,
			g.Height(), g.Width())
	}

	if err := (Empty{}).Apply(g); err != nil {
		return err
	}
	for _, off := range p.offsets {
		if err := g.SetCell(p.OriginRow+off.Row, p.OriginCol+off.Col, true); err != nil {
			return err
		}
	}
	return nil
}

// GliderGun returns the Gosper glider gun, the classic pattern that
// periodically emits gliders. The offsets match the original
// construction; the gun needs at least a 10x37 area.
func GliderGun() FixedPattern {
	return NewFixedPattern("glider-gun", []Offset{
		// Left square
		{5, 1}, {5, 2}, {6, 1}, {6, 2},
		// Left part
		{5, 11}, {6, 11}, {7, 11},
		{4, 12}, {8, 12},
		{3, 13}, {9, 13}, {3, 14}, {9, 14},
		{6, 15},
		{4, 16}, {8, 16},
		{5, 17}, {6, 17}, {7, 17},
		{6, 18},
		// Right part
		{3, 21}, {4, 21}, {5, 21},
		{3, 22}, {4, 22}, {5, 22},
		{2, 23}, {6, 23},
		{1, 25}, {2, 25}, {6, 25}, {7, 25},
		// Right square
		{3, 35}, {4, 35}, {3, 36}, {4, 36},
	})
}

// Glider returns the smallest traveling pattern.
func Glider() FixedPattern {
	return NewFixedPattern("glider", []Offset{
		{0, 1},
		{1, 2},
		{2, 0}, {2, 1}, {2, 2},
	})
}

// Blinker returns the period-2 row oscillator.
func Blinker() FixedPattern {
	return NewFixedPattern("blinker", []Offset{
		{0, 0}, {0, 1}, {0, 2},
	})
}

// Block returns the 2x2 still life.
func Block() FixedPattern {
	return NewFixedPattern("block", []Offset{
		{0, 0}, {0, 1},
		{1, 0}, {1, 1},
	})
}
