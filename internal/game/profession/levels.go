package profession

import (
	"errors"
	"fmt"

	"github.com/cory-johannsen/drdsheet/internal/game/property"
)

var (
	// ErrInvalidIncrement is returned when a level-up picks properties the profession does not allow.
	ErrInvalidIncrement = errors.New("invalid property increment")
	// ErrInvalidLevels is returned when levels are out of sequence or mix professions.
	ErrInvalidLevels = errors.New("invalid profession levels")
)

// Level is a single profession level and the property increments it grants.
type Level struct {
	profession *Profession
	number     int
	increments map[property.Code]int
}

// NewFirstLevel returns level 1 of p: +1 to each primary property.
//
// Precondition: p must be non-nil.
func NewFirstLevel(p *Profession) Level {
	inc := make(map[property.Code]int, len(p.primary))
	for _, c := range p.primary {
		inc[c]++
	}
	return Level{profession: p, number: 1, increments: inc}
}

// NewNextLevel returns level number (>= 2) of p, granting +1 to one primary
// and +1 to one non-primary property.
//
// Postcondition: Returns the Level, or ErrInvalidIncrement / ErrInvalidLevels.
func NewNextLevel(p *Profession, number int, primary, secondary property.Code) (Level, error) {
	if number < 2 {
		return Level{}, fmt.Errorf("%w: next level number must be >= 2, got %d", ErrInvalidLevels, number)
	}
	if !primary.Valid() || !secondary.Valid() {
		return Level{}, fmt.Errorf("%w: %q/%q: %w", ErrInvalidIncrement, primary, secondary, property.ErrUnknownCode)
	}
	if !p.IsPrimary(primary) {
		return Level{}, fmt.Errorf("%w: %s is not a primary property of %s", ErrInvalidIncrement, primary, p.code)
	}
	if p.IsPrimary(secondary) {
		return Level{}, fmt.Errorf("%w: %s is a primary property of %s", ErrInvalidIncrement, secondary, p.code)
	}
	return Level{
		profession: p,
		number:     number,
		increments: map[property.Code]int{primary: 1, secondary: 1},
	}, nil
}

func (l Level) Profession() *Profession { return l.profession }
func (l Level) Number() int             { return l.number }

// Increment returns the increase of code granted by this level.
func (l Level) Increment(code property.Code) int {
	return l.increments[code]
}

// Levels is the full progression of a character: the first level and every
// level after it.
type Levels struct {
	first Level
	next  []Level
}

// NewLevels validates and bundles a progression.
//
// Precondition: first must come from NewFirstLevel.
// Postcondition: Returns Levels whose next levels are numbered 2, 3, ... and share
// the first level's profession, or ErrInvalidLevels.
func NewLevels(first Level, next ...Level) (*Levels, error) {
	if first.profession == nil || first.number != 1 {
		return nil, fmt.Errorf("%w: first level must be level 1 of a profession", ErrInvalidLevels)
	}
	for i, l := range next {
		if l.profession == nil || l.profession.code != first.profession.code {
			return nil, fmt.Errorf("%w: level %d is not a %s level", ErrInvalidLevels, i+2, first.profession.code)
		}
		if l.number != i+2 {
			return nil, fmt.Errorf("%w: expected level %d, got %d", ErrInvalidLevels, i+2, l.number)
		}
	}
	out := make([]Level, len(next))
	copy(out, next)
	return &Levels{first: first, next: out}, nil
}

func (l *Levels) FirstLevel() Level { return l.first }

// NextLevels returns a copy of the levels after the first.
func (l *Levels) NextLevels() []Level {
	out := make([]Level, len(l.next))
	copy(out, l.next)
	return out
}

// CurrentLevel returns the highest level number reached.
func (l *Levels) CurrentLevel() int {
	return 1 + len(l.next)
}

// FirstLevelModifier returns the increase of code granted by the first level.
func (l *Levels) FirstLevelModifier(code property.Code) int {
	return l.first.Increment(code)
}

// NextLevelsModifier returns the summed increase of code over all levels after the first.
func (l *Levels) NextLevelsModifier(code property.Code) int {
	sum := 0
	for _, lvl := range l.next {
		sum += lvl.Increment(code)
	}
	return sum
}

// FirstLevelProfessionCode returns the profession code of the first level.
func (l *Levels) FirstLevelProfessionCode() Code {
	return l.first.profession.code
}
