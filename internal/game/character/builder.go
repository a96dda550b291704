package character

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/cory-johannsen/drdsheet/internal/game/dice"
	"github.com/cory-johannsen/drdsheet/internal/game/fate"
	"github.com/cory-johannsen/drdsheet/internal/game/profession"
	"github.com/cory-johannsen/drdsheet/internal/game/properties"
	"github.com/cory-johannsen/drdsheet/internal/game/property"
	"github.com/cory-johannsen/drdsheet/internal/game/race"
	"github.com/cory-johannsen/drdsheet/internal/game/ruleset"
	"github.com/cory-johannsen/drdsheet/internal/game/tables"
)

// ErrUnknownProfession is returned when a profession has no loaded definition.
var ErrUnknownProfession = errors.New("profession not found in content")

// Request describes a character by names, as typed by a player.
type Request struct {
	Name       string
	Race       string
	Subrace    string
	Gender     string
	Profession string
	// Fate is "strength=1,agility=2"; empty means no talents.
	Fate string
	// FateDice is "strength=1d3-1,agility=1d3"; rolled talents add to Fate.
	FateDice string
	// Levels holds one "primary:secondary" pick per level after the first.
	Levels []string
	Body   properties.BodyAdjustments
}

// Builder resolves requests against the loaded content and builds characters.
type Builder struct {
	tables      *tables.Tables
	professions *ruleset.ProfessionRegistry
	logger      *zap.Logger
	roller      *dice.Roller
}

// Option configures a Builder.
type Option func(*Builder)

// WithDiceSource makes fate dice roll with src instead of crypto/rand.
func WithDiceSource(src dice.Source) Option {
	return func(b *Builder) {
		b.roller = dice.NewRoller(src, b.logger)
	}
}

// NewBuilder creates a Builder.
//
// Precondition: t, professions and logger must be non-nil.
func NewBuilder(t *tables.Tables, professions *ruleset.ProfessionRegistry, logger *zap.Logger, opts ...Option) *Builder {
	if t == nil {
		panic("character.NewBuilder: precondition violated: tables must be non-nil")
	}
	if professions == nil {
		panic("character.NewBuilder: precondition violated: profession registry must be non-nil")
	}
	if logger == nil {
		panic("character.NewBuilder: precondition violated: logger must be non-nil")
	}
	b := &Builder{tables: t, professions: professions, logger: logger}
	for _, opt := range opts {
		opt(b)
	}
	if b.roller == nil {
		b.roller = dice.NewRoller(dice.NewCryptoSource(), logger)
	}
	return b
}

// Build resolves req and builds the character.
//
// Postcondition: Returns the Character, or a non-nil error naming the
// offending part of req. A *properties.TooLowStrengthAdjustment is returned as is.
func (b *Builder) Build(req Request) (*Character, error) {
	gender, err := race.ParseGender(req.Gender)
	if err != nil {
		return nil, err
	}
	r, err := race.New(race.Code(strings.ToLower(req.Race)), race.SubraceCode(strings.ToLower(req.Subrace)), b.tables.RacesTable())
	if err != nil {
		return nil, err
	}
	talents, err := fate.Parse(req.Fate)
	if err != nil {
		return nil, err
	}
	if req.FateDice != "" {
		rolled, err := fate.Roll(req.FateDice, b.roller)
		if err != nil {
			return nil, err
		}
		talents = talents.Add(rolled)
	}
	levels, err := b.levels(req.Profession, req.Levels)
	if err != nil {
		return nil, err
	}
	b.logger.Debug("resolved character request",
		zap.String("name", req.Name),
		zap.Stringer("race", r),
		zap.String("gender", string(gender)),
		zap.Stringer("fate", talents),
		zap.String("profession", string(levels.FirstLevelProfessionCode())),
		zap.Int("level", levels.CurrentLevel()),
	)

	c, err := Build(req.Name, r, gender, talents, levels, req.Body, b.tables)
	if err != nil {
		b.logger.Warn("building character", zap.String("name", req.Name), zap.Error(err))
		return nil, err
	}

	for _, row := range c.Properties.Breakdown() {
		if row.Loss > 0 {
			b.logger.Info("first level property limited",
				zap.String("name", c.Name),
				zap.String("property", string(row.Code)),
				zap.Int("loss", row.Loss),
			)
		}
	}
	b.logger.Info("character built",
		zap.String("name", c.Name),
		zap.String("id", c.ID.String()),
	)
	return c, nil
}

func (b *Builder) levels(name string, picks []string) (*profession.Levels, error) {
	code, err := profession.ParseCode(name)
	if err != nil {
		return nil, err
	}
	def, ok := b.professions.Profession(string(code))
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownProfession, code)
	}
	p, err := profession.New(def)
	if err != nil {
		return nil, err
	}
	next := make([]profession.Level, 0, len(picks))
	for i, pick := range picks {
		primary, secondary, err := parsePick(pick)
		if err != nil {
			return nil, fmt.Errorf("level %d: %w", i+2, err)
		}
		l, err := profession.NewNextLevel(p, i+2, primary, secondary)
		if err != nil {
			return nil, fmt.Errorf("level %d: %w", i+2, err)
		}
		next = append(next, l)
	}
	return profession.NewLevels(profession.NewFirstLevel(p), next...)
}

// parsePick reads "primary:secondary".
func parsePick(s string) (property.Code, property.Code, error) {
	first, second, ok := strings.Cut(s, ":")
	if !ok {
		return "", "", fmt.Errorf("expected primary:secondary, got %q", s)
	}
	primary, err := property.ParseCode(first)
	if err != nil {
		return "", "", err
	}
	secondary, err := property.ParseCode(second)
	if err != nil {
		return "", "", err
	}
	return primary, secondary, nil
}
