package properties_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/drdsheet/internal/game/derived"
	"github.com/cory-johannsen/drdsheet/internal/game/fate"
	"github.com/cory-johannsen/drdsheet/internal/game/profession"
	"github.com/cory-johannsen/drdsheet/internal/game/properties"
	mockproperties "github.com/cory-johannsen/drdsheet/internal/game/properties/mock"
	"github.com/cory-johannsen/drdsheet/internal/game/property"
	"github.com/cory-johannsen/drdsheet/internal/game/race"
)

func TestByLevels_HumanFighter(t *testing.T) {
	talents, err := fate.Parse("strength=1,agility=2")
	require.NoError(t, err)
	levels := levelsOf(profession.Fighter, [2]property.Code{property.Agility, property.Will})

	b, err := properties.NewByLevels(
		humanRace("common"), race.Male, talents, levels,
		properties.BodyAdjustments{Age: 22}, testTables(),
	)
	require.NoError(t, err)

	want := derived.BaseProperties{
		Strength:     property.New(property.Strength, 2),
		Agility:      property.New(property.Agility, 4),
		Knack:        property.New(property.Knack, 0),
		Will:         property.New(property.Will, 1),
		Intelligence: property.New(property.Intelligence, 0),
		Charisma:     property.New(property.Charisma, 0),
	}
	if diff := cmp.Diff(want, b.BaseProperties(), cmp.AllowUnexported(property.BaseProperty{})); diff != "" {
		t.Errorf("final base properties mismatch (-want +got):\n%s", diff)
	}

	assert.Equal(t, property.WeightInKg(80), b.WeightInKg())
	assert.Equal(t, property.HeightInCm(180), b.HeightInCm())
	assert.Equal(t, property.Height(5), b.Height())
	assert.Equal(t, property.Size(1), b.Size())
	assert.Equal(t, property.Age(22), b.Age())

	assert.Equal(t, derived.Toughness(2), b.Toughness())
	assert.Equal(t, derived.Endurance(2), b.Endurance())
	assert.Equal(t, derived.Speed(3), b.Speed())
	assert.Equal(t, derived.Senses(0), b.Senses())
	assert.Equal(t, derived.Beauty(2), b.Beauty())
	assert.Equal(t, derived.Dangerousness(2), b.Dangerousness())
	assert.Equal(t, derived.Dignity(1), b.Dignity())
	assert.Equal(t, derived.FightNumber(3), b.FightNumber())
	assert.Equal(t, derived.Attack(2), b.Attack())
	assert.Equal(t, derived.Shooting(0), b.Shooting())
	assert.Equal(t, derived.DefenseNumber(2), b.DefenseNumber())
	assert.Equal(t, derived.DefenseAgainstShooting(2), b.DefenseAgainstShooting())
	assert.Equal(t, derived.WoundBoundary(4), b.WoundBoundary())
	assert.Equal(t, derived.FatigueBoundary(4), b.FatigueBoundary())
}

func TestByLevels_Breakdown(t *testing.T) {
	talents, err := fate.Parse("agility=2,knack=9")
	require.NoError(t, err)
	levels := levelsOf(profession.Fighter, [2]property.Code{property.Agility, property.Will})

	b, err := properties.NewByLevels(
		humanRace("common"), race.Male, talents, levels,
		properties.BodyAdjustments{}, testTables(),
	)
	require.NoError(t, err)

	rows := b.Breakdown()
	require.Len(t, rows, len(property.BaseCodes()))
	assert.Equal(t, properties.Breakdown{
		Code: property.Agility, Unlimited: 3, FirstLevel: 3, Loss: 0, NextLevels: 1, Final: 4,
	}, rows[1])
	assert.Equal(t, properties.Breakdown{
		Code: property.Knack, Unlimited: 9, FirstLevel: 3, Loss: 6, NextLevels: 0, Final: 3,
	}, rows[2])

	for i, code := range property.BaseCodes() {
		row := rows[i]
		assert.Equal(t, code, row.Code)
		final, err := b.Property(code)
		require.NoError(t, err)
		assert.Equal(t, final.Value(), row.Final, code)
		loss, err := b.FirstLevel().LossBecauseOfLimit(code)
		require.NoError(t, err)
		assert.Equal(t, loss, row.Loss, code)
	}
}

func TestByLevels_PropagatesTooLowStrengthAdjustment(t *testing.T) {
	b, err := properties.NewByLevels(
		stubRace{}, race.Male, stubTalents{property.Strength: -3}, stubLevels{},
		properties.BodyAdjustments{}, testTables(),
	)
	assert.Nil(t, b)
	tooLow, ok := err.(*properties.TooLowStrengthAdjustment)
	require.True(t, ok, "error must be returned unwrapped, got %T", err)
	assert.Equal(t, -3, tooLow.Adjustment)
}

func TestByLevels_UnknownCodeFails(t *testing.T) {
	b, err := properties.NewByLevels(
		humanRace("common"), race.Male, fate.Properties{}, levelsOf(profession.Commoner),
		properties.BodyAdjustments{}, testTables(),
	)
	require.NoError(t, err)
	_, err = b.Property("luck")
	assert.True(t, errors.Is(err, property.ErrUnknownCode))
	_, err = b.NextLevels().Property("luck")
	assert.True(t, errors.Is(err, property.ErrUnknownCode))
}

func TestByLevels_CollaboratorsAskedOncePerCode(t *testing.T) {
	ctrl := gomock.NewController(t)
	tbl := testTables()

	r := mockproperties.NewMockRace(ctrl)
	talents := mockproperties.NewMockTalents(ctrl)
	levels := mockproperties.NewMockProfessionLevels(ctrl)

	for _, code := range property.BaseCodes() {
		r.EXPECT().BaseProperty(code, race.Female, tbl).Return(1).Times(1)
		talents.EXPECT().Property(code).Return(0).Times(1)
		levels.EXPECT().FirstLevelModifier(code).Return(1).Times(1)
		levels.EXPECT().NextLevelsModifier(code).Return(2).Times(1)
	}
	talents.EXPECT().Strength().Return(0).Times(1)
	r.EXPECT().WeightInKg(race.Female, tbl).Return(property.WeightInKg(60)).Times(1)
	r.EXPECT().HeightInCm(tbl).Return(property.HeightInCm(160)).Times(1)
	r.EXPECT().Size(race.Female, tbl).Return(property.Size(-1)).Times(1)
	r.EXPECT().Senses(tbl).Return(1).Times(1)
	r.EXPECT().RaceCode().Return(race.Code("human")).Times(1)
	r.EXPECT().SubraceCode().Return(race.SubraceCode("common")).Times(1)
	levels.EXPECT().FirstLevelProfessionCode().Return(profession.Priest).Times(1)

	b, err := properties.NewByLevels(r, race.Female, talents, levels, properties.BodyAdjustments{Age: 40}, tbl)
	require.NoError(t, err)
	for _, code := range property.BaseCodes() {
		p, err := b.Property(code)
		require.NoError(t, err)
		assert.Equal(t, property.New(code, 4), p)
	}
	assert.Equal(t, property.Size(-1), b.Size())
	assert.Equal(t, derived.Senses(5), b.Senses())
}

// Property: final = first level limited + next levels for every code.
func TestByLevels_FinalIsFirstPlusNext(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		raceValues := make(map[property.Code]int)
		talents := stubTalents{}
		first := make(map[property.Code]int)
		next := make(map[property.Code]int)
		for _, code := range property.BaseCodes() {
			raceValues[code] = rapid.IntRange(-4, 4).Draw(rt, "race_"+string(code))
			talents[code] = rapid.IntRange(0, 8).Draw(rt, "talent_"+string(code))
			first[code] = rapid.IntRange(0, 3).Draw(rt, "first_"+string(code))
			next[code] = rapid.IntRange(0, 20).Draw(rt, "next_"+string(code))
		}
		code := rapid.SampledFrom(profession.Codes()).Draw(rt, "profession")

		b, err := properties.NewByLevels(
			stubRace{values: raceValues, weightInKg: 70, heightInCm: 170},
			race.Male, talents, stubLevels{first: first, next: next, code: code},
			properties.BodyAdjustments{}, testTables(),
		)
		if err != nil {
			rt.Fatalf("unexpected error: %v", err)
		}
		for _, c := range property.BaseCodes() {
			limited, _ := b.FirstLevel().Property(c)
			nextValue, _ := b.NextLevels().Property(c)
			final, _ := b.Property(c)
			if nextValue != property.New(c, next[c]) {
				rt.Fatalf("%s next levels = %v, want %d", c, nextValue, next[c])
			}
			if final != property.New(c, limited.Value()+nextValue.Value()) {
				rt.Fatalf("%s final = %v, want %v + %v", c, final, limited, nextValue)
			}
		}
	})
}

// Property: boundaries depend on toughness and endurance only, never on body adjustments.
func TestByLevels_BoundariesIgnoreBodyAdjustments(t *testing.T) {
	talents, err := fate.Parse("strength=2,will=1")
	require.NoError(t, err)
	levels := levelsOf(profession.Fighter, [2]property.Code{property.Strength, property.Will})
	build := func(body properties.BodyAdjustments) *properties.ByLevels {
		b, err := properties.NewByLevels(humanRace("highlander"), race.Male, talents, levels, body, testTables())
		require.NoError(t, err)
		return b
	}
	reference := build(properties.BodyAdjustments{})

	rapid.Check(t, func(rt *rapid.T) {
		body := properties.BodyAdjustments{
			WeightInKg: property.WeightInKg(rapid.Float64Range(-40, 120).Draw(rt, "weight")),
			HeightInCm: property.HeightInCm(rapid.Float64Range(-100, 100).Draw(rt, "height")),
			Age:        property.Age(rapid.IntRange(0, 500).Draw(rt, "age")),
		}
		b := build(body)
		if b.WoundBoundary() != reference.WoundBoundary() {
			rt.Fatalf("wound boundary %d, want %d", b.WoundBoundary(), reference.WoundBoundary())
		}
		if b.FatigueBoundary() != reference.FatigueBoundary() {
			rt.Fatalf("fatigue boundary %d, want %d", b.FatigueBoundary(), reference.FatigueBoundary())
		}
	})
}
