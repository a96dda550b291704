package property_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/drdsheet/internal/game/property"
)

func TestBaseCodes_FixedOrder(t *testing.T) {
	assert.Equal(t, []property.Code{
		property.Strength, property.Agility, property.Knack,
		property.Will, property.Intelligence, property.Charisma,
	}, property.BaseCodes())
}

func TestBaseCodes_ReturnsCopy(t *testing.T) {
	codes := property.BaseCodes()
	codes[0] = "mutated"
	assert.Equal(t, property.Strength, property.BaseCodes()[0])
}

func TestParseCode(t *testing.T) {
	c, err := property.ParseCode(" Knack ")
	require.NoError(t, err)
	assert.Equal(t, property.Knack, c)
}

func TestParseCode_UnknownIsError(t *testing.T) {
	_, err := property.ParseCode("luck")
	require.Error(t, err)
	assert.True(t, errors.Is(err, property.ErrUnknownCode))
}

func TestCode_Short(t *testing.T) {
	assert.Equal(t, "SIL", property.Strength.Short())
	assert.Equal(t, "CHR", property.Charisma.Short())
	assert.Equal(t, "<luck>", property.Code("luck").Short())
}

func TestBaseProperty_EqualityByCodeAndValue(t *testing.T) {
	assert.True(t, property.New(property.Will, 2) == property.New(property.Will, 2))
	assert.False(t, property.New(property.Will, 2) == property.New(property.Knack, 2))
	assert.False(t, property.New(property.Will, 2) == property.New(property.Will, 3))
}

func TestBaseProperty_String(t *testing.T) {
	assert.Equal(t, "OBR +3", property.New(property.Agility, 3).String())
	assert.Equal(t, "SIL -1", property.New(property.Strength, -1).String())
}

func TestHeightInCm_Meters(t *testing.T) {
	assert.InDelta(t, 1.8, property.HeightInCm(180).Meters(), 1e-9)
}

// Property: Add never mutates the receiver and keeps the code.
func TestBaseProperty_AddIsPure(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		code := rapid.SampledFrom(property.BaseCodes()).Draw(rt, "code")
		value := rapid.IntRange(-50, 50).Draw(rt, "value")
		delta := rapid.IntRange(-50, 50).Draw(rt, "delta")
		p := property.New(code, value)
		q := p.Add(delta)
		if p.Value() != value {
			rt.Fatalf("receiver mutated: %d != %d", p.Value(), value)
		}
		if q.Code() != code || q.Value() != value+delta {
			rt.Fatalf("Add(%d) on %v produced %v", delta, p, q)
		}
	})
}
