package properties_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cory-johannsen/drdsheet/internal/game/profession"
	"github.com/cory-johannsen/drdsheet/internal/game/properties"
	"github.com/cory-johannsen/drdsheet/internal/game/property"
)

func TestNextLevels_SumsIncrements(t *testing.T) {
	next := properties.NewNextLevels(levelsOf(profession.Fighter,
		[2]property.Code{property.Agility, property.Will},
		[2]property.Code{property.Agility, property.Knack},
	))

	assert.Equal(t, property.New(property.Agility, 2), next.Agility())
	assert.Equal(t, property.New(property.Will, 1), next.Will())
	assert.Equal(t, property.New(property.Knack, 1), next.Knack())
	assert.Equal(t, property.New(property.Strength, 0), next.Strength())
	assert.Equal(t, property.New(property.Intelligence, 0), next.Intelligence())
	assert.Equal(t, property.New(property.Charisma, 0), next.Charisma())
}

func TestNextLevels_FirstLevelOnlyIsZero(t *testing.T) {
	next := properties.NewNextLevels(levelsOf(profession.Commoner))
	for _, code := range property.BaseCodes() {
		v, err := next.Property(code)
		require.NoError(t, err)
		assert.Equal(t, 0, v.Value(), code)
	}
}

func TestNextLevels_UnknownCode(t *testing.T) {
	next := properties.NewNextLevels(stubLevels{})
	_, err := next.Property("luck")
	assert.ErrorIs(t, err, property.ErrUnknownCode)
}
