package dice_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/drdsheet/internal/game/dice"
)

type fixedSource struct {
	vals []int
	idx  int
}

func (f *fixedSource) Intn(n int) int {
	v := f.vals[f.idx%len(f.vals)] % n
	f.idx++
	return v
}

func TestParse(t *testing.T) {
	tests := []struct {
		in    string
		count int
		sides int
		mod   int
	}{
		{"d6", 1, 6, 0},
		{"1d3", 1, 3, 0},
		{"2d6+1", 2, 6, 1},
		{"1d3-1", 1, 3, -1},
		{" 3D10 ", 3, 10, 0},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			e, err := dice.Parse(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.count, e.Count)
			assert.Equal(t, tc.sides, e.Sides)
			assert.Equal(t, tc.mod, e.Modifier)
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	for _, in := range []string{"", "6", "d", "0d6", "1d1", "1d6*2", "2d6+", "x1d6"} {
		t.Run(in, func(t *testing.T) {
			_, err := dice.Parse(in)
			assert.Error(t, err)
		})
	}
}

func TestParse_RejectsOverflowAndOversize(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"count overflows int", "99999999999999999999d6"},
		{"sides overflow int", "1d99999999999999999999"},
		{"modifier overflows int", "1d6+99999999999999999999"},
		{"negative modifier overflows int", "1d6-99999999999999999999"},
		{"count above bound", "2000000000d6"},
		{"sides above bound", "1d1001"},
		{"modifier above bound", "1d6+1001"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := dice.Parse(tc.in)
			assert.Error(t, err)
		})
	}
}

func TestParse_AcceptsBounds(t *testing.T) {
	e, err := dice.Parse("100d1000-1000")
	require.NoError(t, err)
	assert.Equal(t, dice.MaxCount, e.Count)
	assert.Equal(t, dice.MaxSides, e.Sides)
	assert.Equal(t, -dice.MaxModifier, e.Modifier)
}

func TestResult_TotalAndString(t *testing.T) {
	r := dice.Result{Expression: "2d6+1", Dice: []int{4, 5}, Modifier: 1}
	assert.Equal(t, 10, r.Total())
	assert.Equal(t, "2d6+1 [4 5] +1 = 10", r.String())
}

func TestRoll_FixedSource(t *testing.T) {
	e, err := dice.Parse("2d6-1")
	require.NoError(t, err)
	r := dice.Roll(e, &fixedSource{vals: []int{3, 0}})
	assert.Equal(t, []int{4, 1}, r.Dice)
	assert.Equal(t, 4, r.Total())
}

func TestSeededSource_Reproducible(t *testing.T) {
	e, err := dice.Parse("5d6")
	require.NoError(t, err)
	a := dice.Roll(e, dice.NewSeededSource(42))
	b := dice.Roll(e, dice.NewSeededSource(42))
	assert.Equal(t, a, b)
}

func TestRoller_LogsRoll(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	roller := dice.NewRoller(&fixedSource{vals: []int{2}}, zap.New(core))

	r, err := roller.RollExpr("1d3")
	require.NoError(t, err)
	assert.Equal(t, 3, r.Total())

	entries := logs.FilterMessage("dice roll").All()
	require.Len(t, entries, 1)
	assert.Equal(t, int64(3), entries[0].ContextMap()["total"])
}

func TestRoller_RollExprInvalid(t *testing.T) {
	roller := dice.NewRoller(dice.NewCryptoSource(), zap.NewNop())
	_, err := roller.RollExpr("banana")
	assert.Error(t, err)
}

func TestNewRoller_Preconditions(t *testing.T) {
	assert.Panics(t, func() { dice.NewRoller(nil, zap.NewNop()) })
	assert.Panics(t, func() { dice.NewRoller(dice.NewCryptoSource(), nil) })
}

func TestCryptoSource_PanicsOnNonPositive(t *testing.T) {
	assert.Panics(t, func() { dice.NewCryptoSource().Intn(0) })
}

func TestProperty_RollWithinBounds(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		count := rapid.IntRange(1, 10).Draw(rt, "count")
		sides := rapid.IntRange(2, 20).Draw(rt, "sides")
		mod := rapid.IntRange(-5, 5).Draw(rt, "mod")
		seed := rapid.Uint64().Draw(rt, "seed")

		e := dice.Expression{Raw: "x", Count: count, Sides: sides, Modifier: mod}
		r := dice.Roll(e, dice.NewSeededSource(seed))
		if len(r.Dice) != count {
			rt.Fatalf("rolled %d dice, want %d", len(r.Dice), count)
		}
		for _, d := range r.Dice {
			if d < 1 || d > sides {
				rt.Fatalf("die %d out of [1, %d]", d, sides)
			}
		}
		if r.Total() < count+mod || r.Total() > count*sides+mod {
			rt.Fatalf("total %d out of range", r.Total())
		}
	})
}
