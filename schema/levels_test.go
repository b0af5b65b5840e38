package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		input   string
		want    DifficultyLevel
		wantErr bool
	}{
		{"not", NotDifficult, false},
		{"little", LittleDifficult, false},
		{"moderate", ModeratelyDifficult, false},
		{"very", VeryDifficult, false},
		{"extreme", ExtremelyDifficult, false},
		{"", 0, true},
		{"severe", 0, true},    // unknown token
		{"Moderate", 0, true},  // case-sensitive; callers lowercase first
		{" little ", 0, true},  // no trimming here either
		{"moderately", 0, true}, // partial tokens are not accepted
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDifficulty(tt.input)
			if tt.wantErr {
				assert.Error(t, err, "ParseDifficulty(%q) should fail", tt.input)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDifficultyOrdering(t *testing.T) {
	// The five levels form a strict total order.
	assert.True(t, NotDifficult.Less(LittleDifficult))
	assert.True(t, LittleDifficult.Less(ModeratelyDifficult))
	assert.True(t, ModeratelyDifficult.Less(VeryDifficult))
	assert.True(t, VeryDifficult.Less(ExtremelyDifficult))

	// Irreflexive and asymmetric.
	assert.False(t, ModeratelyDifficult.Less(ModeratelyDifficult))
	assert.False(t, ExtremelyDifficult.Less(NotDifficult))

	// Bounds line up with the enumeration.
	assert.Equal(t, NotDifficult, MinDifficulty)
	assert.Equal(t, ExtremelyDifficult, MaxDifficulty)
	assert.Len(t, AllDifficultyLevels, 5)
}

func TestDifficultyStringRoundTrip(t *testing.T) {
	for _, level := range AllDifficultyLevels {
		parsed, err := ParseDifficulty(level.String())
		require.NoError(t, err, "level %d should round-trip through its token", level)
		assert.Equal(t, level, parsed)
	}
}

func TestDifficultyTextMarshaling(t *testing.T) {
	data, err := VeryDifficult.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "very", string(data))

	var level DifficultyLevel
	require.NoError(t, level.UnmarshalText([]byte("extreme")))
	assert.Equal(t, ExtremelyDifficult, level)

	assert.Error(t, level.UnmarshalText([]byte("bogus")))
}

func TestDifficultyValid(t *testing.T) {
	for _, level := range AllDifficultyLevels {
		assert.True(t, level.Valid())
	}
	assert.False(t, DifficultyLevel(-1).Valid())
	assert.False(t, DifficultyLevel(5).Valid())
}
