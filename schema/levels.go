package schema

import "fmt"

// DifficultyLevel is the ordered categorical for reported voting difficulty.
// The integer rank carries the total order, so comparisons never rely on
// string ordering.
type DifficultyLevel int

// All difficulty levels, from least to most difficult.
const (
	NotDifficult DifficultyLevel = iota
	LittleDifficult
	ModeratelyDifficult
	VeryDifficult
	ExtremelyDifficult
)

// difficultyNames maps each level to its canonical token in the dataset.
var difficultyNames = map[DifficultyLevel]string{
	NotDifficult:        "not",
	LittleDifficult:     "little",
	ModeratelyDifficult: "moderate",
	VeryDifficult:       "very",
	ExtremelyDifficult:  "extreme",
}

// difficultyByName is the reverse lookup for parsing.
var difficultyByName = func() map[string]DifficultyLevel {
	m := make(map[string]DifficultyLevel, len(difficultyNames))
	for level, name := range difficultyNames {
		m[name] = level
	}
	return m
}()

// AllDifficultyLevels returns the fixed level enumeration in rank order.
var AllDifficultyLevels = []DifficultyLevel{
	NotDifficult,
	LittleDifficult,
	ModeratelyDifficult,
	VeryDifficult,
	ExtremelyDifficult,
}

// MinDifficulty and MaxDifficulty bound the total order.
const (
	MinDifficulty = NotDifficult
	MaxDifficulty = ExtremelyDifficult
)

// String returns the canonical dataset token for the level.
func (d DifficultyLevel) String() string {
	if name, ok := difficultyNames[d]; ok {
		return name
	}
	return fmt.Sprintf("difficulty(%d)", int(d))
}

// Valid reports whether the level is one of the enumerated values.
func (d DifficultyLevel) Valid() bool {
	_, ok := difficultyNames[d]
	return ok
}

// Less reports whether d ranks strictly below other in the total order.
func (d DifficultyLevel) Less(other DifficultyLevel) bool {
	return d < other
}

// MarshalText implements encoding.TextMarshaler for JSON output.
func (d DifficultyLevel) MarshalText() ([]byte, error) {
	if !d.Valid() {
		return nil, fmt.Errorf("invalid difficulty level %d", int(d))
	}
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *DifficultyLevel) UnmarshalText(text []byte) error {
	level, err := ParseDifficulty(string(text))
	if err != nil {
		return err
	}
	*d = level
	return nil
}

// ParseDifficulty converts a dataset token into a DifficultyLevel.
func ParseDifficulty(s string) (DifficultyLevel, error) {
	if level, ok := difficultyByName[s]; ok {
		return level, nil
	}
	return 0, fmt.Errorf("unknown difficulty level %q. must be not, little, moderate, very, extreme", s)
}
