// Package schema has models, enums and global variables for all parts of votetab.
package schema

// Respondent represents a single cleaned survey row.
// Party is always populated after cleaning; Difficulty and Reason stay
// optional because most voters never report a blocking reason and some
// never report a difficulty level.
type Respondent struct {
	Party      Party            // Registered party of the respondent
	Difficulty *DifficultyLevel // Reported voting difficulty (nil = not reported)
	Reason     string           // Presumed blocking reason for nonvoters (empty = voted)
}

// HasDifficulty reports whether the respondent reported a difficulty level.
func (r Respondent) HasDifficulty() bool {
	return r.Difficulty != nil
}

// IsNonvoter reports whether the respondent carries a presumed blocking reason.
func (r Respondent) IsNonvoter() bool {
	return r.Reason != ""
}

// FrequencyRow is one row of the party-normalized frequency table:
// the share of a party's respondents that reported a given difficulty level.
type FrequencyRow struct {
	Party Party           `json:"party"`
	Level DifficultyLevel `json:"level"`
	Count int             `json:"count"`
	Freq  float64         `json:"freq"`
}

// TabulationRow is one row of a one-dimensional value count for a
// categorical column, with its share of the column total.
type TabulationRow struct {
	Value string  `json:"value"`
	Count int     `json:"count"`
	Share float64 `json:"share"`
}

// CrossTabRow is one row of the raw party-by-difficulty contingency table.
type CrossTabRow struct {
	Party Party           `json:"party"`
	Level DifficultyLevel `json:"level"`
	Count int             `json:"count"`
}
