package dataset

import (
	"math/rand"
)

// Difficulty tokens used by the synthetic generator, weighted toward the
// low end the way real survey exports skew.
var mockLevels = []struct {
	token  string
	weight int
}{
	{"not", 55},
	{"little", 20},
	{"moderate", 12},
	{"very", 8},
	{"extreme", 5},
}

// Presumed blocking reasons used for synthetic nonvoters.
var mockReasons = []string{
	"apathy",
	"registration",
	"id requirements",
	"transportation",
	"work conflict",
}

// MockRespondentRecords generates n synthetic survey records with a fixed
// seed, so repeated runs produce identical datasets. The mix deliberately
// includes rows the loader drops: missing parties, unknown parties, and
// untrimmed or mixed-case tokens.
func MockRespondentRecords(n int) []RespondentRecord {
	rng := rand.New(rand.NewSource(42))
	strPtr := func(s string) *string { return &s }

	records := make([]RespondentRecord, 0, n)
	for i := 0; i < n; i++ {
		rec := RespondentRecord{}

		switch roll := rng.Intn(100); {
		case roll < 44:
			rec.Party = strPtr("democrat")
		case roll < 88:
			rec.Party = strPtr("republican")
		case roll < 92:
			rec.Party = strPtr(" Republican ") // normalized on load
		case roll < 96:
			rec.Party = strPtr("independent") // unknown, dropped on load
		default:
			// missing party, dropped on load
		}

		// About one row in eight is a nonvoter carrying a reason instead
		// of a difficulty level.
		if rng.Intn(8) == 0 {
			rec.PresumedReason = strPtr(mockReasons[rng.Intn(len(mockReasons))])
		} else {
			rec.VotingDifficulty = strPtr(pickLevel(rng))
		}

		records = append(records, rec)
	}
	return records
}

// pickLevel draws a difficulty token from the weighted distribution.
func pickLevel(rng *rand.Rand) string {
	total := 0
	for _, l := range mockLevels {
		total += l.weight
	}
	roll := rng.Intn(total)
	for _, l := range mockLevels {
		if roll < l.weight {
			return l.token
		}
		roll -= l.weight
	}
	return mockLevels[0].token
}
