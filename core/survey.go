// Package core has the aggregation logic for voter-survey data.
package core

import (
	"sort"

	"github.com/huangsam/votetab/internal/contract"
	"github.com/huangsam/votetab/schema"
)

// DropMissingDifficulty returns the rows that carry a reported difficulty
// level. The aggregation denominators must reflect only these rows, so this
// filter always runs before NormalizedFrequencies.
func DropMissingDifficulty(rows []schema.Respondent) []schema.Respondent {
	kept := make([]schema.Respondent, 0, len(rows))
	for _, r := range rows {
		if r.HasDifficulty() {
			kept = append(kept, r)
		}
	}
	return kept
}

// NormalizedFrequencies partitions rows by (party, difficulty level), counts
// each partition, and normalizes counts within each party so that every
// party's frequencies sum to 1.0. Rows without a reported difficulty are
// excluded before aggregation. Pairs with zero observations are absent from
// the output rather than emitted with count 0.
//
// The result is ordered by party (enumeration order), then by level rank.
func NormalizedFrequencies(rows []schema.Respondent) []schema.FrequencyRow {
	observed := DropMissingDifficulty(rows)

	// 1. Count each (party, level) partition.
	type pair struct {
		party schema.Party
		level schema.DifficultyLevel
	}
	counts := make(map[pair]int)
	totals := make(map[schema.Party]int)
	for _, r := range observed {
		counts[pair{r.Party, *r.Difficulty}]++
		totals[r.Party]++
	}

	// 2. Normalize within party. A party with zero observed rows has no
	// partitions, so division by zero cannot occur.
	result := make([]schema.FrequencyRow, 0, len(counts))
	for p, count := range counts {
		result = append(result, schema.FrequencyRow{
			Party: p.party,
			Level: p.level,
			Count: count,
			Freq:  float64(count) / float64(totals[p.party]),
		})
	}

	// 3. Deterministic output order.
	sort.Slice(result, func(i, j int) bool {
		if result[i].Party != result[j].Party {
			return result[i].Party < result[j].Party
		}
		return result[i].Level.Less(result[j].Level)
	})

	return result
}

// FilterAboveLevel retains only the rows whose value in the given column
// ranks strictly above floor in the column's total order. Rows without a
// reported value cannot be compared and are dropped.
//
// Applying this to an unordered categorical is a contract violation and
// fails with UnorderedComparisonError.
func FilterAboveLevel(rows []schema.Respondent, col schema.Column, floor schema.DifficultyLevel) ([]schema.Respondent, error) {
	if !col.Ordered {
		return nil, contract.NewUnorderedComparisonError(col.Name)
	}

	kept := make([]schema.Respondent, 0, len(rows))
	for _, r := range rows {
		if r.HasDifficulty() && floor.Less(*r.Difficulty) {
			kept = append(kept, r)
		}
	}
	return kept, nil
}

// Tabulate produces one-dimensional value counts for a categorical column,
// with each value's share of the column total. Rows with a missing value in
// the column are excluded from both counts and the share denominator.
//
// Ordered columns come back in rank order; unordered columns come back by
// count descending, ties broken by value.
func Tabulate(rows []schema.Respondent, col schema.Column) []schema.TabulationRow {
	counts := make(map[string]int)
	total := 0
	for _, r := range rows {
		value, ok := columnValue(r, col.Name)
		if !ok {
			continue
		}
		counts[value]++
		total++
	}

	result := make([]schema.TabulationRow, 0, len(counts))
	for value, count := range counts {
		result = append(result, schema.TabulationRow{
			Value: value,
			Count: count,
			Share: float64(count) / float64(total),
		})
	}

	if col.Ordered {
		sort.Slice(result, func(i, j int) bool {
			li, _ := schema.ParseDifficulty(result[i].Value)
			lj, _ := schema.ParseDifficulty(result[j].Value)
			return li.Less(lj)
		})
	} else {
		sort.Slice(result, func(i, j int) bool {
			if result[i].Count != result[j].Count {
				return result[i].Count > result[j].Count
			}
			return result[i].Value < result[j].Value
		})
	}

	return result
}

// CrossTab produces the raw party-by-difficulty contingency table, ordered
// by party then level rank. Rows without a reported difficulty are excluded.
func CrossTab(rows []schema.Respondent) []schema.CrossTabRow {
	type pair struct {
		party schema.Party
		level schema.DifficultyLevel
	}
	counts := make(map[pair]int)
	for _, r := range DropMissingDifficulty(rows) {
		counts[pair{r.Party, *r.Difficulty}]++
	}

	result := make([]schema.CrossTabRow, 0, len(counts))
	for p, count := range counts {
		result = append(result, schema.CrossTabRow{Party: p.party, Level: p.level, Count: count})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Party != result[j].Party {
			return result[i].Party < result[j].Party
		}
		return result[i].Level.Less(result[j].Level)
	})
	return result
}

// NonvoterReasons tabulates the presumed blocking reason across respondents
// who did not vote. Voters carry no reason and fall out of the denominator.
func NonvoterReasons(rows []schema.Respondent) []schema.TabulationRow {
	return Tabulate(rows, schema.ReasonCol)
}

// columnValue extracts the value of a categorical column from a respondent.
// The second return value is false when the value is missing.
func columnValue(r schema.Respondent, name schema.ColumnName) (string, bool) {
	switch name {
	case schema.PartyColumn:
		return string(r.Party), r.Party != ""
	case schema.DifficultyColumn:
		if !r.HasDifficulty() {
			return "", false
		}
		return r.Difficulty.String(), true
	case schema.ReasonColumn:
		return r.Reason, r.Reason != ""
	default:
		return "", false
	}
}
