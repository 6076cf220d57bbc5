package domain

import (
	"sort"

	"github.com/finleyross14/PeakOrderApp/pkg/money"
)

// LeaderboardGroupBy selects the donation-leaderboard grouping key.
type LeaderboardGroupBy string

const (
	GroupByTeam LeaderboardGroupBy = "team"
	GroupByUser LeaderboardGroupBy = "user"
)

// Valid reports whether the grouping key is supported.
func (g LeaderboardGroupBy) Valid() bool {
	return g == GroupByTeam || g == GroupByUser
}

// LeaderboardRow is one standing in the donation leaderboard.
type LeaderboardRow struct {
	Key        string
	TotalCents money.Cents
	Rank       int
}

const unassignedTeam = "Unassigned"

// DonationLeaderboard groups the confirmed entries' donation totals by team
// or by user and returns standings in descending order. Ties keep first-seen
// order: whichever group's first paid guess appears earlier in the input
// ranks higher.
func DonationLeaderboard(guesses []Guess, groupBy LeaderboardGroupBy) []LeaderboardRow {
	totals := make(map[string]money.Cents)
	var order []string
	for _, g := range guesses {
		if !g.IsPaid {
			continue
		}
		key := groupKey(g, groupBy)
		if _, seen := totals[key]; !seen {
			order = append(order, key)
		}
		totals[key] += g.TotalDonationCents
	}

	rows := make([]LeaderboardRow, 0, len(order))
	for _, key := range order {
		rows = append(rows, LeaderboardRow{Key: key, TotalCents: totals[key]})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].TotalCents > rows[j].TotalCents
	})
	for i := range rows {
		rows[i].Rank = i + 1
	}
	return rows
}

func groupKey(g Guess, groupBy LeaderboardGroupBy) string {
	if groupBy == GroupByUser {
		if g.UserName != "" {
			return g.UserName
		}
		return g.UserID
	}
	if g.Team != "" {
		return g.Team
	}
	return unassignedTeam
}

// RankedGuess pairs a guess with its standing once the final number is known.
type RankedGuess struct {
	Guess Guess
	Rank  int
	Diff  int64
}

// ClosestGuessRanking orders confirmed guesses against the published final
// peak-order number: ascending distance first, then the bigger donor, then
// the earlier submission. The comparator is a strict total order for
// distinct (value, totalDonation, createdAt) tuples, so ranks 2..N are as
// well-defined as the winner.
func ClosestGuessRanking(guesses []Guess, finalPeakOrders int64) []RankedGuess {
	ranked := make([]RankedGuess, 0, len(guesses))
	for _, g := range guesses {
		if !g.IsPaid {
			continue
		}
		ranked = append(ranked, RankedGuess{Guess: g, Diff: absDiff(g.Value, finalPeakOrders)})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if a.Diff != b.Diff {
			return a.Diff < b.Diff
		}
		if a.Guess.TotalDonationCents != b.Guess.TotalDonationCents {
			return a.Guess.TotalDonationCents > b.Guess.TotalDonationCents
		}
		return a.Guess.CreatedAt.Before(b.Guess.CreatedAt)
	})
	for i := range ranked {
		ranked[i].Rank = i + 1
	}
	return ranked
}

// ClosestGuessWinner returns the leading entry, or false when the event has
// no rankable guesses yet.
func ClosestGuessWinner(guesses []Guess, finalPeakOrders int64) (RankedGuess, bool) {
	ranked := ClosestGuessRanking(guesses, finalPeakOrders)
	if len(ranked) == 0 {
		return RankedGuess{}, false
	}
	return ranked[0], true
}

func absDiff(a, b int64) int64 {
	if a > b {
		return a - b
	}
	return b - a
}
