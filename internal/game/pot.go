package game

import (
	"sort"

	"github.com/lox/pokerarena/internal/deck"
	"github.com/lox/pokerarena/internal/evaluator"
)

// rankClasses groups the active players into best-first equivalence
// classes: two players land in the same class iff their best 7-card hand
// (board + hole cards) compares equal under the evaluator.
func rankClasses(board []deck.Card, active []*Player) [][]*Player {
	if len(active) == 0 {
		return nil
	}
	ranked := make([]*Player, len(active))
	copy(ranked, active)

	strength := make(map[int8]evaluator.HandRank, len(ranked))
	for _, p := range ranked {
		hand := p.Hand()
		seven := append(append([]deck.Card{}, board...), hand[0], hand[1])
		strength[p.ID()] = evaluator.Evaluate7(seven)
	}

	sort.Slice(ranked, func(i, j int) bool {
		return strength[ranked[i].ID()] > strength[ranked[j].ID()]
	})

	classes := [][]*Player{{ranked[0]}}
	for _, p := range ranked[1:] {
		last := classes[len(classes)-1]
		if strength[p.ID()] == strength[last[0].ID()] {
			classes[len(classes)-1] = append(last, p)
		} else {
			classes = append(classes, []*Player{p})
		}
	}
	return classes
}

// sortByBetThenSeat orders a showdown class ascending by current bet,
// breaking ties by seat id for determinism (an Open Question in the
// spec, resolved that way here).
func sortByBetThenSeat(players []*Player) {
	sort.Slice(players, func(i, j int) bool {
		a, b := players[i], players[j]
		if a.CurrentBet() != b.CurrentBet() {
			return a.CurrentBet() < b.CurrentBet()
		}
		return a.ID() < b.ID()
	})
}

// betIncrements returns, for a slice of active players already sorted
// ascending by CurrentBet, the per-position increment over the previous
// position's bet — the width of each side-pot tier this class pays into.
func betIncrements(sorted []*Player) []int32 {
	increments := make([]int32, len(sorted))
	var prev int32
	for i, p := range sorted {
		increments[i] = p.CurrentBet() - prev
		prev = p.CurrentBet()
	}
	return increments
}

// payoutClass pays out one equivalence class's side-pot tiers, draining
// playerBets as the single source of truth for unpaid stakes (so
// conservation is obvious by construction) and distributing integer
// remainders one chip at a time to the class's lowest-bet-remaining
// members first, per their sorted position.
func (t *Table) payoutClass(class []*Player) {
	sortByBetThenSeat(class)
	remaining := len(class)
	increments := betIncrements(class)

	for i, increment := range increments {
		if t.potSize() == 0 {
			break
		}
		var total int32
		for seat := range t.playerBets {
			take := increment
			if take > t.playerBets[seat] {
				take = t.playerBets[seat]
			}
			t.playerBets[seat] -= take
			total += take
		}
		winners := int32(remaining)
		share := total / winners
		remainder := total % winners
		for j, winner := range class[i:] {
			payout := share
			if int32(j) < remainder {
				payout++
			}
			winner.totalMoney += payout
		}
		remaining--
	}
}

func (t *Table) potSize() int32 {
	var total int32
	for _, b := range t.playerBets {
		total += b
	}
	return total
}
