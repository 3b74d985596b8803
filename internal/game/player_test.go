package game

import (
	"testing"

	"github.com/lox/pokerarena/internal/deck"
	"github.com/stretchr/testify/assert"
)

func sampleHand() [2]deck.Card {
	return [2]deck.Card{deck.NewCard(deck.Ace, deck.Spades), deck.NewCard(deck.King, deck.Spades)}
}

func TestNewPlayerStartsFoldedWithStartingMoney(t *testing.T) {
	p := NewPlayer(3)
	assert.Equal(t, Folded, p.State())
	assert.False(t, p.IsActive())
	assert.EqualValues(t, StartingMoney, p.TotalMoney())
	assert.True(t, p.IsAlive())
}

func TestDealMakesPlayerActiveWithZeroBet(t *testing.T) {
	p := NewPlayer(0)
	p.Deal(sampleHand())
	assert.True(t, p.IsActive())
	assert.EqualValues(t, 0, p.CurrentBet())
	assert.False(t, p.HasHadTurn())
}

func TestDealOnDeadPlayerPanics(t *testing.T) {
	p := NewPlayer(0)
	p.Deal(sampleHand())
	p.markDead(5)
	assert.Panics(t, func() { p.Deal(sampleHand()) })
}

func TestFoldOnNonActivePlayerPanics(t *testing.T) {
	p := NewPlayer(0)
	assert.Panics(t, func() { p.Fold() })
}

func TestBetClampsToStack(t *testing.T) {
	p := NewPlayer(0)
	p.Deal(sampleHand())
	paid := p.Bet(StartingMoney + 100)
	assert.EqualValues(t, StartingMoney, paid)
	assert.EqualValues(t, 0, p.TotalMoney())
	assert.EqualValues(t, StartingMoney, p.CurrentBet())
}

func TestBetAccumulatesAcrossCalls(t *testing.T) {
	p := NewPlayer(0)
	p.Deal(sampleHand())
	p.Bet(10)
	p.Bet(15)
	assert.EqualValues(t, 25, p.CurrentBet())
	assert.EqualValues(t, StartingMoney-25, p.TotalMoney())
}

func TestFoldedPlayerReportsZeroCurrentBet(t *testing.T) {
	p := NewPlayer(0)
	p.Deal(sampleHand())
	p.Bet(10)
	p.Fold()
	assert.EqualValues(t, 0, p.CurrentBet())
}

func TestViewNeverCarriesHoleCards(t *testing.T) {
	p := NewPlayer(2)
	p.Deal(sampleHand())
	p.Bet(7)
	v := p.View()
	assert.Equal(t, int8(2), v.ID)
	assert.Equal(t, "active", v.PlayerState.StateType)
	assert.EqualValues(t, 7, v.PlayerState.Details.Bet)
}

func TestCompareOrdersAliveOverDead(t *testing.T) {
	alive := NewPlayer(0)
	dead := NewPlayer(1)
	dead.markDead(3)
	assert.Equal(t, 1, alive.Compare(dead))
	assert.Equal(t, -1, dead.Compare(alive))
}

func TestCompareOrdersDeadByLaterDeathHandNumber(t *testing.T) {
	diedEarly := NewPlayer(0)
	diedEarly.markDead(2)
	diedLate := NewPlayer(1)
	diedLate.markDead(9)
	assert.Equal(t, 1, diedLate.Compare(diedEarly))
	assert.Equal(t, -1, diedEarly.Compare(diedLate))
}

func TestCompareOrdersAliveByTotalMoney(t *testing.T) {
	richer := NewPlayer(0)
	richer.Deal(sampleHand())
	poorer := NewPlayer(1)
	poorer.Deal(sampleHand())
	poorer.Bet(100)
	assert.Equal(t, 1, richer.Compare(poorer))
}
