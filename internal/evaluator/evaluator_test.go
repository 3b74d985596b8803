package evaluator

import (
	"testing"

	"github.com/lox/pokerarena/internal/deck"
	"github.com/stretchr/testify/assert"
)

func TestEvaluate7Categories(t *testing.T) {
	royal := []deck.Card{
		deck.NewCard(deck.Ace, deck.Spades), deck.NewCard(deck.King, deck.Spades),
		deck.NewCard(deck.Queen, deck.Spades), deck.NewCard(deck.Jack, deck.Spades),
		deck.NewCard(deck.Ten, deck.Spades), deck.NewCard(deck.Two, deck.Hearts),
		deck.NewCard(deck.Three, deck.Clubs),
	}
	assert.Equal(t, "Royal Flush", Evaluate7(royal).String())

	quads := []deck.Card{
		deck.NewCard(deck.Nine, deck.Spades), deck.NewCard(deck.Nine, deck.Hearts),
		deck.NewCard(deck.Nine, deck.Diamonds), deck.NewCard(deck.Nine, deck.Clubs),
		deck.NewCard(deck.Two, deck.Hearts), deck.NewCard(deck.Three, deck.Clubs),
		deck.NewCard(deck.Four, deck.Clubs),
	}
	assert.Equal(t, "Four of a Kind", Evaluate7(quads).String())

	highCard := []deck.Card{
		deck.NewCard(deck.Ace, deck.Spades), deck.NewCard(deck.King, deck.Hearts),
		deck.NewCard(deck.Nine, deck.Diamonds), deck.NewCard(deck.Seven, deck.Clubs),
		deck.NewCard(deck.Five, deck.Hearts), deck.NewCard(deck.Three, deck.Clubs),
		deck.NewCard(deck.Two, deck.Diamonds),
	}
	assert.Equal(t, "High Card", Evaluate7(highCard).String())
}

func TestEvaluate7HigherIsStronger(t *testing.T) {
	quads := []deck.Card{
		deck.NewCard(deck.Nine, deck.Spades), deck.NewCard(deck.Nine, deck.Hearts),
		deck.NewCard(deck.Nine, deck.Diamonds), deck.NewCard(deck.Nine, deck.Clubs),
		deck.NewCard(deck.Two, deck.Hearts), deck.NewCard(deck.Three, deck.Clubs),
		deck.NewCard(deck.Four, deck.Clubs),
	}
	highCard := []deck.Card{
		deck.NewCard(deck.Ace, deck.Spades), deck.NewCard(deck.King, deck.Hearts),
		deck.NewCard(deck.Nine, deck.Diamonds), deck.NewCard(deck.Seven, deck.Clubs),
		deck.NewCard(deck.Five, deck.Hearts), deck.NewCard(deck.Three, deck.Clubs),
		deck.NewCard(deck.Two, deck.Diamonds),
	}

	q := Evaluate7(quads)
	h := Evaluate7(highCard)
	assert.Greater(t, int(q), int(h))
	assert.Equal(t, 1, q.Compare(h))
	assert.Equal(t, -1, h.Compare(q))
	assert.Equal(t, 0, q.Compare(q))
}

func TestEvaluate7WheelStraight(t *testing.T) {
	wheel := []deck.Card{
		deck.NewCard(deck.Ace, deck.Spades), deck.NewCard(deck.Two, deck.Hearts),
		deck.NewCard(deck.Three, deck.Diamonds), deck.NewCard(deck.Four, deck.Clubs),
		deck.NewCard(deck.Five, deck.Hearts), deck.NewCard(deck.King, deck.Clubs),
		deck.NewCard(deck.Queen, deck.Diamonds),
	}
	assert.Equal(t, "Straight", Evaluate7(wheel).String())

	sixHighStraight := []deck.Card{
		deck.NewCard(deck.Two, deck.Spades), deck.NewCard(deck.Three, deck.Hearts),
		deck.NewCard(deck.Four, deck.Diamonds), deck.NewCard(deck.Five, deck.Clubs),
		deck.NewCard(deck.Six, deck.Hearts), deck.NewCard(deck.King, deck.Clubs),
		deck.NewCard(deck.Queen, deck.Diamonds),
	}
	assert.Greater(t, int(Evaluate7(sixHighStraight)), int(Evaluate7(wheel)))
}

func TestEvaluate7PanicsOnWrongCardCount(t *testing.T) {
	assert.Panics(t, func() { Evaluate7([]deck.Card{deck.NewCard(deck.Ace, deck.Spades)}) })
}
