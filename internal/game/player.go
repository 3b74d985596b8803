package game

import "github.com/lox/pokerarena/internal/deck"

// StartingMoney is every seat's chip stack at table construction.
const StartingMoney int32 = 500

// PlayerState is the per-hand lifecycle of a seat: either folded for the
// remainder of the hand, or still active with a hole-card hand and a
// running contribution.
type PlayerState int

const (
	Folded PlayerState = iota
	Active
)

func (s PlayerState) String() string {
	if s == Active {
		return "active"
	}
	return "folded"
}

// ActiveState is the data carried only while a player is Active.
// CurrentBet accumulates across the whole hand (ante included), not just
// the current betting round.
type ActiveState struct {
	Hand       [2]deck.Card
	CurrentBet int32
}

// Player is a single seat: stable id, chip stack, and per-hand state.
// DeathHandNumber is nil while the player is alive.
type Player struct {
	id                  int8
	state               PlayerState
	active              ActiveState
	totalMoney          int32
	deathHandNumber     *int32
	hasHadTurnThisRound bool
}

// NewPlayer creates a seat with the starting stack, Folded until the
// first deal, alive.
func NewPlayer(id int8) *Player {
	return &Player{id: id, state: Folded, totalMoney: StartingMoney}
}

func (p *Player) ID() int8           { return p.id }
func (p *Player) TotalMoney() int32  { return p.totalMoney }
func (p *Player) State() PlayerState { return p.state }
func (p *Player) IsActive() bool     { return p.state == Active }
func (p *Player) HasHadTurn() bool   { return p.hasHadTurnThisRound }
func (p *Player) Hand() [2]deck.Card { return p.active.Hand }

// CurrentBet returns the running per-hand contribution, or 0 if Folded.
func (p *Player) CurrentBet() int32 {
	if p.state == Active {
		return p.active.CurrentBet
	}
	return 0
}

// DeathHandNumber returns (handNumber, true) if dead, (0, false) if alive.
func (p *Player) DeathHandNumber() (int32, bool) {
	if p.deathHandNumber == nil {
		return 0, false
	}
	return *p.deathHandNumber, true
}

// IsAlive reports whether the player has not yet busted out.
func (p *Player) IsAlive() bool {
	return p.deathHandNumber == nil
}

// markDead sets the death hand number; called only by Table at deal time.
func (p *Player) markDead(handNumber int32) {
	p.deathHandNumber = &handNumber
	p.state = Folded
}

// Deal moves a (necessarily alive) player into Active state for a new
// hand, clearing its turn flag and starting contribution at zero.
func (p *Player) Deal(cards [2]deck.Card) {
	if !p.IsAlive() {
		panic("game: dealt cards to a dead player")
	}
	p.state = Active
	p.active = ActiveState{Hand: cards, CurrentBet: 0}
	p.hasHadTurnThisRound = false
}

// Fold transitions Active to Folded. Folding a Folded player is a
// programmer error: the engine must never offer a turn to one.
func (p *Player) Fold() {
	if p.state != Active {
		panic("game: fold on a player that is not active")
	}
	p.hasHadTurnThisRound = true
	p.state = Folded
}

// Bet transfers min(amount, totalMoney) from the stack into the running
// contribution and returns the amount actually paid. Bet(0) is a legal
// check/call-of-nothing and still counts as a turn. Betting on a Folded
// player is a programmer error.
func (p *Player) Bet(amount int32) int32 {
	if p.state != Active {
		panic("game: bet on a player that is not active")
	}
	p.hasHadTurnThisRound = true
	paid := amount
	if paid > p.totalMoney {
		paid = p.totalMoney
	}
	if paid < 0 {
		paid = 0
	}
	p.totalMoney -= paid
	p.active.CurrentBet += paid
	return paid
}

// resetForNewRound clears the per-betting-round turn flag. Called at
// stage boundaries and right after the ante is collected at deal time
// (ante does not count as a turn).
func (p *Player) resetForNewRound() {
	p.hasHadTurnThisRound = false
}

// Compare orders players for final results: largest is "best".
//  1. both alive: by total money;
//  2. exactly one alive: the alive one wins;
//  3. both dead: later death (larger hand number) wins.
func (p *Player) Compare(other *Player) int {
	pAlive, oAlive := p.IsAlive(), other.IsAlive()
	switch {
	case pAlive && oAlive:
		return compareInt32(p.totalMoney, other.totalMoney)
	case pAlive && !oAlive:
		return 1
	case !pAlive && oAlive:
		return -1
	default:
		pd, _ := p.DeathHandNumber()
		od, _ := other.DeathHandNumber()
		return compareInt32(pd, od)
	}
}

func compareInt32(a, b int32) int {
	switch {
	case a > b:
		return 1
	case a < b:
		return -1
	default:
		return 0
	}
}

// PlayerStateView is the player_state.details shape on the wire.
type PlayerStateView struct {
	StateType string `json:"state_type"`
	Details   struct {
		Bet int32 `json:"bet"`
	} `json:"details"`
}

// PlayerView is a seat as seen by every viewer (as_json_no_secret_data):
// no hole cards, ever.
type PlayerView struct {
	ID          int8            `json:"id"`
	TotalMoney  int32           `json:"total_money"`
	PlayerState PlayerStateView `json:"player_state"`
}

// View projects the no-secret-data view of a player; hole cards never
// appear here, satisfying the card-hiding invariant.
func (p *Player) View() PlayerView {
	v := PlayerView{ID: p.id, TotalMoney: p.totalMoney}
	v.PlayerState.StateType = p.state.String()
	v.PlayerState.Details.Bet = p.CurrentBet()
	return v
}
