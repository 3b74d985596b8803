// Package game implements the hand/game engine: the betting finite-state
// machine, side-pot resolution, dealer/ante rotation, and the
// information-hiding view projection. Table is the sole owner of all
// rules state and is deterministic given the sequence of actions and the
// shuffled deck.
package game

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/lox/pokerarena/internal/deck"
)

// MaxPlayers is the largest roster a Table accepts.
const MaxPlayers = 23

// Table is the engine aggregate: players, community cards, the betting
// FSM, and the action log.
type Table struct {
	players               []*Player
	flop                  *[3]deck.Card
	turn                  *deck.Card
	river                 *deck.Card
	dealerButtonIndex     int
	ante                  int32
	handNumber            int32
	currentPlayerIndex    int
	tableState            BetStage
	playerBets            []int32
	anteRoundIncrease     int32
	roundActions          []TableAction
	previousRoundActions  []TableAction
	rng                   *rand.Rand
}

// anteIncreaseAmount is how much the ante grows every anteRoundIncrease
// hands.
const anteIncreaseAmount int32 = 1

// NewTable builds a table of n players (ids 0..n-1) and deals hand 1.
// n must be in [1,23]; exceeding MaxPlayers is a programmer error.
func NewTable(n int) *Table {
	return NewTableWithRand(n, rand.New(rand.NewSource(defaultSeed())))
}

// NewTableWithRand is NewTable with an injected random source, so tests
// and deterministic replays can control the shuffle.
func NewTableWithRand(n int, rng *rand.Rand) *Table {
	if n > MaxPlayers {
		panic("game: too many players for one table")
	}
	if n < 1 {
		panic("game: table needs at least one player")
	}

	players := make([]*Player, n)
	for i := range players {
		players[i] = NewPlayer(int8(i))
	}
	initialIndex := n - 1

	t := &Table{
		players:              players,
		dealerButtonIndex:    initialIndex,
		ante:                 1,
		currentPlayerIndex:   initialIndex,
		tableState:           PreFlop,
		playerBets:           make([]int32, n),
		anteRoundIncrease:    int32(n) * 2,
		roundActions:         nil,
		previousRoundActions: nil,
		rng:                  rng,
	}
	t.deal()
	return t
}

// PlayerCount returns the number of seats.
func (t *Table) PlayerCount() int { return len(t.players) }

// CurrentPlayerIndex returns the seat whose turn it is to act.
func (t *Table) CurrentPlayerIndex() int { return t.currentPlayerIndex }

// HandNumber returns the 1-indexed number of the current (or just
// completed) hand.
func (t *Table) HandNumber() int32 { return t.handNumber }

// Ante returns the current ante size.
func (t *Table) Ante() int32 { return t.ante }

// Players exposes the seat list read-only, for result reporting.
func (t *Table) Players() []*Player { return t.players }

// IsGameOver reports whether exactly one player remains alive.
func (t *Table) IsGameOver() bool {
	alive := 0
	for _, p := range t.players {
		if p.IsAlive() {
			alive++
		}
	}
	return alive == 1
}

func (t *Table) currentPlayer() *Player { return t.players[t.currentPlayerIndex] }

func (t *Table) activePlayerCount() int {
	n := 0
	for _, p := range t.players {
		if p.IsActive() {
			n++
		}
	}
	return n
}

func (t *Table) largestActiveBet() int32 {
	var max int32
	for _, p := range t.players {
		if p.IsActive() && p.CurrentBet() > max {
			max = p.CurrentBet()
		}
	}
	return max
}

// deal starts the next hand: advances bookkeeping, kills broke players,
// reshuffles, deals board and hole cards, collects antes, and rotates
// the dealer button to the next alive seat. No-op if the game is over.
func (t *Table) deal() {
	if t.IsGameOver() {
		return
	}
	t.handNumber++
	t.resetStateForNewRound()
	t.checkForPlayerDeath()

	d := deck.New()
	d.Shuffle(t.rng)
	t.dealTableCards(d)
	t.dealPlayerCardsCollectAnte(d)

	t.findNextDealButtonIndexAndUpdateCurrentPlayer()

	if t.handNumber%t.anteRoundIncrease == 0 {
		t.ante += anteIncreaseAmount
	}
}

func (t *Table) resetStateForNewRound() {
	t.tableState = PreFlop
	t.playerBets = make([]int32, len(t.players))
	t.previousRoundActions = t.roundActions
	t.roundActions = []TableAction{dealCardsEntry(DealInformation{
		RoundNumber:       t.handNumber,
		DealerButtonIndex: t.dealerButtonIndex,
	})}
}

func (t *Table) checkForPlayerDeath() {
	for _, p := range t.players {
		if p.IsAlive() && p.TotalMoney() < t.ante {
			p.markDead(t.handNumber)
		}
	}
}

func (t *Table) dealTableCards(d *deck.Deck) {
	cards := d.DealN(5)
	var flop [3]deck.Card
	copy(flop[:], cards[:3])
	t.flop = &flop
	turn := cards[3]
	t.turn = &turn
	river := cards[4]
	t.river = &river
}

func (t *Table) dealPlayerCardsCollectAnte(d *deck.Deck) {
	for i, p := range t.players {
		if !p.IsAlive() {
			continue
		}
		cards := d.DealN(2)
		p.Deal([2]deck.Card{cards[0], cards[1]})
		t.playerBets[i] += p.Bet(t.ante)
		// the ante is not a turn
		p.resetForNewRound()
	}
}

// findNextDealButtonIndexAndUpdateCurrentPlayer rotates the button to
// the next alive seat, then sets current_player_index to the next
// Active, not-all-in seat past the button — the first preflop actor.
func (t *Table) findNextDealButtonIndexAndUpdateCurrentPlayer() {
	for range t.players {
		t.dealerButtonIndex = (t.dealerButtonIndex + 1) % len(t.players)
		if t.players[t.dealerButtonIndex].IsAlive() {
			break
		}
	}
	t.currentPlayerIndex = t.dealerButtonIndex
	t.updateCurrentPlayerIndexToNextActive()
}

// updateCurrentPlayerIndexToNextActive walks forward from the current
// index to the next seat that is Active and not all-in. Finding no such
// seat is a programmer error: callers outside the all-in fast-forward
// loop must never invoke this when nobody is left to act.
func (t *Table) updateCurrentPlayerIndexToNextActive() {
	for range t.players {
		t.currentPlayerIndex = (t.currentPlayerIndex + 1) % len(t.players)
		p := t.currentPlayer()
		if p.TotalMoney() == 0 {
			continue
		}
		if p.IsActive() {
			return
		}
	}
	panic("game: no eligible seat to act")
}

// TakeAction applies a HandAction from the current player, then advances
// betting state: resolving the hand if only one active player remains,
// closing betting rounds (possibly several in a row when everyone left
// is all-in), or moving to the next active seat.
func (t *Table) TakeAction(action HandAction) {
	if t.IsGameOver() {
		return
	}
	current := t.currentPlayer()
	if !current.IsActive() {
		panic("game: take action on an inactive player")
	}
	t.takeProvidedAction(action, current)

	if t.activePlayerCount() == 1 {
		t.resolveHand()
		return
	}

	for t.isBettingOver() && !t.IsGameOver() {
		if t.tableState == River {
			t.resolveHand()
			return
		}
		t.roundActions = append(t.roundActions, advanceEntry(t.tableState))
		t.tableState = t.tableState.Next()
		t.currentPlayerIndex = t.dealerButtonIndex
		for _, p := range t.players {
			p.resetForNewRound()
		}
	}

	t.updateCurrentPlayerIndexToNextActive()
}

func (t *Table) takeProvidedAction(action HandAction, current *Player) {
	diff := t.largestActiveBet() - current.CurrentBet()
	seat := current.ID()

	switch action.Kind {
	case ActionFold:
		current.Fold()
		t.roundActions = append(t.roundActions, playerActionEntry(seat, Fold()))

	case ActionCheck:
		if diff == 0 {
			current.Bet(0)
			t.roundActions = append(t.roundActions, playerActionEntry(seat, Check()))
		} else {
			current.Fold()
			t.roundActions = append(t.roundActions, playerActionEntry(seat, Fold()))
		}

	case ActionCall:
		paid := current.Bet(diff)
		t.playerBets[seat] += paid
		t.roundActions = append(t.roundActions, playerActionEntry(seat, Call()))

	case ActionRaise:
		acceptable := action.Amount + diff
		if limit := t.potSize() + diff; acceptable > limit {
			acceptable = limit
		}
		paid := current.Bet(acceptable)
		t.playerBets[seat] += paid
		t.roundActions = append(t.roundActions, playerActionEntry(seat, Raise(paid)))
	}
}

// isBettingOver reports whether the current round has closed: every
// active player has either acted this round or is all-in, and every
// not-all-in active player shares the current highest bet.
func (t *Table) isBettingOver() bool {
	return t.allPlayersReadyForNextRound() && t.allActivePlayersSameBet()
}

func (t *Table) allPlayersReadyForNextRound() bool {
	for _, p := range t.players {
		if !p.IsActive() {
			continue
		}
		if !p.HasHadTurn() && p.TotalMoney() != 0 {
			return false
		}
	}
	return true
}

func (t *Table) allActivePlayersSameBet() bool {
	max := t.largestActiveBet()
	for _, p := range t.players {
		if !p.IsActive() {
			continue
		}
		if p.TotalMoney() != 0 && p.CurrentBet() != max {
			return false
		}
	}
	return true
}

// resolveHand pays out the pot — either to the lone remaining active
// player (everyone else folded) or via stratified side-pot showdown —
// logs the outcome, and deals the next hand.
func (t *Table) resolveHand() {
	var reason string
	if t.activePlayerCount() == 1 {
		reason = t.resolveByFold()
	} else {
		reason = t.resolveByShowdown()
	}
	t.roundActions = append(t.roundActions, evaluateHandEntry(reason))
	t.deal()
}

func (t *Table) resolveByFold() string {
	pot := t.potSize()
	for _, p := range t.players {
		if p.IsActive() {
			p.totalMoney += pot
			for i := range t.playerBets {
				t.playerBets[i] = 0
			}
			return fmt.Sprintf("The following player won because everyone else folded: %d", p.ID())
		}
	}
	panic("game: no active player to award the pot to")
}

func (t *Table) resolveByShowdown() string {
	var sb strings.Builder
	sb.WriteString(t.comparisonHeader())

	active := make([]*Player, 0, len(t.players))
	for _, p := range t.players {
		if p.IsActive() {
			active = append(active, p)
		}
	}
	board := []deck.Card{t.flop[0], t.flop[1], t.flop[2], *t.turn, *t.river}
	classes := rankClasses(board, active)

	for rank, class := range classes {
		for _, p := range class {
			hand := p.Hand()
			fmt.Fprintf(&sb, "Player %d ranked %d with hand %s %s\n", p.ID(), rank+1, hand[0], hand[1])
		}
	}
	for _, class := range classes {
		t.payoutClass(class)
	}
	return sb.String()
}

func (t *Table) comparisonHeader() string {
	flopStr := "None"
	if t.flop != nil {
		flopStr = fmt.Sprintf("%s %s %s", t.flop[0], t.flop[1], t.flop[2])
	}
	turnStr, riverStr := "None", "None"
	if t.turn != nil {
		turnStr = t.turn.String()
	}
	if t.river != nil {
		riverStr = t.river.String()
	}
	return fmt.Sprintf(
		"The hand resolved because: \nPlayers hands had to be compared.\nFlop: %s\nTurn: %s\nRiver: %s\nThe hands are ranked as follows: \n",
		flopStr, turnStr, riverStr,
	)
}

// GetResults is a ranked textual report: players sorted by Player.Compare
// (best first), numbered with ties sharing a rank.
func (t *Table) GetResults() string {
	sorted := make([]*Player, len(t.players))
	copy(sorted, t.players)
	for i := 1; i < len(sorted); i++ {
		for j := i; j > 0 && sorted[j-1].Compare(sorted[j]) < 0; j-- {
			sorted[j-1], sorted[j] = sorted[j], sorted[j-1]
		}
	}

	var sb strings.Builder
	rank := 1
	writeResultLine(&sb, sorted[0], rank)
	for i := 1; i < len(sorted); i++ {
		if sorted[i].Compare(sorted[i-1]) != 0 {
			rank = i + 1
		}
		writeResultLine(&sb, sorted[i], rank)
	}
	return sb.String()
}

func writeResultLine(sb *strings.Builder, p *Player, rank int) {
	death := "None"
	if d, ok := p.DeathHandNumber(); ok {
		death = fmt.Sprintf("%d", d)
	}
	fmt.Fprintf(sb, "Rank:%3d, Death Round: %5s, Player %d, Total Money: %d\n", rank, death, p.ID(), p.TotalMoney())
}
