package game

import "github.com/lox/pokerarena/internal/deck"

// TableView is the JSON snapshot pushed to exactly one seat on its turn
// (see wire protocol). Card fields distinguish "None" (undealt) from
// "Hidden" (dealt but not yet revealed to this stage).
type TableView struct {
	ID                int8         `json:"id"`
	CurrentBet        int32        `json:"current_bet"`
	Cards             []string     `json:"cards"`
	HandNumber        int32        `json:"hand_number"`
	CurrentHighestBet int32        `json:"current_highest_bet"`
	Flop              []string     `json:"flop"`
	Turn              string       `json:"turn"`
	River             string       `json:"river"`
	DealerButtonIndex int          `json:"dealer_button_index"`
	Players           []PlayerView `json:"players"`
	Actions           []string     `json:"actions"`
	PreviousActions   []string     `json:"previous_actions"`
}

func cardString(c deck.Card) string { return c.String() }

func (t *Table) flopView() []string {
	if t.flop == nil {
		return []string{"None"}
	}
	if t.tableState == PreFlop {
		return []string{"Hidden"}
	}
	return []string{cardString(t.flop[0]), cardString(t.flop[1]), cardString(t.flop[2])}
}

func (t *Table) turnView() string {
	if t.turn == nil {
		return "None"
	}
	if t.tableState == PreFlop || t.tableState == Flop {
		return "Hidden"
	}
	return cardString(*t.turn)
}

func (t *Table) riverView() string {
	if t.river == nil {
		return "None"
	}
	if t.tableState != River {
		return "Hidden"
	}
	return cardString(*t.river)
}

func actionStrings(log []TableAction) []string {
	strs := make([]string, len(log))
	for i, a := range log {
		strs[i] = a.String()
	}
	return strs
}

// ViewFor projects the view of the table visible to seat id. The
// viewer's own hole cards appear only in the top-level Cards field;
// every player's entry in Players (including the viewer's own) comes
// from Player.View, which never carries hole cards (P8).
func (t *Table) ViewFor(seat int8) TableView {
	viewer := t.players[seat]
	players := make([]PlayerView, len(t.players))
	for i, p := range t.players {
		players[i] = p.View()
	}

	hand := viewer.Hand()
	return TableView{
		ID:                viewer.ID(),
		CurrentBet:        viewer.CurrentBet(),
		Cards:             []string{cardString(hand[0]), cardString(hand[1])},
		HandNumber:        t.handNumber,
		CurrentHighestBet: t.largestActiveBet(),
		Flop:              t.flopView(),
		Turn:              t.turnView(),
		River:             t.riverView(),
		DealerButtonIndex: t.dealerButtonIndex,
		Players:           players,
		Actions:           actionStrings(t.roundActions),
		PreviousActions:   actionStrings(t.previousRoundActions),
	}
}
