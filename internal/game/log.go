package game

import "fmt"

// DealInformation names which hand and dealer position a DealCards log
// entry refers to.
type DealInformation struct {
	RoundNumber       int32
	DealerButtonIndex int
}

func (d DealInformation) String() string {
	return fmt.Sprintf("round %d, dealer at seat %d", d.RoundNumber, d.DealerButtonIndex)
}

// tableActionKind tags a TableAction log entry.
type tableActionKind int

const (
	logPlayerAction tableActionKind = iota
	logDealCards
	logAdvanceToFlop
	logAdvanceToTurn
	logAdvanceToRiver
	logEvaluateHand
)

// TableAction is one entry in a hand's action log. Only the fields
// relevant to its kind are populated.
type TableAction struct {
	kind   tableActionKind
	seat   int8
	action HandAction
	deal   DealInformation
	reason string
}

func playerActionEntry(seat int8, a HandAction) TableAction {
	return TableAction{kind: logPlayerAction, seat: seat, action: a}
}

func dealCardsEntry(d DealInformation) TableAction {
	return TableAction{kind: logDealCards, deal: d}
}

func advanceEntry(stage BetStage) TableAction {
	switch stage {
	case PreFlop:
		return TableAction{kind: logAdvanceToFlop}
	case Flop:
		return TableAction{kind: logAdvanceToTurn}
	default:
		return TableAction{kind: logAdvanceToRiver}
	}
}

func evaluateHandEntry(reason string) TableAction {
	return TableAction{kind: logEvaluateHand, reason: reason}
}

// String renders a log entry for the action/previous_actions wire arrays
// and for server-side logging.
func (a TableAction) String() string {
	switch a.kind {
	case logPlayerAction:
		return fmt.Sprintf("Player %d %s", a.seat, a.action)
	case logDealCards:
		return fmt.Sprintf("Dealing for %s", a.deal)
	case logAdvanceToFlop:
		return "Advancing to Flop"
	case logAdvanceToTurn:
		return "Advancing to Turn"
	case logAdvanceToRiver:
		return "Advancing to River"
	case logEvaluateHand:
		return a.reason
	default:
		return "Unknown"
	}
}
