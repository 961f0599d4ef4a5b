package game

import (
	"fmt"

	"github.com/lox/blackjack-odds/internal/deck"
)

// ActionKind discriminates the candidate player actions.
type ActionKind int

const (
	Stand ActionKind = iota
	Hit
	SplitHit
)

// Action is one candidate player move: stand, hit n times, or split
// and then hit n times, with n between 1 and 3.
type Action struct {
	Kind ActionKind
	Hits int
}

// StandAction returns the stand action.
func StandAction() Action {
	return Action{Kind: Stand}
}

// HitAction returns a hit action drawing n cards.
func HitAction(n int) Action {
	return Action{Kind: Hit, Hits: n}
}

// SplitAction returns a split action that continues with n hits.
func SplitAction(n int) Action {
	return Action{Kind: SplitHit, Hits: n}
}

// String returns a short label for the action (e.g. "hit x2")
func (a Action) String() string {
	switch a.Kind {
	case Stand:
		return "stand"
	case Hit:
		return fmt.Sprintf("hit x%d", a.Hits)
	case SplitHit:
		return fmt.Sprintf("split, hit x%d", a.Hits)
	default:
		return "unknown"
	}
}

// Apply executes the action against the hand, drawing from the shoe,
// and returns the resulting hand. The input hand is not modified.
//
// A split removes the second card and continues as a single hand
// rather than resolving two hands. Over many independent trials the
// aggregate of this single-hand line converges to the per-hand
// expectation of a real split, and the estimate depends on that
// approximation.
func (a Action) Apply(h Hand, shoe *deck.Shoe, src deck.Source) Hand {
	switch a.Kind {
	case Stand:
		return h.Clone()
	case Hit:
		out := h.Clone()
		for i := 0; i < a.Hits; i++ {
			out = append(out, shoe.Draw(src))
		}
		return out
	case SplitHit:
		out := make(Hand, 0, len(h)-1+a.Hits)
		out = append(out, h[0])
		out = append(out, h[2:]...)
		for i := 0; i < a.Hits; i++ {
			out = append(out, shoe.Draw(src))
		}
		return out
	default:
		return h.Clone()
	}
}
