package game

// Outcome is the result of a finished round from the player's
// perspective.
type Outcome int

const (
	Win Outcome = iota
	Loss
	Tie
)

// String returns the string representation of an outcome
func (o Outcome) String() string {
	switch o {
	case Win:
		return "win"
	case Loss:
		return "loss"
	case Tie:
		return "tie"
	default:
		return "?"
	}
}

// Classify compares fully resolved player and dealer hands. A busted
// player loses outright, even against a busted dealer; otherwise a
// busted dealer loses, and live hands compare by best total.
func Classify(player, dealer Hand) Outcome {
	playerBest, playerLive := player.BestTotal()
	if !playerLive {
		return Loss
	}

	dealerBest, dealerLive := dealer.BestTotal()
	if !dealerLive {
		return Win
	}

	switch {
	case playerBest > dealerBest:
		return Win
	case playerBest < dealerBest:
		return Loss
	default:
		return Tie
	}
}
