package rps

import "math/rand"

// Move is one of the three hand shapes.
type Move int

const (
	Rock Move = iota
	Paper
	Scissors
)

// Moves lists every move in button order (A, B, C).
var Moves = [...]Move{Rock, Paper, Scissors}

// beats maps each move to the one it defeats.
var beats = map[Move]Move{
	Rock:     Scissors,
	Scissors: Paper,
	Paper:    Rock,
}

// Label returns the display name of the move, or "?" for unknown values.
func (m Move) Label() string {
	switch m {
	case Rock:
		return "Rock"
	case Paper:
		return "Paper"
	case Scissors:
		return "Scissors"
	default:
		return "?"
	}
}

// String implements fmt.Stringer.
func (m Move) String() string {
	return m.Label()
}

// Valid reports whether m is one of the three moves.
func (m Move) Valid() bool {
	_, ok := beats[m]
	return ok
}

// Beats reports whether m defeats other.
func (m Move) Beats(other Move) bool {
	prey, ok := beats[m]
	return ok && prey == other
}

// RandomMove draws a move uniformly from r.
func RandomMove(r *rand.Rand) Move {
	return Moves[r.Intn(len(Moves))]
}

// Outcome is the result of a showdown from the player's side.
type Outcome int

const (
	Draw Outcome = iota
	Win
	Lose
)

// Text returns the line shown on the showdown screen.
func (o Outcome) Text() string {
	switch o {
	case Draw:
		return "Draw"
	case Win:
		return "You Win!"
	case Lose:
		return "You Lose"
	default:
		return "?"
	}
}

// String implements fmt.Stringer.
func (o Outcome) String() string {
	switch o {
	case Draw:
		return "draw"
	case Win:
		return "win"
	case Lose:
		return "lose"
	default:
		return "unknown"
	}
}

// Decide returns the outcome of player against badge.
func Decide(player, badge Move) Outcome {
	if player == badge {
		return Draw
	}
	if player.Beats(badge) {
		return Win
	}
	return Lose
}

// Round describes one completed showdown.
type Round struct {
	Player  Move
	Badge   Move
	Outcome Outcome
}
