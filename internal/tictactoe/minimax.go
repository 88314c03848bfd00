package tictactoe

import "math"

// BestMove returns the optimal action for the player to move.
// It reports false when the board is terminal.
//
// X maximises Utility and O minimises it. Branches that cannot change
// the decision are pruned with alpha-beta bounds.
func BestMove(b Board) (Action, bool) {
	if Terminal(b) {
		return Action{}, false
	}

	var (
		best  Action
		found bool
	)
	alpha, beta := math.MinInt, math.MaxInt

	if CurrentPlayer(b) == X {
		v := math.MinInt
		for _, a := range Actions(b) {
			next, _ := Result(b, a)
			score := minValue(next, alpha, beta)
			if !found || score > v {
				v, best, found = score, a, true
			}
			alpha = max(alpha, v)
		}
		return best, found
	}

	v := math.MaxInt
	for _, a := range Actions(b) {
		next, _ := Result(b, a)
		score := maxValue(next, alpha, beta)
		if !found || score < v {
			v, best, found = score, a, true
		}
		beta = min(beta, v)
	}
	return best, found
}

func maxValue(b Board, alpha, beta int) int {
	if Terminal(b) {
		return Utility(b)
	}
	v := math.MinInt
	for _, a := range Actions(b) {
		next, _ := Result(b, a)
		v = max(v, minValue(next, alpha, beta))
		if v >= beta {
			return v
		}
		alpha = max(alpha, v)
	}
	return v
}

func minValue(b Board, alpha, beta int) int {
	if Terminal(b) {
		return Utility(b)
	}
	v := math.MaxInt
	for _, a := range Actions(b) {
		next, _ := Result(b, a)
		v = min(v, maxValue(next, alpha, beta))
		if v <= alpha {
			return v
		}
		beta = min(beta, v)
	}
	return v
}
