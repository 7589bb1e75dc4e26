package game

// Finished reports whether every square has an owner.
func (s State) Finished() bool {
	if len(s.squares) == 0 {
		return false
	}
	for _, sq := range s.squares {
		if !sq.IsOwned() {
			return false
		}
	}
	return true
}

// Winner returns the winning player once the board is full; ok is false while
// any square is still unowned.
//
// Players are tallied in the order their first square shows up in a row-major
// scan. The highest tally wins and an equal tally goes to the player tallied
// later, so a full board always has a winner and never a draw. This tie rule
// is an edge-case policy rather than a fairness rule; it only has to be
// deterministic.
func Winner(s State) (winner Player, ok bool) {
	if !s.Finished() {
		return 0, false
	}

	var order []Player
	tally := map[Player]int{}
	for _, sq := range s.squares {
		p, _ := sq.Player()
		if _, seen := tally[p]; !seen {
			order = append(order, p)
		}
		tally[p]++
	}

	best := -1
	for _, p := range order {
		if tally[p] >= best {
			best = tally[p]
			winner = p
		}
	}
	return winner, true
}
