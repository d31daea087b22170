package pebbles

// checkWin records p as winner when the pile is empty and no winner exists yet.
func checkWin(s *GameState, p Player) (Event, bool) {
	if s.PebblesRemaining != 0 || s.Winner != nil {
		return nil, false
	}
	w := p
	s.Winner = &w
	return Won(p), true
}
