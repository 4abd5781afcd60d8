package battle

// candidateActsFirst decides turn order for one turn. Strictly higher
// move priority acts first; on a priority tie, strictly higher speed
// acts first; an exact speed tie goes to the candidate side. A side
// without a chosen move counts as priority 0.
func candidateActsFirst(candMove, oppMove *MoveOption, candSpeed, oppSpeed int) bool {
	candPriority, oppPriority := 0, 0
	if candMove != nil {
		candPriority = candMove.Priority
	}
	if oppMove != nil {
		oppPriority = oppMove.Priority
	}
	if candPriority != oppPriority {
		return candPriority > oppPriority
	}
	if candSpeed != oppSpeed {
		return candSpeed > oppSpeed
	}
	return true
}
