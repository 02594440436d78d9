package bowling

// Score returns the cumulative score of every resolved frame.
//
// Scoring stops at the first frame whose rolls or bonus look-ahead are not yet
// recorded, so an unresolved strike or spare contributes nothing and hides
// every frame after it.
func (l *Ledger) Score() int {
	return l.ScoreThrough(l.started)
}

// ScoreThrough returns the cumulative score of frames [0, upToFrame).
//
// Frames at or beyond upToFrame are not visible to bonus look-ahead, so a
// strike or spare in the last counted frame is unresolved even when later
// rolls exist.
//
// Postcondition: upToFrame is clamped to [0, FrameCount]; the ledger is not modified.
func (l *Ledger) ScoreThrough(upToFrame int) int {
	totals := l.totals(upToFrame)
	if len(totals) == 0 {
		return 0
	}
	return totals[len(totals)-1]
}

// RunningTotals returns the cumulative score after each resolved frame, with
// bonus look-ahead across every recorded frame.
func (l *Ledger) RunningTotals() []int {
	return l.totals(l.started)
}

func (l *Ledger) totals(limit int) []int {
	limit = max(0, min(limit, l.started))
	out := make([]int, 0, limit)
	score := 0
	for i := 0; i < limit; i++ {
		points, ok := l.framePoints(i, limit)
		if !ok {
			break
		}
		score += points
		out = append(out, score)
	}
	return out
}

// visible returns frame i when it is started and inside the scoring window.
func (l *Ledger) visible(i, limit int) (Frame, bool) {
	if i >= limit {
		return Frame{}, false
	}
	return l.Frame(i)
}

// framePoints returns frame i's points including bonus, or false when the
// frame is not yet resolved.
func (l *Ledger) framePoints(i, limit int) (int, bool) {
	f := l.frames[i]
	r0, _ := f.Roll(0)
	r1, ok1 := f.Roll(1)

	switch {
	case f.IsStrike():
		if i == finalFrame {
			r2, ok2 := f.Roll(2)
			if !ok1 || !ok2 {
				return 0, false
			}
			return r0 + r1 + r2, true
		}
		bonus, ok := l.strikeBonus(i, limit)
		if !ok {
			return 0, false
		}
		return r0 + bonus, true

	case f.IsSpare():
		if i == finalFrame {
			r2, ok2 := f.Roll(2)
			if !ok2 {
				return 0, false
			}
			return r0 + r1 + r2, true
		}
		next, ok := l.visible(i+1, limit)
		if !ok {
			return 0, false
		}
		bonus, ok := next.Roll(0)
		if !ok {
			return 0, false
		}
		return r0 + r1 + bonus, true

	case !ok1:
		return 0, false

	default:
		return r0 + r1, true
	}
}

// strikeBonus sums the two rolls following a strike in regular frame i. The
// second roll comes from frame i+2 when frame i+1 is itself a strike and
// frame i+2 is visible, and from frame i+1 otherwise.
func (l *Ledger) strikeBonus(i, limit int) (int, bool) {
	next, ok := l.visible(i+1, limit)
	if !ok {
		return 0, false
	}
	first, ok := next.Roll(0)
	if !ok {
		return 0, false
	}

	var second int
	if after, afterOK := l.visible(i+2, limit); first == MaxPins && afterOK {
		second, ok = after.Roll(0)
	} else {
		second, ok = next.Roll(1)
	}
	if !ok {
		return 0, false
	}
	return first + second, true
}
