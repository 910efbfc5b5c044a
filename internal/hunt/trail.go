package hunt

// Trail is the recent step distances of one session, oldest first, plus
// the closest the player has come.
type Trail struct {
	steps []int
	limit int
	best  int
}

// NewTrail keeps at most limit readings.
func NewTrail(limit int) *Trail {
	return &Trail{limit: max(limit, 1), best: -1}
}

// Record appends a significant step reading, dropping the oldest once the
// trail is full.
func (t *Trail) Record(steps int) {
	if len(t.steps) == t.limit {
		copy(t.steps, t.steps[1:])
		t.steps = t.steps[:t.limit-1]
	}
	t.steps = append(t.steps, steps)
	if t.best < 0 || steps < t.best {
		t.best = steps
	}
}

// Steps returns a copy of the readings.
func (t *Trail) Steps() []int {
	return append([]int(nil), t.steps...)
}

// Best returns the smallest reading recorded, even if it has since
// scrolled out of the trail.
func (t *Trail) Best() (int, bool) {
	return t.best, t.best >= 0
}
