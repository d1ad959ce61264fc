package review

// Drilldown walks the nine categories in taxonomy order for one row,
// collecting or revising a yes/no answer per category. It is linear and
// single-direction; revisiting a category means reopening the drill-down
// from the cursor, which reseeds from the cursor's latest answers.
type Drilldown struct {
	answers Answers
	idx     int
	done    bool
}

func newDrilldown(seed Answers) *Drilldown {
	answers := allNo()
	for _, c := range categoryOrder {
		if v, ok := seed[c]; ok {
			answers[c] = NormalizeAnswer(string(v))
		}
	}
	return &Drilldown{answers: answers}
}

// Category returns the category currently being asked about.
func (d *Drilldown) Category() Category { return categoryOrder[d.idx] }

// Prompt returns the current category's explanatory prompt.
func (d *Drilldown) Prompt() string { return Prompt(d.Category()) }

// Index returns the zero-based position within the category walk.
func (d *Drilldown) Index() int { return d.idx }

// Total returns the number of categories walked.
func (d *Drilldown) Total() int { return CategoryCount }

// Current returns the seeded or previously recorded answer for the
// current category, shown as the active selection.
func (d *Drilldown) Current() Answer { return d.answers[d.Category()] }

// Done reports whether the sub-workflow has ended.
func (d *Drilldown) Done() bool { return d.done }

// Advance records the answer for the current category and moves to the
// next one. After the ninth answer it ends the sub-workflow and returns
// true; the shell then reads the merged set via Answers.
func (d *Drilldown) Advance(a Answer) bool {
	if d.done {
		return true
	}
	d.answers[d.Category()] = NormalizeAnswer(string(a))
	if d.idx+1 >= CategoryCount {
		d.done = true
		return true
	}
	d.idx++
	return false
}

// Finish records the current category's answer and ends immediately.
// Categories never visited keep their seeded value.
func (d *Drilldown) Finish(a Answer) {
	if d.done {
		return
	}
	d.answers[d.Category()] = NormalizeAnswer(string(a))
	d.done = true
}

// Answers returns the merged result: exactly one value per category, with
// seeded defaults filling anything not explicitly visited.
func (d *Drilldown) Answers() Answers { return d.answers.Clone() }
