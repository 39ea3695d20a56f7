package sapling

import (
	"strings"
	"unicode/utf8"
)

// Typewriter reveals a text rune by rune at a fixed rate. Lines are joined
// with '\n'; newlines count as one rune each, so blank lines pause the
// reveal briefly.
type Typewriter struct {
	text  string
	total int
	rate  float64 // runes per second
	shown float64
}

// NewTypewriter creates a typewriter over lines revealing rate runes per
// second.
func NewTypewriter(lines []string, rate float64) *Typewriter {
	text := strings.Join(lines, "\n")
	return &Typewriter{
		text:  text,
		total: utf8.RuneCountInString(text),
		rate:  rate,
	}
}

// Update advances the reveal by dt seconds. It stops advancing once done.
func (tw *Typewriter) Update(dt float64) {
	if tw.Done() || dt <= 0 {
		return
	}
	tw.shown += tw.rate * dt
}

// Count returns the number of runes currently visible.
func (tw *Typewriter) Count() int {
	n := int(tw.shown)
	if n > tw.total {
		return tw.total
	}
	return n
}

// Total returns the number of runes in the full text.
func (tw *Typewriter) Total() int {
	return tw.total
}

// Done reports whether the whole text is visible.
func (tw *Typewriter) Done() bool {
	return int(tw.shown) >= tw.total
}

// Finish reveals the whole text at once.
func (tw *Typewriter) Finish() {
	tw.shown = float64(tw.total)
}

// Visible returns the revealed prefix of the text.
func (tw *Typewriter) Visible() string {
	n := tw.Count()
	if n >= tw.total {
		return tw.text
	}
	i := 0
	for pos := range tw.text {
		if i == n {
			return tw.text[:pos]
		}
		i++
	}
	return tw.text
}

// Lines returns the revealed text split into lines. A partly revealed text
// always has at least one (possibly empty) line.
func (tw *Typewriter) Lines() []string {
	return strings.Split(tw.Visible(), "\n")
}
