package zoo

import "fmt"

// GreedLimit is how many times a monkey may ask for food between two talks.
const GreedLimit = 4

var _ Primate = (*Monkey)(nil)

// Monkey keeps a greed counter that talking resets. It is not safe for
// concurrent use.
type Monkey struct {
	body
	toy   string
	greed int
}

func (m *Monkey) Toy() string { return m.toy }

// Greed returns the number of food requests since the monkey last talked.
func (m *Monkey) Greed() int { return m.greed }

func (m *Monkey) Talk() {
	m.greed = 0
	m.out.Print(chatterToken)
}

// AskFood fails with ErrTooGreedy once the counter passes GreedLimit. The
// counter is not rolled back, so asking again without talking fails again.
func (m *Monkey) AskFood() error {
	m.greed++
	if m.greed > GreedLimit {
		return ErrTooGreedy
	}
	m.out.Print(foodToken)
	return nil
}

func (m *Monkey) Describe() string {
	return m.body.Describe() + fmt.Sprintf("Toy: %s\n", m.toy)
}
