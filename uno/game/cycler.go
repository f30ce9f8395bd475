package game

const (
	left  = -1
	right = 1
)

// Cycler tracks the acting seat and the direction of play over a fixed
// ring of seats.
type Cycler struct {
	seats     int
	current   int
	direction int
}

func NewCycler(seats int) *Cycler {
	return &Cycler{seats: seats, current: 0, direction: right}
}

func (c *Cycler) Current() int {
	return c.current
}

// Next moves one seat in the current direction and returns the new seat.
func (c *Cycler) Next() int {
	c.current = (c.current + c.direction + c.seats) % c.seats
	return c.current
}

// Peek computes one step from an arbitrary seat without moving.
func (c *Cycler) Peek(from int) int {
	return (from + c.direction + c.seats) % c.seats
}

func (c *Cycler) Reverse() {
	switch c.direction {
	case right:
		c.direction = left
	case left:
		c.direction = right
	}
}

// Clockwise reports whether play currently runs in seating order.
func (c *Cycler) Clockwise() bool {
	return c.direction == right
}
