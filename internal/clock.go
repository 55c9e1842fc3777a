package internal

import "time"

// Clock is the time source for dates written to the books, pinned to the shop's
// time zone so that "today" means the same day on every terminal.
type Clock struct {
	Location *time.Location
	now      func() time.Time
}

func NewClock(loc *time.Location) *Clock {
	if loc == nil {
		loc = time.Local
	}
	return &Clock{Location: loc, now: time.Now}
}

// NewFixedClock always reports t. Used by tests and replays.
func NewFixedClock(t time.Time) *Clock {
	return &Clock{Location: t.Location(), now: func() time.Time { return t }}
}

func (c *Clock) Now() time.Time {
	return c.now().In(c.Location)
}

func (c *Clock) Set(t time.Time) {
	c.now = func() time.Time { return t }
}

func (c *Clock) StartOfDay(t time.Time) time.Time {
	t = t.In(c.Location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, c.Location)
}

func (c *Clock) Day(t time.Time) string {
	return t.In(c.Location).Format("20060102")
}
