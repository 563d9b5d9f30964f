package bot

import "time"

type clockSource int

const (
	clockWall     clockSource = iota // seconds since the bot was created
	clockExternal                    // last value from SetPlaylayerTime
	clockTicks                       // accumulated OnUpdate deltas
)

// clock follows whichever time source the host provided most recently
type clock struct {
	source    clockSource
	now       float64
	setByHost bool // external time arrived since the last update tick
	wallNow   func() time.Time
	wallStart time.Time
}

func newClock(wallNow func() time.Time) clock {
	return clock{
		source:    clockWall,
		wallNow:   wallNow,
		wallStart: wallNow(),
	}
}

func (c *clock) seconds() float64 {
	if c.source == clockWall {
		return c.wallNow().Sub(c.wallStart).Seconds()
	}
	return c.now
}

func (c *clock) set(t float64) {
	c.now = t
	c.source = clockExternal
	c.setByHost = true
}

// tick advances by dt unless the host already supplied time this tick
func (c *clock) tick(dt float64) {
	if c.setByHost {
		c.setByHost = false
		return
	}
	if !(dt >= 0) {
		return
	}
	if c.source == clockWall {
		c.now = c.seconds()
	}
	c.now += dt
	c.source = clockTicks
}
