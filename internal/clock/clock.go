// Package clock provides the in-game calendar that drives the daily tick.
// Time is kept in military format (0600–2559): a game day starts at 0600
// and any value reaching 2600 wraps to 0600 of the next day. Real time is
// accumulated at a fixed ratio and converted into whole 10-minute steps.
package clock

import "fmt"

// DayStart is the time of day every new day begins at.
const DayStart = 600

// dayEnd is the exclusive upper bound; reaching it rolls the day over.
const dayEnd = 2600

// Clock is the process calendar. One instance is owned by the orchestrator;
// it is never ambient global state.
type Clock struct {
	Day       int  `json:"day"`         // 1-based
	TimeOfDay int  `json:"time_of_day"` // Military format, 0600–2559
	Paused    bool `json:"paused"`

	secondsPerTenMinutes float64
	accum                float64

	// Subscribers, fired in registration order after state settles.
	onMinute     []func(timeOfDay int)
	onDayChanged []func(day int)
}

// New creates a clock at day 1, 0600, using the given real-seconds per
// 10 game minutes ratio.
func New(secondsPerTenMinutes float64) *Clock {
	return &Clock{
		Day:                  1,
		TimeOfDay:            DayStart,
		secondsPerTenMinutes: secondsPerTenMinutes,
	}
}

// SubscribeMinute registers a callback fired after every minute advance.
func (c *Clock) SubscribeMinute(fn func(timeOfDay int)) {
	c.onMinute = append(c.onMinute, fn)
}

// SubscribeDay registers a callback fired after every day rollover.
func (c *Clock) SubscribeDay(fn func(day int)) {
	c.onDayChanged = append(c.onDayChanged, fn)
}

// Advance accumulates elapsed real seconds and, while unpaused, converts
// every whole ratio interval into a 10-minute game step.
func (c *Clock) Advance(elapsedSeconds float64) {
	if c.Paused {
		return
	}
	c.accum += elapsedSeconds
	for c.accum >= c.secondsPerTenMinutes {
		c.accum -= c.secondsPerTenMinutes
		c.AdvanceMinutes(10)
	}
}

// AdvanceMinutes adds n game minutes, rolling minute overflow into hours
// and hour overflow into the next day at 0600. Fires the minute
// subscribers with the settled time, then the day subscribers if the day
// rolled over.
func (c *Clock) AdvanceMinutes(n int) {
	hours := c.TimeOfDay / 100
	minutes := c.TimeOfDay%100 + n
	for minutes >= 60 {
		minutes -= 60
		hours++
	}
	c.TimeOfDay = hours*100 + minutes

	dayChanged := false
	if c.TimeOfDay >= dayEnd {
		c.Day++
		c.TimeOfDay = DayStart
		dayChanged = true
	}

	for _, fn := range c.onMinute {
		fn(c.TimeOfDay)
	}
	if dayChanged {
		for _, fn := range c.onDayChanged {
			fn(c.Day)
		}
	}
}

// ForceNewDay rolls directly to the next day at 0600, bypassing minute
// accumulation. Used by explicit sleep actions; always fires the day
// subscribers.
func (c *Clock) ForceNewDay() {
	c.Day++
	c.TimeOfDay = DayStart
	c.accum = 0
	for _, fn := range c.onDayChanged {
		fn(c.Day)
	}
}

// SetTime restores clock state directly without firing any subscribers.
// Loading restores, it does not advance.
func (c *Clock) SetTime(day, timeOfDay int) {
	if day < 1 {
		day = 1
	}
	c.Day = day
	c.TimeOfDay = timeOfDay
	c.accum = 0
}

// TimeString formats the time of day for the presentation layer,
// e.g. "6:00 AM", "1:30 PM", "12:10 AM" (past midnight).
func (c *Clock) TimeString() string {
	hours := c.TimeOfDay / 100
	minutes := c.TimeOfDay % 100

	display := hours % 24
	suffix := "AM"
	if display >= 12 {
		suffix = "PM"
	}
	h12 := display % 12
	if h12 == 0 {
		h12 = 12
	}
	return fmt.Sprintf("%d:%02d %s", h12, minutes, suffix)
}
