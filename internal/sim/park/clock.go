package park

import "fmt"

// Minutes advanced per tick. Daytime runs fine-grained so park hours feel
// long; nights fast-forward.
const (
	dayMinutesPerTick   = 0.25
	nightMinutesPerTick = 3.0
	dayStartHour        = 7
	dayEndHour          = 18
	daysPerMonth        = 30
	monthsPerYear       = 12
)

// Clock is the in-park calendar.
type Clock struct {
	Minute float64
	Hour   int
	Day    int
	Month  int
	Year   int
}

func NewClock() Clock {
	return Clock{Minute: 0, Hour: 9, Day: 1, Month: 3, Year: 1}
}

// Advance moves the calendar by one tick, cascading rollovers.
func (c *Clock) Advance() {
	step := nightMinutesPerTick
	if c.Hour >= dayStartHour && c.Hour < dayEndHour {
		step = dayMinutesPerTick
	}
	c.Minute += step
	if c.Minute >= 60 {
		c.Minute -= 60
		c.Hour++
	}
	if c.Hour >= 24 {
		c.Hour = 0
		c.Day++
	}
	if c.Day > daysPerMonth {
		c.Day = 1
		c.Month++
	}
	if c.Month > monthsPerYear {
		c.Month = 1
		c.Year++
	}
}

var monthNames = [...]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

func (c Clock) String() string {
	name := "?"
	if c.Month >= 1 && c.Month <= monthsPerYear {
		name = monthNames[c.Month-1]
	}
	return fmt.Sprintf("Year %d, %s %d, %02d:%02d", c.Year, name, c.Day, c.Hour, int(c.Minute))
}
