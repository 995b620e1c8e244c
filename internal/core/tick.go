package core

import "time"

// DefaultTickRate is the simulation rate in ticks per second.
const DefaultTickRate = 60

// TickInterval returns the time between ticks. Non-positive rates fall back
// to DefaultTickRate.
func TickInterval(rate int) time.Duration {
	if rate <= 0 {
		rate = DefaultTickRate
	}
	return time.Second / time.Duration(rate)
}
