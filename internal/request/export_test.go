package request

import "time"

// SetClock pins the service clock used for period validation and event
// timestamps.
func SetClock(s Service, now func() time.Time) {
	s.(*service).now = now
}

var (
	ValidatePeriod       = validatePeriod
	CanTransition        = canTransition
	CancellationReversal = cancellationReversal
)
