package engine

import (
	"time"
)

// TimeHandler tracks the wall-clock deadline of one search. Once the deadline
// has passed TimeStatus keeps returning true.
type TimeHandler struct {
	start       time.Time
	timeForMove time.Time
	stopSearch  bool
	polls       uint64
}

// StartTime arms the deadline at budget × safety from now.
func (th *TimeHandler) StartTime(budget time.Duration, safety float64) {
	th.start = time.Now()
	th.stopSearch = false
	th.polls = 0
	safety = Clamp(safety, 0, 1)
	th.timeForMove = th.start.Add(time.Duration(float64(Max(budget, 0)) * safety))
}

/*
  - True if we're out of time
  - False if we still got time
*/
func (th *TimeHandler) TimeStatus() bool {
	if th.stopSearch {
		return true
	}
	th.polls++
	if !time.Now().Before(th.timeForMove) {
		th.stopSearch = true
	}
	return th.stopSearch
}

// Polls returns how many times TimeStatus read the clock.
func (th *TimeHandler) Polls() uint64 { return th.polls }

// Elapsed returns the time since StartTime.
func (th *TimeHandler) Elapsed() time.Duration {
	return time.Since(th.start)
}

// Remaining returns the time left before the deadline, never negative.
func (th *TimeHandler) Remaining() time.Duration {
	return Max(time.Until(th.timeForMove), 0)
}
