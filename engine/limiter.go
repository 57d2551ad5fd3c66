package engine

import "time"

// Limiter caps the frame rate by sleeping until the next frame deadline.
type Limiter struct {
	interval time.Duration
	next     time.Time

	now   func() time.Time
	sleep func(time.Duration)
}

// NewLimiter returns a limiter for fps frames per second. fps <= 0 disables
// waiting.
func NewLimiter(fps int) *Limiter {
	l := &Limiter{now: time.Now, sleep: time.Sleep}
	if fps > 0 {
		l.interval = time.Second / time.Duration(fps)
	}
	return l
}

func (l *Limiter) Interval() time.Duration {
	return l.interval
}

// Wait blocks until the current frame's deadline. A limiter that fell more
// than a frame behind starts a fresh schedule instead of bursting.
func (l *Limiter) Wait() {
	if l.interval <= 0 {
		return
	}
	now := l.now()
	if l.next.IsZero() || now.Sub(l.next) > l.interval {
		l.next = now
	}
	l.next = l.next.Add(l.interval)
	if d := l.next.Sub(now); d > 0 {
		l.sleep(d)
	}
}
