package timer

import (
	"time"

	domainTimer "github.com/t-aoki/kumitate/domain/system/timer"
)

type Timer struct{}

func NewTimer() domainTimer.ITimer {
	return &Timer{}
}

func (t *Timer) Now() time.Time {
	return time.Now()
}
