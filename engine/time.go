package engine

import (
	"fmt"
	"time"
)

// UnixTime scans an integer column holding seconds since the epoch.
type UnixTime struct {
	Time time.Time
}

func (u *UnixTime) Scan(src any) error {
	epoch, ok := src.(int64)
	if !ok {
		return fmt.Errorf("expected int64, got %T", src)
	}

	u.Time = time.Unix(epoch, 0).UTC()
	return nil
}
