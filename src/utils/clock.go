package utils

import "time"

// Location is the organization's civil time: fixed UTC+8, no DST.
var Location = time.FixedZone("UTC+8", 8*60*60)

// Clock supplies "now" so duration math is deterministic in tests.
type Clock interface {
	Now() time.Time
}

// RealClock returns wall-clock time in the organization's zone.
type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now().In(Location) }

// FixedClock always returns the same instant. Test helper.
type FixedClock struct{ T time.Time }

func (c FixedClock) Now() time.Time { return c.T.In(Location) }
