// Copyright (c) 2012 VMware, Inc.

package fibloop

import (
	"errors"
	"time"
)

var ErrNotImplemented = errors.New("fibloop: not implemented")

// Usage is the resource consumption of the calling process. MaxResident
// is the peak resident set size in bytes, 0 where the platform cannot
// report it.
type Usage struct {
	User        time.Duration
	Sys         time.Duration
	MaxResident uint64
}

func (u Usage) Total() time.Duration {
	return u.User + u.Sys
}

// Delta returns the CPU time spent since prev. MaxResident is a high-water
// mark, so it is carried over rather than subtracted.
func (u Usage) Delta(prev Usage) Usage {
	return Usage{
		User:        u.User - prev.User,
		Sys:         u.Sys - prev.Sys,
		MaxResident: u.MaxResident,
	}
}

// CPUPercent is CPU time as a share of wall, 100 meaning one fully busy core.
func (u Usage) CPUPercent(wall time.Duration) float64 {
	if wall <= 0 {
		return 0
	}
	return float64(u.Total()) / float64(wall) * 100
}
