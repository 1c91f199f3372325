// Copyright (c) 2012 VMware, Inc.

//go:build darwin || freebsd || linux

package fibloop

import (
	"fmt"
	"time"

	"golang.org/x/sys/unix"
)

func (u *Usage) Get() error {
	var ru unix.Rusage
	if err := unix.Getrusage(unix.RUSAGE_SELF, &ru); err != nil {
		return fmt.Errorf("getrusage: %w", err)
	}

	u.User = time.Duration(ru.Utime.Nano())
	u.Sys = time.Duration(ru.Stime.Nano())
	u.MaxResident = uint64(ru.Maxrss) * maxrssUnit

	return nil
}
