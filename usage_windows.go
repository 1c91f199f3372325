// Copyright (c) 2012 VMware, Inc.

package fibloop

import (
	"fmt"
	"time"

	"golang.org/x/sys/windows"
)

func (u *Usage) Get() error {
	var creation, exit, kernel, user windows.Filetime
	err := windows.GetProcessTimes(windows.CurrentProcess(), &creation, &exit, &kernel, &user)
	if err != nil {
		return fmt.Errorf("GetProcessTimes: %w", err)
	}

	u.User = filetimeDuration(user)
	u.Sys = filetimeDuration(kernel)
	u.MaxResident = 0

	return nil
}

// Filetime durations count 100ns ticks.
func filetimeDuration(ft windows.Filetime) time.Duration {
	return time.Duration(uint64(ft.HighDateTime)<<32|uint64(ft.LowDateTime)) * 100
}
