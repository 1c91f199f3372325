// Copyright (c) 2012 VMware, Inc.

//go:build !darwin && !freebsd && !linux && !windows

package fibloop

func (u *Usage) Get() error {
	return ErrNotImplemented
}
