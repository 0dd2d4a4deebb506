// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "context"

// FlowLock serialises the flows that read and then write the sync
// checkpoint. Unlike sync.Mutex, waiting for it can be abandoned through the
// context.
type FlowLock struct {
	ch chan struct{}
}

func NewFlowLock() *FlowLock {
	return &FlowLock{ch: make(chan struct{}, 1)}
}

// Lock blocks until the lock is acquired or ctx is done.
func (l *FlowLock) Lock(ctx context.Context) error {
	select {
	case l.ch <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// TryLock acquires the lock only if it is free.
func (l *FlowLock) TryLock() bool {
	select {
	case l.ch <- struct{}{}:
		return true
	default:
		return false
	}
}

func (l *FlowLock) Unlock() {
	select {
	case <-l.ch:
	default:
		panic("service: unlock of unlocked FlowLock")
	}
}
