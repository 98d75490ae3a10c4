package ui

import "sync/atomic"

type Stats struct {
	Pages    atomic.Int64
	Viable   atomic.Int64
	Degraded atomic.Int64
	Failed   atomic.Int64
}
