package query

import "time"

const (
	timeout   = time.Second
	shortWait = 50 * time.Millisecond
	tick      = 5 * time.Millisecond
)
