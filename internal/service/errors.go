package service

import "fmt"

// AggregationError reports an inner fetch failure of an aggregate that does
// not degrade to an empty result
type AggregationError struct {
	Aggregate string
	Step      string
	Err       error
}

func (e *AggregationError) Error() string {
	return fmt.Sprintf("%s: failed to %s: %v", e.Aggregate, e.Step, e.Err)
}

func (e *AggregationError) Unwrap() error {
	return e.Err
}
