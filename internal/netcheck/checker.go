// internal/netcheck/checker.go

package netcheck

import (
	"context"
	"sync/atomic"

	"github.com/vuul/spackle-ssh/internal/models"
)

// Outcome pairs a finished check with the descriptor it probed.
type Outcome struct {
	Descriptor models.ConnectionDescriptor
	Result     Result
}

// Checker runs validations off the interactive path. Every Submit
// supersedes the one before it: a result is delivered only while its
// request is still the latest, so a stale check can never be applied
// after the user has moved on.
type Checker struct {
	validator *Validator
	gen       atomic.Uint64
	results   chan Outcome
}

func NewChecker(v *Validator) *Checker {
	return &Checker{
		validator: v,
		results:   make(chan Outcome, 1),
	}
}

// Submit starts a background check for d.
func (c *Checker) Submit(ctx context.Context, d models.ConnectionDescriptor) {
	gen := c.gen.Add(1)
	go func() {
		res := c.validator.Check(ctx, d)
		if c.gen.Load() != gen {
			return // superseded while in flight
		}
		select {
		case c.results <- Outcome{Descriptor: d, Result: res}:
		default:
			// An unconsumed older outcome is replaced.
			select {
			case <-c.results:
			default:
			}
			select {
			case c.results <- Outcome{Descriptor: d, Result: res}:
			default:
			}
		}
	}()
}

// Results delivers at most the latest outcome.
func (c *Checker) Results() <-chan Outcome {
	return c.results
}
