package model

import (
	"errors"
	"fmt"
)

// ReviewFailure records a failed review operation for one identity.
type ReviewFailure struct {
	Identity Identity
	Err      error
}

func (f ReviewFailure) Error() string {
	return fmt.Sprintf("%s: %v", f.Identity.Key(), f.Err)
}

func (f ReviewFailure) Unwrap() error {
	return f.Err
}

// ReviewReport aggregates the results of a batch review.
type ReviewReport struct {
	Accepted []Identity
	Rejected []Identity
	Skipped  []Identity
	Failures []ReviewFailure
}

// Err joins all failures, or returns nil when there were none.
func (r ReviewReport) Err() error {
	if len(r.Failures) == 0 {
		return nil
	}

	errs := make([]error, 0, len(r.Failures))
	for _, f := range r.Failures {
		errs = append(errs, f)
	}

	return errors.Join(errs...)
}

// Record adds the result of one decision to the report.
func (r *ReviewReport) Record(id Identity, decision Decision, err error) {
	if err != nil {
		r.Failures = append(r.Failures, ReviewFailure{Identity: id, Err: err})
		return
	}

	switch decision {
	case DecisionAccept:
		r.Accepted = append(r.Accepted, id)
	case DecisionReject:
		r.Rejected = append(r.Rejected, id)
	case DecisionSkip:
		r.Skipped = append(r.Skipped, id)
	}
}
