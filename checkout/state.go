package checkout

import (
	"errors"
	"fmt"
)

// Stage is the orchestrator's position in the checkout sequence. Stages
// advance strictly forward within one run; a failed stage is terminal per
// attempt.
type Stage string

const (
	StageIdle              Stage = "idle"
	StageAddressCapture    Stage = "address_capture"
	StageSubmitting        Stage = "submitting"
	StageNotifyingAdmin    Stage = "notifying_admin"
	StageNotifyingCustomer Stage = "notifying_customer"
	StageClearing          Stage = "clearing"
	StageComplete          Stage = "complete"
)

// ErrRunComplete rejects re-submission of a finished run. A fresh checkout
// starts with Begin against the (now-empty) cart.
var ErrRunComplete = errors.New("checkout run already complete")

// StageError marks a fatal failure at a specific stage. Persistence failures
// at Submitting are the only fatal remote failures: the cart is preserved and
// the shopper may retry.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("checkout failed at %s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// ValidationError carries per-field address errors. The run stays in
// AddressCapture.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid shipping address: %d field(s) missing", len(e.Fields))
}
