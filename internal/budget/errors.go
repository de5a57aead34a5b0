package budget

import (
	"errors"
	"fmt"

	"agcost/internal/model"
)

// Validation failures detected before any arithmetic is performed.
// Each is fatal for its scenario; no partial result is ever returned.
var (
	// ErrUnknownRoleTier means a scenario definition references a role
	// tier absent from the rate table.
	ErrUnknownRoleTier = errors.New("unknown role tier")

	// ErrZeroStaff means a scenario definition has no staff at all, so
	// per-employee ratios are undefined.
	ErrZeroStaff = errors.New("scenario has zero staff")

	// ErrInvalidRate means a negative rate, salary, budget, or
	// headcount was supplied.
	ErrInvalidRate = errors.New("invalid rate")
)

// ScenarioError couples a failed scenario with its cause so the
// reporter can surface the offending scenario by name.
type ScenarioError struct {
	Scenario model.ScenarioName
	Err      error
}

func (e ScenarioError) Error() string {
	return fmt.Sprintf("scenario %s: %v", e.Scenario, e.Err)
}

func (e ScenarioError) Unwrap() error {
	return e.Err
}
