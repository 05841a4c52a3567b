package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// RunStatus is the overall state of a workflow run.
type RunStatus string

const (
	RunStatusRunning   RunStatus = "running"
	RunStatusSucceeded RunStatus = "succeeded"
	RunStatusFailed    RunStatus = "failed"
)

// StepStatus is the state of one step within a run.
type StepStatus string

const (
	StepStatusPending   StepStatus = "pending"
	StepStatusRunning   StepStatus = "running"
	StepStatusSucceeded StepStatus = "succeeded"
	StepStatusFailed    StepStatus = "failed"
)

// StepState is the checkpoint of one step.
type StepState struct {
	Name       string     `json:"name"`
	Status     StepStatus `json:"status"`
	Attempts   int        `json:"attempts"`
	LastError  string     `json:"lastError,omitempty"`
	StartedAt  *time.Time `json:"startedAt,omitempty"`
	FinishedAt *time.Time `json:"finishedAt,omitempty"`
}

// WorkflowRun is the durable record of one workflow invocation, keyed by
// workflow name and run key. State carries the serialized step outputs.
//
// ClaimToken and ClaimedUntil form the lease of the worker executing the run.
// A nil ClaimedUntil means nobody holds it.
type WorkflowRun struct {
	ID           uuid.UUID
	Workflow     string
	RunKey       string
	Status       RunStatus
	Steps        []StepState
	State        json.RawMessage
	Error        string
	ClaimToken   string
	ClaimedUntil *time.Time
	FinishedAt   *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Step returns the checkpoint for name, or nil when the step never started.
func (r *WorkflowRun) Step(name string) *StepState {
	for i := range r.Steps {
		if r.Steps[i].Name == name {
			return &r.Steps[i]
		}
	}

	return nil
}
