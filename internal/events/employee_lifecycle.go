package events

import "time"

const EmployeeLifecycleTopic = "employees.lifecycle.v1"

const (
	EmployeeCreated = "employee.created"
	EmployeeUpdated = "employee.updated"
	EmployeeDeleted = "employee.deleted"
)

// EmployeeAggregate is the outbox aggregate type of employee events.
const EmployeeAggregate = "employee"

type EmployeeLifecycleEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id,omitempty"`
	EmployeeID int64     `json:"employee_id"`
	EmployeeNo string    `json:"employee_no,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}
