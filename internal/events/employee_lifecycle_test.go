package events

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEmployeeLifecycleEvent_JSON(t *testing.T) {
	ev := EmployeeLifecycleEvent{
		EventType:  EmployeeCreated,
		RequestID:  "rid-1",
		EmployeeID: 7,
		EmployeeNo: "0315202400007ALWU",
		OccurredAt: time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC),
	}

	b, err := json.Marshal(ev)

	assert.NoError(t, err)
	assert.JSONEq(t, `{
		"event_type":"employee.created",
		"request_id":"rid-1",
		"employee_id":7,
		"employee_no":"0315202400007ALWU",
		"occurred_at":"2024-03-15T10:00:00Z"
	}`, string(b))
}
