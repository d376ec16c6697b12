package kafka

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestNewOutboxEvent(t *testing.T) {
	ev, err := NewOutboxEvent("employees.lifecycle.v1", "employee", "7", "employee.created", "rid-1",
		map[string]any{"employee_id": 7})

	assert.NoError(t, err)
	assert.NotEmpty(t, ev.ID)
	assert.Equal(t, StatusPending, ev.Status)
	assert.Equal(t, "rid-1", ev.RequestID)
	assert.JSONEq(t, `{"employee_id":7}`, string(ev.Payload))
	assert.NoError(t, ValidateOutboxEvent(ev))
}

func TestNewOutboxEvent_MarshalError(t *testing.T) {
	_, err := NewOutboxEvent("t", "employee", "1", "employee.created", "", make(chan int))

	assert.Error(t, err)
}

func TestValidateOutboxEvent(t *testing.T) {
	base := OutboxEvent{ID: "id", Topic: "t", Payload: []byte(`{}`), Status: StatusPending}

	noID := base
	noID.ID = ""
	assert.EqualError(t, ValidateOutboxEvent(noID), "outbox id is required")

	noTopic := base
	noTopic.Topic = ""
	assert.EqualError(t, ValidateOutboxEvent(noTopic), "outbox topic is required")

	noPayload := base
	noPayload.Payload = nil
	assert.EqualError(t, ValidateOutboxEvent(noPayload), "outbox payload is required")

	badStatus := base
	badStatus.Status = "lost"
	assert.EqualError(t, ValidateOutboxEvent(badStatus), "invalid outbox status: lost")
}

func TestOutboxRepository_CreateInTx(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	ev := OutboxEvent{
		ID: "e1", RequestID: "rid", AggregateType: "employee", AggregateID: "7",
		EventType: "employee.created", Topic: "employees.lifecycle.v1",
		Payload: []byte(`{}`), Status: StatusPending,
	}

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO outbox_events")).
		WithArgs(ev.ID, ev.RequestID, ev.AggregateType, ev.AggregateID, ev.EventType, ev.Topic, ev.Payload, "pending").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	tx, err := db.BeginTx(context.Background(), nil)
	assert.NoError(t, err)

	repo := NewOutboxRepository(db).WithTx(tx)
	assert.NoError(t, repo.Create(context.Background(), ev))
	assert.NoError(t, tx.Commit())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxRepository_CreateRejectsInvalid(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	err = NewOutboxRepository(db).Create(context.Background(), OutboxEvent{})

	assert.EqualError(t, err, "outbox id is required")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxRepository_ListPending(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.NewRows([]string{
		"id", "request_id", "aggregate_type", "aggregate_id", "event_type",
		"topic", "payload", "status", "retry_count", "created_at",
	}).AddRow("e1", "rid", "employee", "7", "employee.created",
		"employees.lifecycle.v1", []byte(`{}`), "failed", 3, now)

	mock.ExpectQuery(regexp.QuoteMeta("AND retry_count < $3")).
		WithArgs("pending", "failed", MaxDeliveryAttempts, 10).
		WillReturnRows(rows)

	events, err := NewOutboxRepository(db).ListPending(context.Background(), 10)

	assert.NoError(t, err)
	assert.Len(t, events, 1)
	assert.Equal(t, "e1", events[0].ID)
	assert.Equal(t, "rid", events[0].RequestID)
	assert.Equal(t, "7", events[0].AggregateID)
	assert.Equal(t, StatusFailed, events[0].Status)
	assert.Equal(t, 3, events[0].Attempts)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxRepository_ListPending_ClampsLimit(t *testing.T) {
	for _, limit := range []int{0, -1, MaxPendingBatch + 1} {
		db, mock, err := sqlmock.New()
		assert.NoError(t, err)

		mock.ExpectQuery("FROM outbox_events").
			WithArgs("pending", "failed", MaxDeliveryAttempts, MaxPendingBatch).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		events, err := NewOutboxRepository(db).ListPending(context.Background(), limit)

		assert.NoError(t, err)
		assert.Empty(t, events)
		assert.NoError(t, mock.ExpectationsWereMet())
		db.Close()
	}
}

func TestOutboxRepository_ListPending_QueryError(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("FROM outbox_events").WillReturnError(errors.New("boom"))

	_, err = NewOutboxRepository(db).ListPending(context.Background(), 10)

	assert.EqualError(t, err, "boom")
}

func TestOutboxRepository_MarkSentAndFailed(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta("processed_at = NOW()")).
		WithArgs("e1", "sent").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("retry_count = retry_count + 1")).
		WithArgs("e2", "failed", "broker down", 15).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := NewOutboxRepository(db)
	assert.NoError(t, repo.MarkSent(context.Background(), "e1"))
	assert.NoError(t, repo.MarkFailed(context.Background(), "e2", "broker down"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxRepository_MarkSent_MissingRow(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("UPDATE outbox_events").
		WithArgs("gone", "sent").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = NewOutboxRepository(db).MarkSent(context.Background(), "gone")

	assert.ErrorIs(t, err, ErrOutboxEventNotFound)
	assert.Contains(t, err.Error(), "gone")
}
