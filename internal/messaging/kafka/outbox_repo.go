package kafka

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// OutboxStatus is the delivery state of an outbox row.
type OutboxStatus string

const (
	StatusPending OutboxStatus = "pending"
	StatusSent    OutboxStatus = "sent"
	StatusFailed  OutboxStatus = "failed"
)

const (
	// MaxDeliveryAttempts parks a row once it has failed this many times.
	MaxDeliveryAttempts = 10
	// MaxPendingBatch bounds a single ListPending call.
	MaxPendingBatch = 500

	retryStep = 15 * time.Second
)

var ErrOutboxEventNotFound = errors.New("outbox event not found")

// OutboxEvent is one lifecycle event waiting to be relayed to Kafka.
type OutboxEvent struct {
	ID            string
	RequestID     string
	AggregateType string
	AggregateID   string
	EventType     string
	Topic         string
	Payload       []byte
	Status        OutboxStatus
	Attempts      int
	CreatedAt     time.Time
}

// NewOutboxEvent marshals payload and returns a pending event with a fresh id.
func NewOutboxEvent(topic, aggregateType, aggregateID, eventType, requestID string, payload any) (OutboxEvent, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return OutboxEvent{}, fmt.Errorf("marshal %s payload: %w", eventType, err)
	}
	return OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     requestID,
		AggregateType: aggregateType,
		AggregateID:   aggregateID,
		EventType:     eventType,
		Topic:         topic,
		Payload:       body,
		Status:        StatusPending,
	}, nil
}

//go:generate mockgen -source=outbox_repo.go -destination=mock/outbox_repo_mock.go -package=mock

type OutboxRepository interface {
	WithTx(tx *sql.Tx) OutboxRepository
	Create(ctx context.Context, event OutboxEvent) error
	ListPending(ctx context.Context, limit int) ([]OutboxEvent, error)
	MarkSent(ctx context.Context, id string) error
	MarkFailed(ctx context.Context, id string, reason string) error
}

const (
	insertOutboxSQL = `
INSERT INTO outbox_events (id, request_id, aggregate_type, aggregate_id, event_type, topic, payload, status)
VALUES ($1, NULLIF($2, ''), $3, $4, $5, $6, $7, $8)`

	// Oldest first; rows still inside their back-off window or out of
	// attempts are skipped.
	pendingOutboxSQL = `
SELECT id::text, COALESCE(request_id, ''), aggregate_type, aggregate_id,
	event_type, topic, payload, status, retry_count, created_at
FROM outbox_events
WHERE status IN ($1, $2)
	AND retry_count < $3
	AND (next_retry_at IS NULL OR next_retry_at <= NOW())
ORDER BY created_at ASC
LIMIT $4`

	markSentSQL = `
UPDATE outbox_events
SET status = $2, processed_at = NOW(), error_message = NULL, updated_at = NOW()
WHERE id = $1`

	// Back-off grows by retryStep per failed attempt.
	markFailedSQL = `
UPDATE outbox_events
SET status = $2,
	retry_count = retry_count + 1,
	error_message = LEFT($3, 500),
	next_retry_at = NOW() + make_interval(secs => $4 * (retry_count + 1)),
	updated_at = NOW()
WHERE id = $1`
)

type dbtx interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

type outboxRepository struct {
	db *sql.DB
	tx *sql.Tx
}

func NewOutboxRepository(db *sql.DB) OutboxRepository {
	return &outboxRepository{db: db}
}

func (r *outboxRepository) WithTx(tx *sql.Tx) OutboxRepository {
	return &outboxRepository{db: r.db, tx: tx}
}

func (r *outboxRepository) conn() dbtx {
	if r.tx != nil {
		return r.tx
	}
	return r.db
}

func (r *outboxRepository) Create(ctx context.Context, event OutboxEvent) error {
	if err := ValidateOutboxEvent(event); err != nil {
		return err
	}

	_, err := r.conn().ExecContext(ctx, insertOutboxSQL,
		event.ID, event.RequestID, event.AggregateType, event.AggregateID,
		event.EventType, event.Topic, event.Payload, string(event.Status),
	)
	if err != nil {
		return fmt.Errorf("insert outbox %s: %w", event.EventType, err)
	}
	return nil
}

func (r *outboxRepository) ListPending(ctx context.Context, limit int) ([]OutboxEvent, error) {
	if limit <= 0 || limit > MaxPendingBatch {
		limit = MaxPendingBatch
	}

	rows, err := r.conn().QueryContext(ctx, pendingOutboxSQL,
		string(StatusPending), string(StatusFailed), MaxDeliveryAttempts, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	batch := make([]OutboxEvent, 0, limit)
	for rows.Next() {
		e, err := scanOutboxEvent(rows)
		if err != nil {
			return nil, err
		}
		batch = append(batch, e)
	}
	return batch, rows.Err()
}

func scanOutboxEvent(rows *sql.Rows) (OutboxEvent, error) {
	var (
		e      OutboxEvent
		status string
	)
	err := rows.Scan(
		&e.ID, &e.RequestID, &e.AggregateType, &e.AggregateID,
		&e.EventType, &e.Topic, &e.Payload, &status, &e.Attempts, &e.CreatedAt,
	)
	e.Status = OutboxStatus(status)
	return e, err
}

func (r *outboxRepository) MarkSent(ctx context.Context, id string) error {
	return r.transition(ctx, id, markSentSQL, id, string(StatusSent))
}

func (r *outboxRepository) MarkFailed(ctx context.Context, id string, reason string) error {
	return r.transition(ctx, id, markFailedSQL, id, string(StatusFailed), reason, int(retryStep/time.Second))
}

// transition runs a single-row status update and reports a missing row.
func (r *outboxRepository) transition(ctx context.Context, id, query string, args ...any) error {
	res, err := r.conn().ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrOutboxEventNotFound, id)
	}
	return nil
}

func ValidateOutboxEvent(event OutboxEvent) error {
	switch {
	case event.ID == "":
		return errors.New("outbox id is required")
	case event.Topic == "":
		return errors.New("outbox topic is required")
	case len(event.Payload) == 0:
		return errors.New("outbox payload is required")
	}
	switch event.Status {
	case StatusPending, StatusSent, StatusFailed:
		return nil
	default:
		return fmt.Errorf("invalid outbox status: %s", event.Status)
	}
}
