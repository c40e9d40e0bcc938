package postgres

import (
	"context"
	"errors"
	"parimutuel-engine/internal/model"
	"parimutuel-engine/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Ensure implementation satisfies interface at compile time
var _ repository.EventRepository = (*EventRepositoryImpl)(nil)

// EventRepositoryImpl is the PostgreSQL implementation of EventRepository
type EventRepositoryImpl struct {
	*TransactionManager
}

func NewEventRepository(pool *pgxpool.Pool) repository.EventRepository {
	return &EventRepositoryImpl{
		TransactionManager: NewTransactionManager(pool),
	}
}

const eventColumns = `id, event_type, market_id, user_id, stake_id, idempotency_key, external_signature, payload, created_at`

func scanEvent(row pgx.Row) (*model.Event, error) {
	e := &model.Event{}
	err := row.Scan(&e.ID, &e.Type, &e.MarketID, &e.UserID, &e.StakeID, &e.IdempotencyKey, &e.ExternalSignature, &e.Payload, &e.CreatedAt)
	return e, err
}

func (r *EventRepositoryImpl) getEvent(ctx context.Context, column, value string, tx ...pgx.Tx) (*model.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE ` + column + ` = $1`

	e, err := scanEvent(r.getExecutor(tx...).QueryRow(ctx, query, value))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrEventNotFound
		}
		return nil, storageErr("get event", err)
	}
	return e, nil
}

// AppendEvent appends to the Event Log
func (r *EventRepositoryImpl) AppendEvent(ctx context.Context, event *model.Event, tx pgx.Tx) error {
	query := `
        INSERT INTO events (event_type, market_id, user_id, stake_id, idempotency_key, external_signature, payload)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id, created_at`

	payload := event.Payload
	if len(payload) == 0 {
		payload = []byte("{}")
	}

	err := tx.QueryRow(ctx, query, event.Type, event.MarketID, event.UserID, event.StakeID, event.IdempotencyKey,
		event.ExternalSignature, payload).Scan(&event.ID, &event.CreatedAt)
	if err != nil {
		if constraint, ok := isUniqueViolation(err); ok {
			if constraint == "events_external_signature_key" {
				return model.ErrDuplicateSignature
			}
			return model.ErrDuplicateEvent
		}
		return storageErr("append event", err)
	}
	event.Payload = payload
	return nil
}

// GetEventByIdempotencyKey retrieves the event recorded for a client idempotency key
func (r *EventRepositoryImpl) GetEventByIdempotencyKey(ctx context.Context, key string, tx ...pgx.Tx) (*model.Event, error) {
	return r.getEvent(ctx, "idempotency_key", key, tx...)
}

// GetEventBySignature retrieves the event recorded for an external signature
func (r *EventRepositoryImpl) GetEventBySignature(ctx context.Context, signature string, tx ...pgx.Tx) (*model.Event, error) {
	return r.getEvent(ctx, "external_signature", signature, tx...)
}

// ListEventsByMarket retrieves paginated events of a market
func (r *EventRepositoryImpl) ListEventsByMarket(ctx context.Context, marketID string, limit, offset int) ([]*model.Event, error) {
	query := `
        SELECT ` + eventColumns + `
        FROM events WHERE market_id = $1
        ORDER BY id DESC
        LIMIT $2 OFFSET $3`

	rows, err := r.pool.Query(ctx, query, marketID, limit, offset)
	if err != nil {
		return nil, storageErr("query events", err)
	}
	defer rows.Close()

	events := []*model.Event{}
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, storageErr("scan event", err)
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("iterate events", err)
	}
	return events, nil
}

const externalEventColumns = `signature, slot, event_type, market_id, user_id, side, amount, outcome, status, detail, imported_at`

// InsertExternalEvent records an imported event unless its signature was seen before
func (r *EventRepositoryImpl) InsertExternalEvent(ctx context.Context, event *model.ExternalEvent, tx pgx.Tx) (bool, error) {
	query := `
        INSERT INTO external_events (signature, slot, event_type, market_id, user_id, side, amount, outcome, status, detail)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
        ON CONFLICT (signature) DO NOTHING
        RETURNING imported_at`

	err := tx.QueryRow(ctx, query, event.Signature, event.Slot, event.Type, event.MarketID, event.UserID, event.Side,
		event.Amount, event.Outcome, event.Status, event.Detail).Scan(&event.ImportedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, storageErr("insert external event", err)
	}
	return true, nil
}

// GetExternalEvent retrieves an imported event by signature
func (r *EventRepositoryImpl) GetExternalEvent(ctx context.Context, signature string, tx ...pgx.Tx) (*model.ExternalEvent, error) {
	query := `SELECT ` + externalEventColumns + ` FROM external_events WHERE signature = $1`

	e := &model.ExternalEvent{}
	err := r.getExecutor(tx...).QueryRow(ctx, query, signature).Scan(&e.Signature, &e.Slot, &e.Type, &e.MarketID,
		&e.UserID, &e.Side, &e.Amount, &e.Outcome, &e.Status, &e.Detail, &e.ImportedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrExternalEventNotFound
		}
		return nil, storageErr("get external event", err)
	}
	return e, nil
}
