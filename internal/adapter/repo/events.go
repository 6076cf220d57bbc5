package repo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/finleyross14/PeakOrderApp/internal/domain"
	"github.com/finleyross14/PeakOrderApp/internal/sqlinline"
)

func (s *PG) CreateEvent(ctx context.Context, event *domain.Event) error {
	if err := event.Validate(); err != nil {
		return err
	}
	// New events always start pending; activation is a separate admin step.
	event.IsActive = false
	event.FinalPeakOrders = nil
	row := s.db.QueryRow(ctx, sqlinline.QInsertEvent,
		event.Name, event.Description, event.Start, event.End, event.RegistrationOpensAt,
		int64(event.EntryFeeCents), int64(event.ProFeeCents), event.CharityIDs, event.CreatedBy)
	return row.Scan(&event.ID, &event.CreatedAt)
}

func (s *PG) GetEvent(ctx context.Context, id string) (*domain.Event, error) {
	event, err := scanEvent(s.db.QueryRow(ctx, sqlinline.QSelectEventByID, id))
	if err != nil {
		return nil, translateNoRows(err)
	}
	return event, nil
}

func (s *PG) ActiveEvent(ctx context.Context) (*domain.Event, error) {
	event, err := scanEvent(s.db.QueryRow(ctx, sqlinline.QSelectActiveEvent))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNoActiveEvent
	}
	if err != nil {
		return nil, err
	}
	return event, nil
}

func (s *PG) ListEvents(ctx context.Context) ([]domain.Event, error) {
	rows, err := s.db.Query(ctx, sqlinline.QListEvents)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []domain.Event
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, *event)
	}
	return events, rows.Err()
}

// ActivateEvent promotes a pending event. The update only matches when no
// other event is active, so a zero-row result needs a second probe to tell
// "unknown event" apart from "slot taken".
func (s *PG) ActivateEvent(ctx context.Context, id string) error {
	var activated string
	err := s.db.QueryRow(ctx, sqlinline.QActivateEvent, id).Scan(&activated)
	if errors.Is(err, pgx.ErrNoRows) {
		exists, probeErr := s.eventExists(ctx, id)
		if probeErr != nil {
			return probeErr
		}
		if !exists {
			return domain.ErrNotFound
		}
		return domain.ErrActiveEventExists
	}
	return err
}

func (s *PG) SetFinalPeakOrders(ctx context.Context, id string, value int64) error {
	if value <= 0 {
		return domain.NewValidationError("final_peak_orders", "final peak orders must be a positive number")
	}
	var finalized string
	err := s.db.QueryRow(ctx, sqlinline.QSetFinalPeakOrders, id, value).Scan(&finalized)
	if errors.Is(err, pgx.ErrNoRows) {
		exists, probeErr := s.eventExists(ctx, id)
		if probeErr != nil {
			return probeErr
		}
		if !exists {
			return domain.ErrNotFound
		}
		return domain.ErrEventFinalized
	}
	return err
}

func (s *PG) eventExists(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := s.db.QueryRow(ctx, sqlinline.QEventExists, id).Scan(&exists)
	return exists, err
}

func scanEvent(row pgx.Row) (*domain.Event, error) {
	var event domain.Event
	err := row.Scan(&event.ID, &event.Name, &event.Description,
		&event.Start, &event.End, &event.RegistrationOpensAt,
		&event.EntryFeeCents, &event.ProFeeCents, &event.IsActive,
		&event.CharityIDs, &event.FinalPeakOrders, &event.CreatedBy, &event.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &event, nil
}
