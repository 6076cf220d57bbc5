package repo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/finleyross14/PeakOrderApp/internal/domain"
	"github.com/finleyross14/PeakOrderApp/internal/sqlinline"
	"github.com/finleyross14/PeakOrderApp/pkg/money"
)

func (s *PG) CreateGuess(ctx context.Context, guess *domain.Guess) error {
	if err := guess.Validate(); err != nil {
		return err
	}
	exists, err := s.eventExists(ctx, guess.EventID)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrNotFound
	}
	guess.IsPaid = false
	row := s.db.QueryRow(ctx, sqlinline.QInsertGuess,
		guess.EventID, guess.UserID, guess.Value,
		string(guess.PaymentMethod), guess.PaymentNote, guess.CharityID,
		guess.UserName, guess.Team)
	err = row.Scan(&guess.ID, &guess.TotalDonationCents, &guess.CreatedAt)
	if isUniqueViolation(err) {
		return domain.ErrDuplicateGuess
	}
	return err
}

func (s *PG) GetGuess(ctx context.Context, id string) (*domain.Guess, error) {
	guess, err := scanGuess(s.db.QueryRow(ctx, sqlinline.QSelectGuessByID, id))
	if err != nil {
		return nil, translateNoRows(err)
	}
	return guess, nil
}

func (s *PG) GetUserEventGuess(ctx context.Context, userID, eventID string) (*domain.Guess, error) {
	guess, err := scanGuess(s.db.QueryRow(ctx, sqlinline.QSelectUserEventGuess, userID, eventID))
	if err != nil {
		return nil, translateNoRows(err)
	}
	return guess, nil
}

func (s *PG) ListEventGuesses(ctx context.Context, eventID string) ([]domain.Guess, error) {
	rows, err := s.db.Query(ctx, sqlinline.QListEventGuesses, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var guesses []domain.Guess
	for rows.Next() {
		guess, err := scanGuess(rows)
		if err != nil {
			return nil, err
		}
		guesses = append(guesses, *guess)
	}
	return guesses, rows.Err()
}

func (s *PG) AddGuessDonation(ctx context.Context, id string, amount money.Cents) error {
	if amount <= 0 {
		return domain.NewValidationError("amount_cents", "amount must be positive")
	}
	var updated string
	err := s.db.QueryRow(ctx, sqlinline.QAddGuessDonation, id, int64(amount)).Scan(&updated)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound
	}
	return err
}

func (s *PG) SetGuessPaid(ctx context.Context, id string, paid bool) error {
	var updated string
	err := s.db.QueryRow(ctx, sqlinline.QSetGuessPaid, id, paid).Scan(&updated)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound
	}
	return err
}

func scanGuess(row pgx.Row) (*domain.Guess, error) {
	var guess domain.Guess
	err := row.Scan(&guess.ID, &guess.EventID, &guess.UserID, &guess.Value,
		&guess.TotalDonationCents, &guess.PaymentMethod, &guess.PaymentNote,
		&guess.CharityID, &guess.UserName, &guess.Team, &guess.IsPaid, &guess.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &guess, nil
}
