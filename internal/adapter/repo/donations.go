package repo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/finleyross14/PeakOrderApp/internal/domain"
	"github.com/finleyross14/PeakOrderApp/internal/sqlinline"
)

func (s *PG) CreateDonation(ctx context.Context, donation *domain.Donation) error {
	if err := donation.Validate(); err != nil {
		return err
	}
	exists, err := s.eventExists(ctx, donation.EventID)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrNotFound
	}
	donation.IsPaid = false
	row := s.db.QueryRow(ctx, sqlinline.QInsertDonation,
		donation.UserID, donation.EventID, int64(donation.AmountCents),
		string(donation.PaymentMethod), donation.PaymentNote, donation.UserName)
	return row.Scan(&donation.ID, &donation.CreatedAt)
}

func (s *PG) GetDonation(ctx context.Context, id string) (*domain.Donation, error) {
	donation, err := scanDonation(s.db.QueryRow(ctx, sqlinline.QSelectDonationByID, id))
	if err != nil {
		return nil, translateNoRows(err)
	}
	return donation, nil
}

func (s *PG) ListEventDonations(ctx context.Context, eventID string) ([]domain.Donation, error) {
	return s.listDonations(ctx, sqlinline.QListEventDonations, eventID)
}

func (s *PG) ListUserEventDonations(ctx context.Context, userID, eventID string) ([]domain.Donation, error) {
	return s.listDonations(ctx, sqlinline.QListUserEventDonations, userID, eventID)
}

func (s *PG) SetDonationPaid(ctx context.Context, id string, paid bool) error {
	var updated string
	err := s.db.QueryRow(ctx, sqlinline.QSetDonationPaid, id, paid).Scan(&updated)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound
	}
	return err
}

func (s *PG) listDonations(ctx context.Context, query string, args ...any) ([]domain.Donation, error) {
	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var donations []domain.Donation
	for rows.Next() {
		donation, err := scanDonation(rows)
		if err != nil {
			return nil, err
		}
		donations = append(donations, *donation)
	}
	return donations, rows.Err()
}

func scanDonation(row pgx.Row) (*domain.Donation, error) {
	var donation domain.Donation
	err := row.Scan(&donation.ID, &donation.UserID, &donation.EventID,
		&donation.AmountCents, &donation.PaymentMethod, &donation.PaymentNote,
		&donation.UserName, &donation.IsPaid, &donation.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &donation, nil
}
