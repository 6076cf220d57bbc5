package domain

import (
	"context"

	"github.com/finleyross14/PeakOrderApp/pkg/money"
)

// UserRepository defines access methods for session users.
type UserRepository interface {
	CreateUser(ctx context.Context, user *User) error
	GetUser(ctx context.Context, id string) (*User, error)
}

// EventRepository defines persistence for events, including the one-way
// lifecycle transitions (pending -> active -> finalized).
type EventRepository interface {
	CreateEvent(ctx context.Context, event *Event) error
	GetEvent(ctx context.Context, id string) (*Event, error)
	ActiveEvent(ctx context.Context) (*Event, error)
	ListEvents(ctx context.Context) ([]Event, error)
	ActivateEvent(ctx context.Context, id string) error
	SetFinalPeakOrders(ctx context.Context, id string, value int64) error
}

// DonationRepository handles donation persistence. Donations are append-only
// apart from the paid flag.
type DonationRepository interface {
	CreateDonation(ctx context.Context, donation *Donation) error
	GetDonation(ctx context.Context, id string) (*Donation, error)
	ListEventDonations(ctx context.Context, eventID string) ([]Donation, error)
	ListUserEventDonations(ctx context.Context, userID, eventID string) ([]Donation, error)
	SetDonationPaid(ctx context.Context, id string, paid bool) error
}

// GuessRepository handles guess persistence and enforces the one-guess-per-
// user-per-event invariant at the point of insertion.
type GuessRepository interface {
	CreateGuess(ctx context.Context, guess *Guess) error
	GetGuess(ctx context.Context, id string) (*Guess, error)
	GetUserEventGuess(ctx context.Context, userID, eventID string) (*Guess, error)
	ListEventGuesses(ctx context.Context, eventID string) ([]Guess, error)
	AddGuessDonation(ctx context.Context, id string, amount money.Cents) error
	SetGuessPaid(ctx context.Context, id string, paid bool) error
}

// ProAccessRepository handles pro-access grants.
type ProAccessRepository interface {
	GrantProAccess(ctx context.Context, access *ProAccess) (*ProAccess, error)
	GetProAccess(ctx context.Context, userID, eventID string) (*ProAccess, error)
}

// CatalogRepository serves the static reference data: the charity catalog
// and the historical peak-order series behind pro insights.
type CatalogRepository interface {
	ListCharities(ctx context.Context) ([]Charity, error)
	ListHistory(ctx context.Context) ([]HistoricalDataPoint, error)
}

// Store is the full persistence surface the HTTP layer and the CLI depend
// on. The in-memory ledger implements it for demo mode; the PostgreSQL
// adapter implements it when DATABASE_URL is configured.
type Store interface {
	UserRepository
	EventRepository
	DonationRepository
	GuessRepository
	ProAccessRepository
	CatalogRepository
}
