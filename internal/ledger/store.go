package ledger

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/finleyross14/PeakOrderApp/internal/domain"
	"github.com/finleyross14/PeakOrderApp/pkg/money"
)

// Store is the in-memory ledger: the single source of truth for users,
// events, donations, guesses, and pro-access grants when no database is
// configured. It is an explicit, injectable object owned by the composition
// root; nothing in the process reaches it through globals.
//
// One mutex serializes every mutation. The duplicate-guess check and the
// paid-flag flips are check-then-act sequences, so per-operation locking is
// load-bearing, not ceremony.
type Store struct {
	mu  sync.Mutex
	now func() time.Time

	users     map[string]domain.User
	events    []domain.Event
	donations []domain.Donation
	guesses   []domain.Guess
	proAccess []domain.ProAccess
	charities []domain.Charity
	history   []domain.HistoricalDataPoint
}

var _ domain.Store = (*Store)(nil)

// New creates an empty ledger. A nil clock defaults to time.Now; tests
// inject a fixed clock.
func New(now func() time.Time) *Store {
	if now == nil {
		now = time.Now
	}
	return &Store{
		now:   now,
		users: make(map[string]domain.User),
	}
}

func (s *Store) CreateUser(_ context.Context, user *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = s.now()
	}
	if user.Role == "" {
		user.Role = domain.UserRoleUser
	}
	s.users[user.ID] = *user
	return nil
}

func (s *Store) GetUser(_ context.Context, id string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &user, nil
}

func (s *Store) CreateEvent(_ context.Context, event *domain.Event) error {
	if err := event.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.CreatedAt.IsZero() {
		event.CreatedAt = s.now()
	}
	// New events always start pending; activation is a separate admin step.
	event.IsActive = false
	event.FinalPeakOrders = nil
	s.events = append(s.events, *event)
	return nil
}

func (s *Store) GetEvent(_ context.Context, id string) (*domain.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.events {
		if s.events[i].ID == id {
			ev := s.events[i]
			return &ev, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *Store) ActiveEvent(_ context.Context) (*domain.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.events {
		if s.events[i].IsActive {
			ev := s.events[i]
			return &ev, nil
		}
	}
	return nil, domain.ErrNoActiveEvent
}

func (s *Store) ListEvents(_ context.Context) ([]domain.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Event(nil), s.events...), nil
}

func (s *Store) ActivateEvent(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	target := -1
	for i := range s.events {
		if s.events[i].ID == id {
			target = i
		} else if s.events[i].IsActive {
			return domain.ErrActiveEventExists
		}
	}
	if target < 0 {
		return domain.ErrNotFound
	}
	s.events[target].IsActive = true
	return nil
}

func (s *Store) SetFinalPeakOrders(_ context.Context, id string, value int64) error {
	if value <= 0 {
		return domain.NewValidationError("final_peak_orders", "final peak orders must be a positive number")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.events {
		if s.events[i].ID != id {
			continue
		}
		if s.events[i].FinalPeakOrders != nil {
			return domain.ErrEventFinalized
		}
		v := value
		s.events[i].FinalPeakOrders = &v
		return nil
	}
	return domain.ErrNotFound
}

func (s *Store) CreateDonation(_ context.Context, donation *domain.Donation) error {
	if err := donation.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.eventExists(donation.EventID) {
		return domain.ErrNotFound
	}
	if donation.ID == "" {
		donation.ID = uuid.NewString()
	}
	if donation.CreatedAt.IsZero() {
		donation.CreatedAt = s.now()
	}
	donation.IsPaid = false
	s.donations = append(s.donations, *donation)
	return nil
}

func (s *Store) GetDonation(_ context.Context, id string) (*domain.Donation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.donations {
		if s.donations[i].ID == id {
			d := s.donations[i]
			return &d, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *Store) ListEventDonations(_ context.Context, eventID string) ([]domain.Donation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var result []domain.Donation
	for _, d := range s.donations {
		if d.EventID == eventID {
			result = append(result, d)
		}
	}
	return result, nil
}

func (s *Store) ListUserEventDonations(_ context.Context, userID, eventID string) ([]domain.Donation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var result []domain.Donation
	for _, d := range s.donations {
		if d.UserID == userID && d.EventID == eventID {
			result = append(result, d)
		}
	}
	return result, nil
}

func (s *Store) SetDonationPaid(_ context.Context, id string, paid bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.donations {
		if s.donations[i].ID == id {
			s.donations[i].IsPaid = paid
			return nil
		}
	}
	return domain.ErrNotFound
}

func (s *Store) CreateGuess(_ context.Context, guess *domain.Guess) error {
	if err := guess.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	event := s.findEvent(guess.EventID)
	if event == nil {
		return domain.ErrNotFound
	}
	for _, g := range s.guesses {
		if g.UserID == guess.UserID && g.EventID == guess.EventID {
			return domain.ErrDuplicateGuess
		}
	}
	if guess.ID == "" {
		guess.ID = uuid.NewString()
	}
	if guess.CreatedAt.IsZero() {
		guess.CreatedAt = s.now()
	}
	// The entry fee seeds the guess's running donation total.
	guess.TotalDonationCents = event.EntryFeeCents
	guess.IsPaid = false
	s.guesses = append(s.guesses, *guess)
	return nil
}

func (s *Store) GetGuess(_ context.Context, id string) (*domain.Guess, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.guesses {
		if s.guesses[i].ID == id {
			g := s.guesses[i]
			return &g, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *Store) GetUserEventGuess(_ context.Context, userID, eventID string) (*domain.Guess, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.guesses {
		if s.guesses[i].UserID == userID && s.guesses[i].EventID == eventID {
			g := s.guesses[i]
			return &g, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *Store) ListEventGuesses(_ context.Context, eventID string) ([]domain.Guess, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var result []domain.Guess
	for _, g := range s.guesses {
		if g.EventID == eventID {
			result = append(result, g)
		}
	}
	return result, nil
}

func (s *Store) AddGuessDonation(_ context.Context, id string, amount money.Cents) error {
	if amount <= 0 {
		return domain.NewValidationError("amount_cents", "amount must be positive")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.guesses {
		if s.guesses[i].ID == id {
			s.guesses[i].TotalDonationCents += amount
			return nil
		}
	}
	return domain.ErrNotFound
}

func (s *Store) SetGuessPaid(_ context.Context, id string, paid bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.guesses {
		if s.guesses[i].ID == id {
			s.guesses[i].IsPaid = paid
			return nil
		}
	}
	return domain.ErrNotFound
}

func (s *Store) GrantProAccess(_ context.Context, access *domain.ProAccess) (*domain.ProAccess, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.proAccess {
		if s.proAccess[i].UserID == access.UserID && s.proAccess[i].EventID == access.EventID {
			existing := s.proAccess[i]
			return &existing, nil
		}
	}
	if access.ID == "" {
		access.ID = uuid.NewString()
	}
	if access.GrantedAt.IsZero() {
		access.GrantedAt = s.now()
	}
	s.proAccess = append(s.proAccess, *access)
	granted := *access
	return &granted, nil
}

func (s *Store) GetProAccess(_ context.Context, userID, eventID string) (*domain.ProAccess, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.proAccess {
		if s.proAccess[i].UserID == userID && s.proAccess[i].EventID == eventID {
			access := s.proAccess[i]
			return &access, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *Store) ListCharities(_ context.Context) ([]domain.Charity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Charity(nil), s.charities...), nil
}

func (s *Store) ListHistory(_ context.Context) ([]domain.HistoricalDataPoint, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.HistoricalDataPoint(nil), s.history...), nil
}

// callers must hold s.mu
func (s *Store) findEvent(id string) *domain.Event {
	for i := range s.events {
		if s.events[i].ID == id {
			return &s.events[i]
		}
	}
	return nil
}

func (s *Store) eventExists(id string) bool {
	return s.findEvent(id) != nil
}
