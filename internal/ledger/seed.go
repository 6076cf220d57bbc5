package ledger

import (
	"time"

	"github.com/finleyross14/PeakOrderApp/internal/domain"
)

// LoadDemoData seeds the ledger with the static catalog and one active
// event. Time fields are anchored to the ledger clock so the demo is always
// "live": registration opens an hour after startup and the event runs for a
// week.
func (s *Store) LoadDemoData() {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()

	s.charities = domain.CharityCatalog()
	s.history = domain.HistoricalSeries()

	s.events = append(s.events, domain.Event{
		ID:   "e1",
		Name: "Peak Orders Holiday 2025",
		Description: "Guess the highest number of internet orders we'll hit in a " +
			"single day during the holiday event. Entry is $10, supports charity, " +
			"and you can donate more to climb the leaderboard!",
		Start:               now,
		End:                 now.Add(7 * 24 * time.Hour),
		RegistrationOpensAt: now.Add(time.Hour),
		EntryFeeCents:       1000,
		ProFeeCents:         3000,
		IsActive:            true,
		CharityIDs:          []string{"c1", "c2"},
		CreatedBy:           "leader-1",
		CreatedAt:           now,
	})
}
