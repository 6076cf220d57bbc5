package repo

import (
	"context"

	"github.com/finleyross14/PeakOrderApp/internal/domain"
	"github.com/finleyross14/PeakOrderApp/internal/sqlinline"
)

func (s *PG) GrantProAccess(ctx context.Context, access *domain.ProAccess) (*domain.ProAccess, error) {
	exists, err := s.eventExists(ctx, access.EventID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}
	granted := domain.ProAccess{EventID: access.EventID, UserID: access.UserID}
	row := s.db.QueryRow(ctx, sqlinline.QUpsertProAccess, access.EventID, access.UserID)
	if err := row.Scan(&granted.ID, &granted.GrantedAt); err != nil {
		return nil, err
	}
	return &granted, nil
}

func (s *PG) GetProAccess(ctx context.Context, userID, eventID string) (*domain.ProAccess, error) {
	var access domain.ProAccess
	row := s.db.QueryRow(ctx, sqlinline.QSelectProAccess, userID, eventID)
	if err := row.Scan(&access.ID, &access.EventID, &access.UserID, &access.GrantedAt); err != nil {
		return nil, translateNoRows(err)
	}
	return &access, nil
}
