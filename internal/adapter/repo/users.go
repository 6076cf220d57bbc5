package repo

import (
	"context"

	"github.com/finleyross14/PeakOrderApp/internal/domain"
	"github.com/finleyross14/PeakOrderApp/internal/sqlinline"
)

func (s *PG) CreateUser(ctx context.Context, user *domain.User) error {
	if user.Role == "" {
		user.Role = domain.UserRoleUser
	}
	row := s.db.QueryRow(ctx, sqlinline.QInsertUser,
		user.Name, user.Team, string(user.Role), user.Locale)
	return row.Scan(&user.ID, &user.CreatedAt)
}

func (s *PG) GetUser(ctx context.Context, id string) (*domain.User, error) {
	var user domain.User
	row := s.db.QueryRow(ctx, sqlinline.QSelectUserByID, id)
	if err := row.Scan(&user.ID, &user.Name, &user.Team, &user.Role, &user.Locale, &user.CreatedAt); err != nil {
		return nil, translateNoRows(err)
	}
	return &user, nil
}
