package db

import (
	"context"

	"github.com/claroapp/claro-api/internal/identity/entity"
)

const queryCreateUser = `
INSERT INTO users (id, email, password, created_at)
VALUES ($1, $2, $3, $4)
`

func (s *DB) CreateUser(ctx context.Context, user entity.User) (err error) {
	ctx, span := s.startSpan(ctx, "CreateUser")
	defer func() { s.endSpan(span, err) }()

	_, err = s.conn.Exec(ctx, queryCreateUser, user.ID, user.Email, user.Password, user.CreatedAt)
	return s.mapError(err)
}
