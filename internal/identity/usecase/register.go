package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/claroapp/claro-api/internal/identity/entity"
	"github.com/claroapp/claro-api/internal/pkg/goerror"
)

type RegisterInput struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required,password"`
}

// Register creates an account with a bcrypt-digested password. Duplicate
// emails are detected by the unique-violation on save rather than a prior
// lookup, so concurrent registrations of the same email cannot race past
// each other.
func (s *Usecase) Register(ctx context.Context, in RegisterInput) error {
	ctx, span := s.startSpan(ctx, "Register")
	defer span.End()

	in.Email = strings.TrimSpace(strings.ToLower(in.Email))

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	hashedPassword, err := s.bcrypt.Hash(in.Password)
	if err != nil {
		slog.ErrorContext(ctx, "failed to hash password", "error", err)
		return goerror.NewServer(err)
	}

	user := entity.User{
		ID:        s.uid.Generate(),
		Email:     in.Email,
		Password:  string(hashedPassword),
		CreatedAt: s.clock.Now(),
	}

	if err := s.repoDB.CreateUser(ctx, user); err != nil {
		if errors.Is(err, goerror.ErrConflict) {
			slog.WarnContext(ctx, "email already registered", "email", in.Email)
			return goerror.NewBusiness("Email already registered", goerror.CodeConflict)
		}

		slog.ErrorContext(ctx, "failed to repo create user", "email", in.Email, "error", err)
		return goerror.NewServer(err)
	}

	return nil
}
