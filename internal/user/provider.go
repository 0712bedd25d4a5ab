package user

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"grocer-be/internal/logger"
)

// DemoName is the name the stub gives every login, there being no account
// store to look one up in.
const DemoName = "John Doe"

// IdentityProvider turns credentials into a session. A real provider would
// verify them; StubProvider, the only implementation, does not.
type IdentityProvider interface {
	Login(ctx context.Context, email, password string) (Session, error)
	Signup(ctx context.Context, name, email, password string) (Session, error)
}

// StubProvider accepts any email/password pair. Passwords are discarded.
type StubProvider struct {
	newID func() string
}

func NewStubProvider() *StubProvider {
	return &StubProvider{newID: func() string { return uuid.NewString() }}
}

func (p *StubProvider) Login(ctx context.Context, email, _ string) (Session, error) {
	s := Session{ID: p.newID(), Name: DemoName, Email: strings.TrimSpace(email)}

	logger.FromCtx(ctx).Info("stub login accepted",
		zap.String("layer", "identity"),
		zap.String("session_id", s.ID),
	)
	return s, nil
}

func (p *StubProvider) Signup(ctx context.Context, name, email, _ string) (Session, error) {
	s := Session{ID: p.newID(), Name: strings.TrimSpace(name), Email: strings.TrimSpace(email)}

	logger.FromCtx(ctx).Info("stub signup accepted",
		zap.String("layer", "identity"),
		zap.String("session_id", s.ID),
	)
	return s, nil
}
