package shop

import (
	"context"

	"go.uber.org/zap"

	"grocer-be/internal/user"
	"grocer-be/internal/view"
)

// Login always succeeds: the identity provider does not check credentials.
func (m *Manager) Login(ctx context.Context, email, password string) error {
	s, err := m.identity.Login(ctx, email, password)
	if err != nil {
		return err
	}
	return m.startSession(ctx, "Login", s, MsgLoggedIn)
}

func (m *Manager) Signup(ctx context.Context, name, email, password string) error {
	s, err := m.identity.Signup(ctx, name, email, password)
	if err != nil {
		return err
	}
	return m.startSession(ctx, "Signup", s, MsgSignedUp)
}

func (m *Manager) startSession(ctx context.Context, method string, s user.Session, message string) error {
	if err := m.write(ctx, KeyUserData, s); err != nil {
		return err
	}
	m.session = &s

	m.renderNav()
	m.notify(ctx, message)
	m.navigate(ctx, view.TargetHome, false)

	m.log(ctx, method).Info("session started", zap.String("session_id", s.ID))
	return nil
}

func (m *Manager) Logout(ctx context.Context) error {
	if err := m.remove(ctx, KeyUserData); err != nil {
		return err
	}
	m.session = nil

	m.renderNav()
	m.notify(ctx, MsgLoggedOut)
	m.navigate(ctx, view.TargetHome, false)

	m.log(ctx, "Logout").Info("session ended")
	return nil
}
