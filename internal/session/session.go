// Package session owns the client-side belief about who is signed in.
//
// The manager is a small state machine over {Resolving, Unauthenticated,
// Authenticated}. Every authentication change writes through the credential
// store before it is published in memory, so a process killed mid-transition
// still finds a consistent credential on the next cold start.
package session

import (
	"context"
	"sync"

	"github.com/barhopapp/barhop/internal/api"
	"github.com/barhopapp/barhop/internal/errors"
	"github.com/barhopapp/barhop/internal/log"
)

// Status is the session state.
type Status int

const (
	// StatusResolving means the credential store has not been consulted yet
	StatusResolving Status = iota
	// StatusUnauthenticated means no valid session exists
	StatusUnauthenticated
	// StatusAuthenticated means a user is signed in
	StatusAuthenticated
)

// String returns the string representation of the status
func (s Status) String() string {
	switch s {
	case StatusResolving:
		return "resolving"
	case StatusUnauthenticated:
		return "unauthenticated"
	case StatusAuthenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// CredentialStore is the durable token storage the manager writes through.
type CredentialStore interface {
	Get(ctx context.Context) (string, error)
	Set(ctx context.Context, token, email string) error
	Clear(ctx context.Context) error
}

// Authenticator is the slice of the API client the manager needs.
type Authenticator interface {
	Login(ctx context.Context, email, password string) (*api.AuthResponse, error)
	Register(ctx context.Context, req api.RegisterRequest) (*api.AuthResponse, error)
	CurrentUser(ctx context.Context) (*api.User, error)
	Logout(ctx context.Context) error
}

// Manager tracks the session state machine.
//
// Methods are safe for concurrent use, but overlapping mutating calls are
// not serialized against each other; the UI disables the triggering control
// while an operation is in flight.
type Manager struct {
	store  CredentialStore
	client Authenticator
	logger *log.Logger

	mu     sync.RWMutex
	status Status
	user   *api.User
}

// NewManager creates a session manager in the Resolving state.
func NewManager(store CredentialStore, client Authenticator) *Manager {
	m := &Manager{
		store:  store,
		client: client,
		logger: log.DefaultLogger().With("component", "session"),
		status: StatusResolving,
	}
	setCurrentUser(nil)
	return m
}

// Status returns the current session status.
func (m *Manager) Status() Status {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.status
}

// User returns the signed-in user, or nil unless the status is
// Authenticated. The returned value is a copy.
func (m *Manager) User() *api.User {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.user == nil {
		return nil
	}
	u := *m.user
	return &u
}

// publish updates the in-memory state and the global snapshot together.
// Callers must have already completed the corresponding store write.
func (m *Manager) publish(status Status, user *api.User) {
	m.mu.Lock()
	m.status = status
	if user == nil {
		m.user = nil
	} else {
		u := *user
		m.user = &u
	}
	m.mu.Unlock()

	setCurrentUser(user)
}

// Resolve consults the credential store once and settles the session out of
// the Resolving state. With no stored token the session is simply
// unauthenticated. With a token, the profile fetch decides: success
// authenticates, a rejected token clears the store and signs out, and a
// transport failure signs out for now but leaves the token in place so a
// later cold start can try again.
func (m *Manager) Resolve(ctx context.Context) error {
	token, err := m.store.Get(ctx)
	if err != nil {
		// A broken store reads as signed out rather than crashing the app.
		m.logger.WithError(err).Warn("credential read failed during resolve")
		m.publish(StatusUnauthenticated, nil)
		return nil
	}

	if token == "" {
		m.publish(StatusUnauthenticated, nil)
		return nil
	}

	user, err := m.client.CurrentUser(ctx)
	if err != nil {
		if errors.IsCode(err, errors.ErrCodeAuthExpired) {
			if clearErr := m.store.Clear(ctx); clearErr != nil {
				m.logger.WithError(clearErr).Warn("failed to clear rejected credential")
			}
			m.publish(StatusUnauthenticated, nil)
			return nil
		}

		m.publish(StatusUnauthenticated, nil)
		return err
	}

	m.publish(StatusAuthenticated, user)
	return nil
}

// Login authenticates with email and password. The token is persisted
// before the session is published so a crash between the two never loses a
// successful sign-in. On any failure the session stays unauthenticated.
func (m *Manager) Login(ctx context.Context, email, password string) (*api.User, error) {
	if err := validateCredentials(email, password); err != nil {
		return nil, err
	}

	resp, err := m.client.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}

	if err := m.store.Set(ctx, resp.Token, resp.User.Email); err != nil {
		// The durable store did not change, so neither does the session.
		return nil, err
	}

	m.publish(StatusAuthenticated, &resp.User)
	return m.User(), nil
}

// Register creates a new account and signs it in, with the same
// persist-then-publish ordering as Login. The profile is validated client
// side first; an underage birth date fails before any network call.
func (m *Manager) Register(ctx context.Context, profile Profile) (*api.User, error) {
	if err := validateProfile(profile); err != nil {
		return nil, err
	}

	resp, err := m.client.Register(ctx, api.RegisterRequest{
		Name:        profile.Name,
		Email:       profile.Email,
		Phone:       profile.Phone,
		BirthDate:   profile.BirthDate,
		Password:    profile.Password,
		AccountType: profile.AccountType,
		PhotoURL:    profile.PhotoURL,
	})
	if err != nil {
		return nil, err
	}

	if err := m.store.Set(ctx, resp.Token, resp.User.Email); err != nil {
		return nil, err
	}

	m.publish(StatusAuthenticated, &resp.User)
	return m.User(), nil
}

// Logout signs the session out. It is idempotent: signing out while already
// unauthenticated is a no-op. The server is notified best-effort; only a
// credential store failure aborts the transition, because the UI must never
// believe a sign-out happened that the durable store did not record.
func (m *Manager) Logout(ctx context.Context) error {
	if m.Status() != StatusAuthenticated {
		return nil
	}

	if err := m.client.Logout(ctx); err != nil {
		m.logger.WithError(err).Debug("server logout notification failed")
	}

	if err := m.store.Clear(ctx); err != nil {
		return err
	}

	m.publish(StatusUnauthenticated, nil)
	return nil
}

// DropIfExpired forces the session to Unauthenticated when err reports a
// rejected token. Screens call this on errors from protected endpoints so
// an expired or revoked session lands back at the sign-in flow. Returns
// true when the session was dropped.
func (m *Manager) DropIfExpired(ctx context.Context, err error) bool {
	if !errors.IsCode(err, errors.ErrCodeAuthExpired) {
		return false
	}

	if clearErr := m.store.Clear(ctx); clearErr != nil {
		m.logger.WithError(clearErr).Warn("failed to clear expired credential")
	}

	m.publish(StatusUnauthenticated, nil)
	return true
}
