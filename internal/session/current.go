package session

import (
	"sync"

	"github.com/barhopapp/barhop/internal/api"
)

// The process-wide current-user snapshot exists for service singletons that
// are constructed once, outside any UI lifecycle, and need to know who is
// calling. It is a read-only mirror of the manager's user field: the manager
// is its only writer, it is updated synchronously on every session
// transition, and it may be momentarily stale between a sign-out and the
// next sign-in. It never drives re-renders.

var (
	currentMu   sync.RWMutex
	currentUser *api.User
)

// CurrentUser returns the user of the active session, or nil when signed
// out or still resolving. The returned value is a copy.
func CurrentUser() *api.User {
	currentMu.RLock()
	defer currentMu.RUnlock()

	if currentUser == nil {
		return nil
	}
	u := *currentUser
	return &u
}

// setCurrentUser replaces the snapshot. Only the session manager calls this.
func setCurrentUser(user *api.User) {
	currentMu.Lock()
	defer currentMu.Unlock()

	if user == nil {
		currentUser = nil
		return
	}
	u := *user
	currentUser = &u
}
