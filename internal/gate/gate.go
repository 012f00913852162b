// Package gate decides whether a protected surface may be shown for the
// current session.
package gate

import (
	"github.com/barhopapp/barhop/internal/api"
	"github.com/barhopapp/barhop/internal/errors"
	"github.com/barhopapp/barhop/internal/session"
)

// Branch is the single outcome of a gate check.
type Branch int

const (
	// BranchLoading renders a neutral placeholder while the session resolves
	BranchLoading Branch = iota
	// BranchSignInRequired renders the sign-in prompt
	BranchSignInRequired
	// BranchUpgradeRequired renders the account-upgrade prompt
	BranchUpgradeRequired
	// BranchAuthorized renders the protected content
	BranchAuthorized
)

// String returns the string representation of the branch
func (b Branch) String() string {
	switch b {
	case BranchLoading:
		return "loading"
	case BranchSignInRequired:
		return "sign-in-required"
	case BranchUpgradeRequired:
		return "upgrade-required"
	case BranchAuthorized:
		return "authorized"
	default:
		return "unknown"
	}
}

// Decide evaluates the gate for a session snapshot against a required
// account type. Checks run strictly in order: an unresolved or absent user
// must short-circuit before any capability comparison touches user fields.
func Decide(status session.Status, user *api.User, required api.AccountType) Branch {
	if status == session.StatusResolving {
		return BranchLoading
	}

	if status != session.StatusAuthenticated || user == nil {
		return BranchSignInRequired
	}

	if required != "" && user.AccountType != required {
		return BranchUpgradeRequired
	}

	return BranchAuthorized
}

// Check maps a gate decision to an error for non-interactive callers. A
// loading branch is reported as sign-in required: a CLI command has no
// later render to wait for.
func Check(status session.Status, user *api.User, required api.AccountType) error {
	switch Decide(status, user, required) {
	case BranchAuthorized:
		return nil
	case BranchUpgradeRequired:
		return errors.NewAccountTypeDeniedError(string(required))
	default:
		return errors.NewSignInRequiredError()
	}
}
