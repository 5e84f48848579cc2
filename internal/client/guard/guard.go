// Package guard decides whether the current session may reach a view. The
// decision is pure: no I/O, no side effects, re-evaluated by the caller on
// every navigation and whenever the session changes.
package guard

import "github.com/interiorvision/interior/internal/models"

// Requirement names the capability a view demands.
type Requirement int

const (
	// RequireNone admits everyone.
	RequireNone Requirement = iota
	// RequireAuthenticated admits any logged-in session.
	RequireAuthenticated
	// RequireAdmin admits only sessions with the admin capability.
	RequireAdmin
)

// Decision is the outcome of a guard check.
type Decision int

const (
	// Allow lets the navigation proceed.
	Allow Decision = iota
	// RedirectLogin sends the visitor to the login view.
	RedirectLogin
	// RedirectHome sends an authenticated but under-privileged visitor home.
	RedirectHome
)

// String returns a readable name for the decision.
func (d Decision) String() string {
	switch d {
	case Allow:
		return "allow"
	case RedirectLogin:
		return "redirect-login"
	case RedirectHome:
		return "redirect-home"
	}
	return "unknown"
}

// Decide evaluates a requirement against the session. A nil session means no
// one is logged in.
func Decide(sess *models.Session, req Requirement) Decision {
	switch req {
	case RequireAuthenticated:
		if sess == nil {
			return RedirectLogin
		}
		return Allow
	case RequireAdmin:
		if sess == nil {
			return RedirectLogin
		}
		if !sess.IsAdmin {
			return RedirectHome
		}
		return Allow
	default:
		return Allow
	}
}
