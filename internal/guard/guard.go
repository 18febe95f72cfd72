// Package guard decides route access from the persisted token and a
// server-verified identity check, mirroring the private/public gate pair on
// the admin surfaces.
package guard

import (
	"context"

	"easyplug-admin/pkg/easyplug"
	"easyplug-admin/pkg/log"
)

// Decision is the outcome of a guard check.
type Decision int

const (
	// Allow renders the guarded content.
	Allow Decision = iota
	// RedirectLogin sends the caller to the login surface.
	RedirectLogin
	// RedirectDashboard sends an already-authenticated caller away from a
	// public surface.
	RedirectDashboard
)

func (d Decision) String() string {
	switch d {
	case Allow:
		return "allow"
	case RedirectLogin:
		return "redirect-login"
	case RedirectDashboard:
		return "redirect-dashboard"
	default:
		return "unknown"
	}
}

// IdentityProber verifies the current token against the server.
type IdentityProber interface {
	Me(ctx context.Context) (easyplug.Identity, error)
}

// TokenReader reports the persisted token.
type TokenReader interface {
	Token() string
}

// Guard evaluates private and public route access.
type Guard struct {
	tokens TokenReader
	probe  IdentityProber
	l      log.Logger
}

// New creates a Guard over the token store and identity endpoint.
func New(tokens TokenReader, probe IdentityProber, l log.Logger) *Guard {
	return &Guard{
		tokens: tokens,
		probe:  probe,
		l:      l,
	}
}

// Private gates protected content: authed means a token is present AND the
// identity check resolves successfully; anything else redirects to login.
// A probe failure does not clear the stored token — a flaky network must not
// sign the admin out; only an explicit sign-out clears storage.
func (g *Guard) Private(ctx context.Context) (Decision, easyplug.Identity, error) {
	if g.tokens.Token() == "" {
		return RedirectLogin, easyplug.Identity{}, nil
	}

	identity, err := g.probeOnce(ctx)
	if err != nil {
		if ctx.Err() != nil {
			// caller went away before the probe resolved; discard the result
			return RedirectLogin, easyplug.Identity{}, ctx.Err()
		}
		g.l.Debugf(ctx, "guard: identity probe failed: %v", err)
		return RedirectLogin, easyplug.Identity{}, nil
	}
	return Allow, identity, nil
}

// Public gates login/register surfaces: a verified token redirects to the
// dashboard, everything else renders the public content.
func (g *Guard) Public(ctx context.Context) (Decision, error) {
	if g.tokens.Token() == "" {
		return Allow, nil
	}

	if _, err := g.probeOnce(ctx); err != nil {
		if ctx.Err() != nil {
			return Allow, ctx.Err()
		}
		// invalid token still renders the public surface
		return Allow, nil
	}
	return RedirectDashboard, nil
}

// probeOnce runs a single identity check. If ctx is cancelled before the
// probe resolves, the late result is dropped rather than applied.
func (g *Guard) probeOnce(ctx context.Context) (easyplug.Identity, error) {
	type probeResult struct {
		identity easyplug.Identity
		err      error
	}

	ch := make(chan probeResult, 1)
	go func() {
		identity, err := g.probe.Me(ctx)
		ch <- probeResult{identity: identity, err: err}
	}()

	select {
	case <-ctx.Done():
		return easyplug.Identity{}, ctx.Err()
	case r := <-ch:
		return r.identity, r.err
	}
}
