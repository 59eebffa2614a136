package gateway

import (
	"context"
	"fmt"
	"net"
)

// Authorizer decides which clients may submit code for analysis.
type Authorizer interface {
	Allow(ctx context.Context, remoteAddr string) error
}

type NoopAuthorizer struct{}

func (NoopAuthorizer) Allow(context.Context, string) error { return nil }

// AllowlistAuthorizer admits clients whose remote address, or bare host,
// appears in Allowed. An empty allowlist admits everyone.
type AllowlistAuthorizer struct {
	Allowed []string
}

func (a AllowlistAuthorizer) Allow(_ context.Context, remoteAddr string) error {
	if len(a.Allowed) == 0 {
		return nil
	}
	host := remoteAddr
	if h, _, err := net.SplitHostPort(remoteAddr); err == nil {
		host = h
	}
	for _, candidate := range a.Allowed {
		if candidate == remoteAddr || candidate == host {
			return nil
		}
	}
	return fmt.Errorf("remote address not allowed: %s", remoteAddr)
}
