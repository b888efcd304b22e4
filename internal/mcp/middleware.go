package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/campuswork/campuswork/internal/auth"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

type contextKey int

const roleKey contextKey = iota

// getRole extracts the caller role from context.
func getRole(ctx context.Context) auth.Role {
	v, _ := ctx.Value(roleKey).(auth.Role)
	return v
}

// RoleResolver resolves a marketplace role from a bearer token. The role
// is asserted, not verified beyond the key lookup.
type RoleResolver interface {
	ResolveRole(ctx context.Context, token string) (auth.Role, error)
}

// authMiddleware resolves the caller's role from the bearer token.
func authMiddleware(resolver RoleResolver) sdkmcp.Middleware {
	return func(next sdkmcp.MethodHandler) sdkmcp.MethodHandler {
		return func(ctx context.Context, method string, req sdkmcp.Request) (sdkmcp.Result, error) {
			// Skip auth for protocol methods
			if method == "initialize" || method == "ping" {
				return next(ctx, method, req)
			}

			extra := req.GetExtra()
			if extra == nil || extra.Header == nil {
				return nil, fmt.Errorf("unauthorized: missing headers")
			}

			authHeader := extra.Header.Get("Authorization")
			token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
			if token == "" {
				return nil, fmt.Errorf("unauthorized: missing bearer token")
			}

			role, err := resolver.ResolveRole(ctx, token)
			if err != nil {
				return nil, fmt.Errorf("unauthorized: %w", err)
			}
			if !role.Valid() {
				return nil, fmt.Errorf("unauthorized: invalid bearer token")
			}

			ctx = context.WithValue(ctx, roleKey, role)
			return next(ctx, method, req)
		}
	}
}

// noAuthMiddleware injects a fixed role when auth is disabled.
func noAuthMiddleware(role auth.Role) sdkmcp.Middleware {
	return func(next sdkmcp.MethodHandler) sdkmcp.MethodHandler {
		return func(ctx context.Context, method string, req sdkmcp.Request) (sdkmcp.Result, error) {
			ctx = context.WithValue(ctx, roleKey, role)
			return next(ctx, method, req)
		}
	}
}
