// Package identity adapts caller credentials into an {id, role} pair. Token
// issuance (register/login) lives outside this service; only verification
// happens here.
package identity

import (
	"context"
	"errors"
	"fmt"

	jwt "github.com/golang-jwt/jwt/v5"
)

const (
	RoleHost    = "host"
	RoleVisitor = "visitor"
)

var ErrUnauthenticated = errors.New("unauthenticated")

type Identity struct {
	ID   string
	Role string
}

type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

type Provider struct {
	secret []byte
}

func NewProvider(secret string) *Provider {
	return &Provider{secret: []byte(secret)}
}

// Identify verifies the credential and returns the caller's identity.
func (p *Provider) Identify(tokenStr string) (Identity, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return p.secret, nil
	})
	if err != nil {
		return Identity{}, ErrUnauthenticated
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Subject == "" {
		return Identity{}, ErrUnauthenticated
	}

	return Identity{
		ID:   claims.Subject,
		Role: claims.Role,
	}, nil
}

type ctxKey struct{}

func ToContext(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

func FromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(ctxKey{}).(Identity)
	return id, ok
}
