// Package auth carries the identity extracted from a verified bearer
// token through the request, so handlers never re-read raw JWT claims
// or trust role values supplied in request data.
package auth

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const claimsKey = "claims"

var ErrNoClaims = errors.New("no verified claims in context")

// Claims is the identity claim set embedded in an access token.
type Claims struct {
	ID    uuid.UUID
	Email string
	Name  string
	Role  string
}

// FromToken builds Claims from a verified JWT. It fails on any missing
// or malformed claim so a token minted by an older build cannot slip
// through with a partial identity.
func FromToken(token *jwt.Token) (*Claims, error) {
	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid claims")
	}

	sub, ok := mapClaims["sub"].(string)
	if !ok {
		return nil, errors.New("missing sub claim")
	}
	id, err := uuid.Parse(sub)
	if err != nil {
		return nil, errors.New("malformed sub claim")
	}

	email, _ := mapClaims["email"].(string)
	name, _ := mapClaims["name"].(string)
	role, ok := mapClaims["role"].(string)
	if !ok || role == "" {
		return nil, errors.New("missing role claim")
	}

	return &Claims{ID: id, Email: email, Name: name, Role: role}, nil
}

// Store places verified claims into Fiber context locals.
func Store(c *fiber.Ctx, claims *Claims) {
	c.Locals(claimsKey, claims)
}

// FromContext returns the claims stored by the auth middleware.
func FromContext(c *fiber.Ctx) (*Claims, error) {
	claims, ok := c.Locals(claimsKey).(*Claims)
	if !ok || claims == nil {
		return nil, ErrNoClaims
	}
	return claims, nil
}
