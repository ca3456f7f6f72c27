package http

import (
	"context"

	"github.com/go-chi/jwtauth/v5"
	"github.com/pointago/pointage-backend-go/internal/domain/auth"
	"github.com/pointago/pointage-backend-go/internal/domain/user"
)

// actorFromContext resolves the authenticated caller from the verified
// token. Handlers pass the actor down explicitly; services never read
// claims themselves.
func actorFromContext(ctx context.Context) (user.Actor, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return user.Actor{}, auth.ErrInvalidToken
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return user.Actor{}, auth.ErrInvalidToken
	}

	roleStr, ok := claims["role"].(string)
	if !ok || !user.Role(roleStr).Valid() {
		return user.Actor{}, auth.ErrInvalidToken
	}

	return user.Actor{ID: userID, Role: user.Role(roleStr)}, nil
}
