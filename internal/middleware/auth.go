package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/taskboard-dev/taskboard/internal/auth"
	"github.com/taskboard-dev/taskboard/internal/errs"
	"github.com/taskboard-dev/taskboard/internal/types"
)

type AuthenticatedUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// TokenVerifier is the part of auth.TokenService the gate needs.
type TokenVerifier interface {
	Verify(token string) (*auth.Claims, error)
}

// AuthMiddleware verifies the bearer token and stores the caller's identity
// under types.ContextUserKey. Any first word is accepted as the scheme
// unless strictScheme is set.
func AuthMiddleware(tokens TokenVerifier, strictScheme bool) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		authHeader := ctx.GetHeader("Authorization")

		if authHeader == "" {
			abortWithError(ctx, errs.ErrMissingToken)
			return
		}

		parts := strings.Split(authHeader, " ")

		if len(parts) < 2 || parts[1] == "" {
			abortWithError(ctx, errs.ErrMissingToken)
			return
		}

		if strictScheme && parts[0] != "Bearer" {
			abortWithError(ctx, errs.ErrInvalidToken)
			return
		}

		claims, err := tokens.Verify(parts[1])

		if err != nil {
			abortWithCause(ctx, errs.ErrInvalidToken, err)
			return
		}

		ctx.Set(types.ContextUserKey, AuthenticatedUser{
			ID:    claims.UserID,
			Email: claims.Email,
		})
		ctx.Next()
	}
}

func abortWithError(ctx *gin.Context, err error) {
	abortWithCause(ctx, err, nil)
}

// abortWithCause answers with err only; cause is attached for the request log.
func abortWithCause(ctx *gin.Context, err, cause error) {
	logged := err
	if cause != nil {
		logged = fmt.Errorf("%w: %w", err, cause)
	}

	_ = ctx.Error(logged)
	ctx.AbortWithStatusJSON(errs.StatusFor(err, http.StatusUnauthorized), gin.H{"error": err.Error()})
}
