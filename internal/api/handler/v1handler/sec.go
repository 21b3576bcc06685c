package v1handler

import (
	"catalog/internal/config"
	"catalog/pkg/domain"
	"catalog/pkg/logger"
	"catalog/pkg/serrors"
	"context"
	"crypto/rsa"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

// SecHandlerOptions configures bearer token verification.
type SecHandlerOptions struct {
	// PublicKey is the PEM encoded RSA key tokens are verified with.
	PublicKey string
}

func NewSecHandlerOptions(cfg *config.Config) *SecHandlerOptions {
	return &SecHandlerOptions{PublicKey: cfg.JWT.PublicKey}
}

// SecHandler turns bearer tokens into sessions.
type SecHandler struct {
	publicKey *rsa.PublicKey
	parser    *jwt.Parser
}

func NewSecHandler(opts *SecHandlerOptions) (*SecHandler, error) {
	key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(opts.PublicKey))
	if err != nil {
		return nil, fmt.Errorf("could not parse jwt public key: %w", err)
	}

	return &SecHandler{
		publicKey: key,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
			jwt.WithExpirationRequired(),
			jwt.WithIssuedAt(),
		),
	}, nil
}

type sessionKey struct{}

// WithSession returns a copy of ctx carrying session.
func WithSession(ctx context.Context, session domain.Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, session)
}

// SessionFromContext returns the session stored in ctx, or domain.Anonymous.
func SessionFromContext(ctx context.Context) domain.Session {
	if s, ok := ctx.Value(sessionKey{}).(domain.Session); ok {
		return s
	}

	return domain.Anonymous
}

// HandleBearerAuth verifies token and returns ctx carrying the authenticated
// session of its subject, which must be a corpuser URN.
func (s SecHandler) HandleBearerAuth(ctx context.Context, token string) (context.Context, error) {
	var claims jwt.RegisteredClaims
	if _, err := s.parser.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return s.publicKey, nil
	}); err != nil {
		return ctx, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid token")
	}

	actor, entityType, err := domain.ParseUrn(claims.Subject)
	if err != nil || entityType != domain.EntityTypeCorpUser {
		return ctx, serrors.With(serrors.ErrUnauthorized, "invalid token subject")
	}

	ctx = logger.WithFields(ctx, zap.Stringer("actor", actor))

	return WithSession(ctx, domain.Session{Actor: actor, Authenticated: true}), nil
}

// Middleware authenticates the Authorization header of each request. Requests
// without a header continue with the anonymous session; malformed or invalid
// credentials are rejected with 401.
func (s *SecHandler) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		header := r.Header.Get("Authorization")
		if header == "" {
			next.ServeHTTP(w, r.WithContext(WithSession(ctx, domain.Anonymous)))

			return
		}

		scheme, token, ok := strings.Cut(header, " ")
		if !ok || !strings.EqualFold(scheme, "Bearer") || token == "" {
			Handler{}.writeError(ctx, w, serrors.With(serrors.ErrUnauthorized, "expected a bearer token"))

			return
		}

		ctx, err := s.HandleBearerAuth(ctx, token)
		if err != nil {
			Handler{}.writeError(ctx, w, err)

			return
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
