package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/yungbote/skillup-backend/internal/pkg/ctxutil"
	pkgerrors "github.com/yungbote/skillup-backend/internal/pkg/errors"
	"github.com/yungbote/skillup-backend/internal/pkg/logger"
)

type AuthConfig struct {
	JWTSecret    string `mapstructure:"auth_jwt_secret"`
	JWTPublicKey string `mapstructure:"auth_jwt_public_key"`
	Issuer       string `mapstructure:"auth_jwt_issuer"`
}

// AuthService verifies access tokens minted by the identity provider. Tokens
// are never issued here.
type AuthService interface {
	SetContextFromToken(ctx context.Context, tokenString string) (context.Context, error)
}

type authService struct {
	log     *logger.Logger
	keyFunc jwt.Keyfunc
	opts    []jwt.ParserOption
}

func NewAuthService(log *logger.Logger, cfg AuthConfig) (AuthService, error) {
	serviceLog := log.With("service", "AuthService")
	as := &authService{log: serviceLog}

	switch {
	case strings.TrimSpace(cfg.JWTPublicKey) != "":
		pub, err := jwt.ParseRSAPublicKeyFromPEM([]byte(cfg.JWTPublicKey))
		if err != nil {
			return nil, fmt.Errorf("parse AUTH_JWT_PUBLIC_KEY: %w", err)
		}
		as.keyFunc = func(*jwt.Token) (interface{}, error) { return pub, nil }
		as.opts = append(as.opts, jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}))
	case strings.TrimSpace(cfg.JWTSecret) != "":
		secret := []byte(cfg.JWTSecret)
		as.keyFunc = func(*jwt.Token) (interface{}, error) { return secret, nil }
		as.opts = append(as.opts, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	default:
		return nil, errors.New("one of AUTH_JWT_SECRET or AUTH_JWT_PUBLIC_KEY is required")
	}
	if iss := strings.TrimSpace(cfg.Issuer); iss != "" {
		as.opts = append(as.opts, jwt.WithIssuer(iss))
	}
	as.opts = append(as.opts, jwt.WithExpirationRequired())
	return as, nil
}

func (as *authService) SetContextFromToken(ctx context.Context, tokenString string) (context.Context, error) {
	if tokenString == "" {
		return ctx, fmt.Errorf("%w: missing token", pkgerrors.ErrUnauthorized)
	}
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(tokenString, claims, as.keyFunc, as.opts...)
	if err != nil {
		as.log.Debug("token rejected", "error", err)
		return ctx, fmt.Errorf("%w: %w", pkgerrors.ErrUnauthorized, err)
	}
	if !parsed.Valid {
		return ctx, fmt.Errorf("%w: invalid or expired token", pkgerrors.ErrUnauthorized)
	}
	sub := strings.TrimSpace(claims.Subject)
	if sub == "" {
		return ctx, fmt.Errorf("%w: token has no subject", pkgerrors.ErrUnauthorized)
	}
	return ctxutil.WithRequestData(ctx, &ctxutil.RequestData{
		UserID:      sub,
		TokenString: tokenString,
	}), nil
}
