package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"

	"github.com/totegamma/concrnt-favorite/internal/domain"
	"github.com/totegamma/concrnt-favorite/jwt"
)

var tracer = otel.Tracer("service")

const TokenTTL = 24 * time.Hour

type AuthService struct {
	config domain.Config
}

func NewAuthService(config domain.Config) *AuthService {
	return &AuthService{
		config: config,
	}
}

type AuthResult struct {
	ActorID string
}

func (s *AuthService) AuthJwt(ctx context.Context, token string) (*AuthResult, error) {
	ctx, span := tracer.Start(ctx, "Auth.Service.AuthJwt")
	defer span.End()

	_, claims, err := jwt.Validate(token)
	if err != nil {
		span.RecordError(errors.Wrap(err, "jwt validation failed"))
		return nil, err
	}

	if s.config.FQDN != "" && claims.Audience != s.config.FQDN {
		err := fmt.Errorf("jwt audience mismatch: expected %s, got %s", s.config.FQDN, claims.Audience)
		span.RecordError(err)
		return nil, err
	}

	if s.config.Issuer == "" || !strings.EqualFold(claims.Issuer, s.config.Issuer) {
		err := fmt.Errorf("untrusted issuer %s", claims.Issuer)
		span.RecordError(err)
		return nil, err
	}

	if claims.Subject == "" {
		err := fmt.Errorf("missing subject")
		span.RecordError(err)
		return nil, err
	}

	return &AuthResult{ActorID: claims.Subject}, nil
}

// IssueToken signs a token for actorID with the node key.
func (s *AuthService) IssueToken(ctx context.Context, actorID string) (string, error) {
	_, span := tracer.Start(ctx, "Auth.Service.IssueToken")
	defer span.End()

	if s.config.PrivateKey == "" {
		err := fmt.Errorf("token issuing disabled: no private key configured")
		span.RecordError(err)
		return "", err
	}

	token, err := jwt.Issue(actorID, s.config.FQDN, TokenTTL, s.config.PrivateKey)
	if err != nil {
		span.RecordError(err)
		return "", errors.Wrap(err, "AuthService.IssueToken")
	}
	return token, nil
}
