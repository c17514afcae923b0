package auth

import (
	"fmt"
	"time"

	"aidanwoods.dev/go-paseto"
	"github.com/MikeRez0/ordermodule/internal/adapter/config"
	"github.com/MikeRez0/ordermodule/internal/core/domain"
	"github.com/MikeRez0/ordermodule/internal/core/port"
)

const (
	tokenLifetime = 24 * time.Hour
	payloadClaim  = "operator"
)

type PasetoToken struct {
	parser   paseto.Parser
	key      paseto.V4SymmetricKey
	lifetime time.Duration
}

// New creates the token service. With an empty key a random one is
// generated, so issued tokens die with the process.
func New(conf *config.Auth) (port.TokenService, error) {
	key := paseto.NewV4SymmetricKey()
	if conf != nil && conf.Key != "" {
		var err error
		key, err = paseto.V4SymmetricKeyFromHex(conf.Key)
		if err != nil {
			return nil, fmt.Errorf("error parsing auth key: %w", err)
		}
	}

	parser := paseto.NewParser()
	parser.AddRule(paseto.NotExpired())

	return &PasetoToken{
		parser:   parser,
		key:      key,
		lifetime: tokenLifetime,
	}, nil
}

func (p *PasetoToken) CreateToken(operator *domain.Operator) (string, error) {
	if operator == nil || operator.ID == "" {
		return "", domain.ErrTokenCreation
	}

	now := time.Now()
	token := paseto.NewToken()
	token.SetIssuedAt(now)
	token.SetNotBefore(now)
	token.SetExpiration(now.Add(p.lifetime))

	if err := token.Set(payloadClaim, port.TokenPayload{OperatorID: operator.ID}); err != nil {
		return "", domain.ErrTokenCreation
	}

	return token.V4Encrypt(p.key, nil), nil
}

func (p *PasetoToken) VerifyToken(token string) (*port.TokenPayload, error) {
	parsedToken, err := p.parser.ParseV4Local(p.key, token, nil)
	if err != nil {
		return nil, domain.ErrInvalidToken
	}

	payload := port.TokenPayload{}
	if err := parsedToken.Get(payloadClaim, &payload); err != nil || payload.OperatorID == "" {
		return nil, domain.ErrInvalidToken
	}
	return &payload, nil
}
