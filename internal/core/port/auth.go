package port

import "github.com/MikeRez0/ordermodule/internal/core/domain"

type TokenPayload struct {
	OperatorID string
}

//go:generate mockgen -source=auth.go -destination=mock/auth.go -package=mock
type TokenService interface {
	CreateToken(operator *domain.Operator) (string, error)
	VerifyToken(token string) (*TokenPayload, error)
}
