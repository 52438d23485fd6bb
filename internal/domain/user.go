package domain

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims identificam o operador autenticado na API
type Claims struct {
	OperatorEmail string `json:"operator_email"`
	jwt.RegisteredClaims
}
