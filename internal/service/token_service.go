package service

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// ErrTokenInvalid cubre firma invalida, claims faltantes o sujeto incorrecto.
var ErrTokenInvalid = errors.New("server token invalid")

const serverSubject = "server-to-server"

// ServerTokenService valida los JWT de servidor a servidor que disparan una
// corrida de matching y extrae el matching id de sus claims.
type ServerTokenService struct {
	secret []byte
}

func NewServerTokenService(secret string) *ServerTokenService {
	return &ServerTokenService{secret: []byte(secret)}
}

type serverClaims struct {
	MatchingID string `json:"matching_id"`
	jwt.RegisteredClaims
}

// VerifyMatchingToken valida el token HMAC y devuelve el matching id. El token
// debe venir firmado con el secreto compartido, con sub "server-to-server" y un
// claim matching_id no vacio.
func (s *ServerTokenService) VerifyMatchingToken(token string) (string, error) {
	if len(s.secret) == 0 {
		return "", fmt.Errorf("%w: secret not configured", ErrTokenInvalid)
	}

	var claims serverClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return "", ErrTokenInvalid
	}
	if claims.Subject != serverSubject || claims.MatchingID == "" {
		return "", ErrTokenInvalid
	}
	return claims.MatchingID, nil
}
