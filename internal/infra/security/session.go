package security

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var ErrInvalidToken = errors.New("invalid session token")

// SessionService issues and parses signed guest session tokens. A
// session is anonymous: the token carries only the generated id that
// keys the session's cart and order snapshots.
type SessionService struct {
	secret     []byte
	expiration time.Duration
}

func NewSessionService(secret string, expiration time.Duration) *SessionService {
	return &SessionService{
		secret:     []byte(secret),
		expiration: expiration,
	}
}

type sessionClaims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

// IssueToken creates a fresh session and returns its signed token
// along with the session id.
func (s *SessionService) IssueToken() (token string, sessionID string, err error) {
	now := time.Now()
	sessionID = uuid.NewString()
	claims := sessionClaims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiration)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", "", err
	}
	return signed, sessionID, nil
}

// ParseToken validates a token and returns the session id it carries.
func (s *SessionService) ParseToken(token string) (string, error) {
	parsed, err := jwt.ParseWithClaims(token, &sessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		return s.secret, nil
	})
	if err != nil {
		return "", err
	}

	claims, ok := parsed.Claims.(*sessionClaims)
	if !ok || !parsed.Valid || claims.SessionID == "" {
		return "", ErrInvalidToken
	}
	return claims.SessionID, nil
}
