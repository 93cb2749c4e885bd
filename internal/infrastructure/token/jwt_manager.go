package token

import (
	"crypto/rand"
	"errors"
	"fmt"
	"time"

	domain "careerbot/backend/internal/domain/auth"
	usecase "careerbot/backend/internal/usecase/auth"

	"github.com/golang-jwt/jwt/v5"
)

// JWTManager issues and validates signed session tokens.
type JWTManager struct {
	secret     []byte
	expiration time.Duration
	issuer     string
	nowFunc    func() time.Time
}

// NewJWTManager constructs a manager with the provided secret and expiration.
func NewJWTManager(secret []byte, expiration time.Duration, issuer string) *JWTManager {
	return &JWTManager{
		secret:     secret,
		expiration: expiration,
		issuer:     issuer,
		nowFunc:    time.Now,
	}
}

// RandomSecret returns a fresh 32-byte signing key. Tokens signed with it do
// not survive a process restart.
func RandomSecret() ([]byte, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return nil, fmt.Errorf("generate session secret: %w", err)
	}
	return b, nil
}

// Ensure JWTManager implements the TokenManager interface.
var _ usecase.TokenManager = (*JWTManager)(nil)

// Claims represents session token claims.
type Claims struct {
	SessionID string `json:"sid"`
	UserID    int64  `json:"uid"`
	Email     string `json:"email"`
	Username  string `json:"username"`
	jwt.RegisteredClaims
}

// Generate creates a signed JWT carrying the session.
func (m *JWTManager) Generate(session domain.Session) (string, error) {
	now := m.nowFunc().UTC()
	claims := Claims{
		SessionID: session.ID,
		UserID:    session.UserID,
		Email:     session.Email,
		Username:  session.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        session.ID,
			Issuer:    m.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.expiration)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Validate parses and validates the token returning the session when valid.
func (m *JWTManager) Validate(tokenString string) (domain.Session, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(m.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.nowFunc),
	)
	if err != nil {
		return domain.Session{}, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return domain.Session{}, errors.New("invalid token claims")
	}
	if claims.UserID <= 0 || claims.SessionID == "" {
		return domain.Session{}, errors.New("incomplete session claims")
	}
	return domain.Session{
		ID:       claims.SessionID,
		UserID:   claims.UserID,
		Email:    claims.Email,
		Username: claims.Username,
	}, nil
}
