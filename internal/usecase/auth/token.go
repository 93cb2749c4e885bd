package auth

import domain "careerbot/backend/internal/domain/auth"

// TokenManager abstracts session token issuance and verification.
type TokenManager interface {
	Generate(session domain.Session) (string, error)
	Validate(token string) (domain.Session, error)
}
