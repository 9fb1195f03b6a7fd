package household

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const sessionTTL = 30 * 24 * time.Hour

// SessionClaims identifies the caller and their tenant.
type SessionClaims struct {
	MemberID    int64
	HouseholdID int64
}

// TokenIssuer mints and verifies session tokens.
type TokenIssuer struct {
	secret []byte
}

// NewTokenIssuer creates a TokenIssuer from the configured secret.
func NewTokenIssuer(secret string) *TokenIssuer {
	return &TokenIssuer{secret: []byte(secret)}
}

// Issue creates a signed session token for a member.
func (t *TokenIssuer) Issue(m Member) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": fmt.Sprintf("%d", m.ID),
		"hid": m.HouseholdID,
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(sessionTTL).Unix(),
	})
	signed, err := token.SignedString(t.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return signed, nil
}

// Parse verifies a session token and extracts its claims.
func (t *TokenIssuer) Parse(tokenString string) (SessionClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return t.secret, nil
	})
	if err != nil {
		return SessionClaims{}, fmt.Errorf("invalid session token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return SessionClaims{}, fmt.Errorf("invalid session token claims")
	}

	sub, err := claims.GetSubject()
	if err != nil {
		return SessionClaims{}, fmt.Errorf("invalid session subject: %w", err)
	}
	var memberID int64
	if _, err := fmt.Sscanf(sub, "%d", &memberID); err != nil {
		return SessionClaims{}, fmt.Errorf("invalid session subject %q", sub)
	}

	hid, ok := claims["hid"].(float64)
	if !ok {
		return SessionClaims{}, fmt.Errorf("session token missing household claim")
	}

	return SessionClaims{MemberID: memberID, HouseholdID: int64(hid)}, nil
}

// HashPassword hashes a plaintext password for storage.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// CheckPassword reports whether the plaintext matches the stored hash.
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
