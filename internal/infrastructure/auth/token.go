package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"strings"
	"time"
)

// TokenPayload is the claims block carried by a session token.
type TokenPayload struct {
	Email     string `json:"email"`
	IssuedAt  int64  `json:"iat"`
	ExpiresAt int64  `json:"exp"`
}

// TokenSigner issues and verifies HMAC-signed session tokens for the search
// surface. Tokens are compact "payload.signature" strings, both base64url.
type TokenSigner struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenSigner creates a signer with the given secret and token lifetime.
func NewTokenSigner(secret string, ttl time.Duration) *TokenSigner {
	return &TokenSigner{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// CreateToken issues a signed token for the member email.
func (s *TokenSigner) CreateToken(email string) (string, error) {
	now := s.now()
	payload := TokenPayload{
		Email:     email,
		IssuedAt:  now.Unix(),
		ExpiresAt: now.Add(s.ttl).Unix(),
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	data := base64.RawURLEncoding.EncodeToString(raw)
	return data + "." + s.sign(data), nil
}

// VerifyToken validates signature and expiry, returning the payload or nil.
func (s *TokenSigner) VerifyToken(token string) *TokenPayload {
	parts := strings.SplitN(token, ".", 2)
	if len(parts) != 2 {
		return nil
	}

	if !hmac.Equal([]byte(parts[1]), []byte(s.sign(parts[0]))) {
		return nil
	}

	raw, err := base64.RawURLEncoding.DecodeString(parts[0])
	if err != nil {
		return nil
	}

	var payload TokenPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil
	}

	if payload.ExpiresAt < s.now().Unix() {
		return nil
	}

	return &payload
}

func (s *TokenSigner) sign(data string) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(data))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}
