// Package auth verifies identity provider session tokens and webhooks.
package auth

import (
	"crypto/rsa"
	"slices"
	"strings"
	"time"

	domainerrors "fitplan/internal/domain/errors"
	"fitplan/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

const clockLeeway = 5 * time.Second

// sessionClaims mirrors the session token payload issued by the auth provider.
type sessionClaims struct {
	jwt.RegisteredClaims
	Email           string `json:"email,omitempty"`
	AuthorizedParty string `json:"azp,omitempty"`
}

// sessionTokenVerifier checks RS256 session tokens offline against a PEM public key.
type sessionTokenVerifier struct {
	publicKey         *rsa.PublicKey
	issuer            string
	authorizedParties []string
}

// NewSessionTokenVerifier parses publicKeyPEM and returns a TokenVerifier.
// An empty issuer or authorizedParties list disables that check.
func NewSessionTokenVerifier(publicKeyPEM, issuer string, authorizedParties []string) (service.TokenVerifier, error) {
	key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(normalizePEM(publicKeyPEM)))
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse session token public key")
	}

	return &sessionTokenVerifier{
		publicKey:         key,
		issuer:            issuer,
		authorizedParties: authorizedParties,
	}, nil
}

func (v *sessionTokenVerifier) Verify(token string) (*service.SessionClaims, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(clockLeeway),
	}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}

	claims := &sessionClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return v.publicKey, nil
	}, opts...)
	if err != nil {
		return nil, domainerrors.ErrUnauthorized.WithDetails(err.Error())
	}

	if claims.Subject == "" {
		return nil, domainerrors.ErrUnauthorized.WithDetails("token has no subject")
	}

	if len(v.authorizedParties) > 0 && !slices.Contains(v.authorizedParties, claims.AuthorizedParty) {
		return nil, domainerrors.ErrUnauthorized.WithDetails("unexpected authorized party")
	}

	return &service.SessionClaims{
		UserID: claims.Subject,
		Email:  claims.Email,
	}, nil
}

// normalizePEM restores newlines in keys passed through single-line env vars.
func normalizePEM(key string) string {
	return strings.ReplaceAll(strings.TrimSpace(key), `\n`, "\n")
}
