// Package auth issues and verifies signed access tokens.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/tokenkeeper/internal/common"
	"github.com/dmitrijs2005/tokenkeeper/internal/server/keys"
	"github.com/dmitrijs2005/tokenkeeper/internal/server/models"
	"github.com/golang-jwt/jwt/v5"
)

// Claims carried by an access token. Subject is the user's email.
type Claims struct {
	GivenName string `json:"given_name"`
	jwt.RegisteredClaims
}

// KeySource is satisfied by *keys.Provider.
type KeySource interface {
	CurrentKey() keys.Key
}

// Issuer creates and checks access tokens with the key from a KeySource.
type Issuer struct {
	keys  KeySource
	clock func() time.Time
}

// Option configures an Issuer.
type Option func(*Issuer)

// WithClock replaces time.Now.
func WithClock(clock func() time.Time) Option {
	return func(i *Issuer) { i.clock = clock }
}

func NewIssuer(keys KeySource, opts ...Option) *Issuer {
	i := &Issuer{keys: keys, clock: time.Now}
	for _, o := range opts {
		o(i)
	}
	return i
}

// IssueAccessToken signs a token for user that expires ttl after now.
func (i *Issuer) IssueAccessToken(user *models.User, ttl time.Duration) (string, error) {
	key := i.keys.CurrentKey()
	defer common.WipeByteArray(key.Material)

	// JWT NumericDate has second precision
	now := i.clock().Truncate(time.Second)

	token := jwt.NewWithClaims(key.Method, Claims{
		GivenName: user.DisplayName,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Email,
			Issuer:    key.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	})

	s, err := token.SignedString(key.Material)
	if err != nil {
		return "", fmt.Errorf("sign access token: %w", err)
	}
	return s, nil
}

// InspectExpiredToken checks signature, algorithm and issuer but ignores
// expiry. Rotation uses it to learn who the presented access token was for.
// Any failure is common.ErrInvalidAccessToken.
func (i *Issuer) InspectExpiredToken(tokenString string) (*Claims, error) {
	key := i.keys.CurrentKey()
	defer common.WipeByteArray(key.Material)

	claims := &Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, keyFunc(key),
		jwt.WithValidMethods([]string{key.Method.Alg()}),
		jwt.WithoutClaimsValidation(),
	)
	if err != nil {
		return nil, common.ErrInvalidAccessToken
	}
	if claims.Issuer != key.Issuer || claims.Subject == "" {
		return nil, common.ErrInvalidAccessToken
	}
	return claims, nil
}

// ValidateAccessToken is the authorization check for protected calls.
// An expired token yields common.ErrTokenExpired, everything else
// common.ErrInvalidAccessToken.
func (i *Issuer) ValidateAccessToken(tokenString string) (*Claims, error) {
	key := i.keys.CurrentKey()
	defer common.WipeByteArray(key.Material)

	claims := &Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, keyFunc(key),
		jwt.WithValidMethods([]string{key.Method.Alg()}),
		jwt.WithIssuer(key.Issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(i.clock),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, common.ErrTokenExpired
		}
		return nil, common.ErrInvalidAccessToken
	}
	if claims.Subject == "" {
		return nil, common.ErrInvalidAccessToken
	}
	return claims, nil
}

func keyFunc(key keys.Key) jwt.Keyfunc {
	return func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != key.Method.Alg() {
			return nil, fmt.Errorf("unexpected signing method %s", t.Method.Alg())
		}
		return key.Material, nil
	}
}
