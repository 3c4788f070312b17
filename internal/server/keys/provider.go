// Package keys supplies the symmetric material and algorithm used to sign
// and verify access tokens. The key is fixed for the lifetime of the process.
package keys

import (
	"fmt"

	"github.com/dmitrijs2005/tokenkeeper/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// MinKeyLength is the shortest accepted signing secret, in bytes.
const MinKeyLength = 32

// DefaultAlgorithm is used when no algorithm is configured.
const DefaultAlgorithm = "HS512"

var supported = map[string]*jwt.SigningMethodHMAC{
	"HS256": jwt.SigningMethodHS256,
	"HS384": jwt.SigningMethodHS384,
	"HS512": jwt.SigningMethodHS512,
}

// SupportedAlgorithm reports whether alg names an accepted HMAC method.
func SupportedAlgorithm(alg string) bool {
	_, ok := supported[alg]
	return ok
}

// Key is a snapshot of the signing configuration.
type Key struct {
	Material []byte
	Method   jwt.SigningMethod
	Issuer   string
}

// Provider hands out the current signing key.
type Provider struct {
	material []byte
	method   jwt.SigningMethod
	issuer   string
}

// NewProvider validates the signing configuration. An empty algorithm
// selects DefaultAlgorithm. All failures wrap common.ErrConfiguration.
func NewProvider(secret, algorithm, issuer string) (*Provider, error) {
	if algorithm == "" {
		algorithm = DefaultAlgorithm
	}
	method, ok := supported[algorithm]
	if !ok {
		return nil, fmt.Errorf("%w: unsupported signing algorithm %q", common.ErrConfiguration, algorithm)
	}
	if len(secret) < MinKeyLength {
		return nil, fmt.Errorf("%w: signing key must be at least %d bytes", common.ErrConfiguration, MinKeyLength)
	}
	if issuer == "" {
		return nil, fmt.Errorf("%w: issuer is required", common.ErrConfiguration)
	}

	return &Provider{
		material: []byte(secret),
		method:   method,
		issuer:   issuer,
	}, nil
}

// CurrentKey returns the key in effect. Material is a copy; callers may
// wipe it after use.
func (p *Provider) CurrentKey() Key {
	material := make([]byte, len(p.material))
	copy(material, p.material)
	return Key{Material: material, Method: p.method, Issuer: p.issuer}
}
