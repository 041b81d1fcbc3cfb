package security

import (
	"crypto"
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/elliptic"
	"crypto/rsa"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/oklog/ulid/v2"
)

// AccessClaims holds JWT claims for the short-lived access credential. The registered
// "jti" is the credential id used by the revocation ledger and "sub" is the principal id.
type AccessClaims struct {
	jwt.RegisteredClaims
	SessionID         string `json:"sid"`
	CredentialVersion int64  `json:"cver"`
}

// IssuedAccess is a freshly signed access credential.
type IssuedAccess struct {
	Token        string
	CredentialID string
	ExpiresAt    time.Time
}

// VerifiedAccess is the payload of an access credential whose signature has been checked.
type VerifiedAccess struct {
	PrincipalID       string
	SessionID         string
	CredentialID      string
	CredentialVersion int64
	IssuedAt          time.Time
	ExpiresAt         time.Time
}

// SigningConfig selects the access credential algorithm and its key material.
// Asymmetric algorithms read PrivateKey/PublicKey (inline PEM or file path); HS256 reads Secret.
type SigningConfig struct {
	Algorithm  string
	PrivateKey string
	PublicKey  string
	Secret     string
	Issuer     string
	Audience   string
	TTL        time.Duration
}

// TokenProvider signs and verifies access credentials with RS256, ES256, EdDSA or HS256.
type TokenProvider struct {
	method    jwt.SigningMethod
	signKey   interface{}
	verifyKey interface{}
	issuer    string
	audience  string
	ttl       time.Duration
}

// NewTokenProvider returns a TokenProvider that signs with privateKey; the algorithm follows the key type.
func NewTokenProvider(privateKey crypto.Signer, publicKey crypto.PublicKey, issuer, audience string, ttl time.Duration) (*TokenProvider, error) {
	if privateKey == nil || publicKey == nil {
		return nil, ErrInvalidKey
	}
	var method jwt.SigningMethod
	switch k := privateKey.Public().(type) {
	case *rsa.PublicKey:
		method = jwt.SigningMethodRS256
	case *ecdsa.PublicKey:
		if k.Curve != elliptic.P256() {
			return nil, ErrInvalidKey
		}
		method = jwt.SigningMethodES256
	case ed25519.PublicKey:
		method = jwt.SigningMethodEdDSA
	default:
		return nil, ErrInvalidKey
	}
	if KeyAlg(publicKey) != method.Alg() {
		return nil, ErrInvalidKey
	}
	return newProvider(method, privateKey, publicKey, issuer, audience, ttl)
}

// NewHMACTokenProvider returns an HS256 TokenProvider. secret must be at least MinHMACSecretBytes long.
func NewHMACTokenProvider(secret []byte, issuer, audience string, ttl time.Duration) (*TokenProvider, error) {
	if len(secret) < MinHMACSecretBytes {
		return nil, ErrInvalidKey
	}
	return newProvider(jwt.SigningMethodHS256, secret, secret, issuer, audience, ttl)
}

// NewTokenProviderFromConfig builds a TokenProvider from c.
func NewTokenProviderFromConfig(c SigningConfig) (*TokenProvider, error) {
	switch strings.ToUpper(strings.TrimSpace(c.Algorithm)) {
	case "HS256":
		secret, err := LoadHMACSecret(c.Secret)
		if err != nil {
			return nil, err
		}
		return NewHMACTokenProvider(secret, c.Issuer, c.Audience, c.TTL)
	case "RS256", "ES256", "EDDSA":
		signer, err := ParsePrivateKey(c.PrivateKey)
		if err != nil {
			return nil, fmt.Errorf("signing private key: %w", err)
		}
		pub, err := ParsePublicKey(c.PublicKey)
		if err != nil {
			return nil, fmt.Errorf("signing public key: %w", err)
		}
		p, err := NewTokenProvider(signer, pub, c.Issuer, c.Audience, c.TTL)
		if err != nil {
			return nil, err
		}
		if !strings.EqualFold(p.method.Alg(), c.Algorithm) {
			return nil, fmt.Errorf("%w: key type is %s, configured %s", ErrInvalidKey, p.method.Alg(), c.Algorithm)
		}
		return p, nil
	default:
		return nil, fmt.Errorf("%w: unsupported signing algorithm %q", ErrInvalidParameters, c.Algorithm)
	}
}

func newProvider(method jwt.SigningMethod, signKey, verifyKey interface{}, issuer, audience string, ttl time.Duration) (*TokenProvider, error) {
	if issuer == "" || audience == "" || ttl <= 0 {
		return nil, ErrInvalidParameters
	}
	return &TokenProvider{
		method:    method,
		signKey:   signKey,
		verifyKey: verifyKey,
		issuer:    issuer,
		audience:  audience,
		ttl:       ttl,
	}, nil
}

// Algorithm returns the JWS algorithm name.
func (p *TokenProvider) Algorithm() string { return p.method.Alg() }

// TTL returns the access credential lifetime.
func (p *TokenProvider) TTL() time.Duration { return p.ttl }

// IssueAccess signs a short-lived access credential for the session at the given credential version.
// Every credential gets a fresh ULID as its jti.
func (p *TokenProvider) IssueAccess(principalID, sessionID string, version int64, now time.Time) (IssuedAccess, error) {
	jti := ulid.Make().String()
	now = now.UTC()
	expiresAt := now.Add(p.ttl)
	claims := AccessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        jti,
			Subject:   principalID,
			Issuer:    p.issuer,
			Audience:  jwt.ClaimStrings{p.audience},
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		SessionID:         sessionID,
		CredentialVersion: version,
	}
	token, err := jwt.NewWithClaims(p.method, claims).SignedString(p.signKey)
	if err != nil {
		return IssuedAccess{}, err
	}
	// NumericDate truncates to seconds; report the same instant the token carries.
	return IssuedAccess{Token: token, CredentialID: jti, ExpiresAt: claims.ExpiresAt.Time}, nil
}

// ValidateAccess checks signature, algorithm, issuer, audience, and time claims at now.
// It performs no store lookups. Any failure is ErrInvalidToken.
func (p *TokenProvider) ValidateAccess(tokenString string, now time.Time) (VerifiedAccess, error) {
	return p.parse(tokenString,
		jwt.WithTimeFunc(func() time.Time { return now }),
		jwt.WithExpirationRequired(),
		jwt.WithIssuer(p.issuer),
		jwt.WithAudience(p.audience),
	)
}

// ParseAccessAllowExpired checks signature, issuer and audience but tolerates an elapsed expiry.
// Used by logout, where an access credential that just expired still identifies the session.
func (p *TokenProvider) ParseAccessAllowExpired(tokenString string) (VerifiedAccess, error) {
	v, err := p.parse(tokenString, jwt.WithoutClaimsValidation())
	if err != nil {
		return VerifiedAccess{}, err
	}
	return v, nil
}

func (p *TokenProvider) parse(tokenString string, opts ...jwt.ParserOption) (VerifiedAccess, error) {
	opts = append(opts, jwt.WithValidMethods([]string{p.method.Alg()}))
	claims := &AccessClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (interface{}, error) {
		return p.verifyKey, nil
	}, opts...)
	if err != nil || !token.Valid {
		return VerifiedAccess{}, ErrInvalidToken
	}
	if claims.Issuer != p.issuer || !hasAudience(claims.Audience, p.audience) {
		return VerifiedAccess{}, ErrInvalidToken
	}
	if claims.ID == "" || claims.Subject == "" || claims.SessionID == "" || claims.CredentialVersion < 1 || claims.ExpiresAt == nil {
		return VerifiedAccess{}, ErrInvalidToken
	}
	v := VerifiedAccess{
		PrincipalID:       claims.Subject,
		SessionID:         claims.SessionID,
		CredentialID:      claims.ID,
		CredentialVersion: claims.CredentialVersion,
		ExpiresAt:         claims.ExpiresAt.Time,
	}
	if claims.IssuedAt != nil {
		v.IssuedAt = claims.IssuedAt.Time
	}
	return v, nil
}

func hasAudience(aud jwt.ClaimStrings, want string) bool {
	for _, a := range aud {
		if a == want {
			return true
		}
	}
	return false
}
