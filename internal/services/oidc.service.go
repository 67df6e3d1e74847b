package services

import (
	"context"
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"math/big"
	"net/http"
	"sync"
	"time"

	"maestro/config"

	logger "github.com/Bparsons0904/goLogger"
	"github.com/golang-jwt/jwt/v5"
)

// OIDCDiscovery is the subset of the discovery document we use.
type OIDCDiscovery struct {
	Issuer  string `json:"issuer"`
	JWKSURI string `json:"jwks_uri"`
}

type JWK struct {
	Kid string `json:"kid"`
	Kty string `json:"kty"`
	Use string `json:"use"`
	Alg string `json:"alg"`
	N   string `json:"n"`
	E   string `json:"e"`
}

type JWKSet struct {
	Keys []JWK `json:"keys"`
}

// TokenInfo is the validated principal extracted from an ID token.
type TokenInfo struct {
	UserID string
	Email  string
	Name   string
}

type idTokenClaims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
	Name  string `json:"name"`
}

// OIDCService validates bearer ID tokens against the configured issuer.
type OIDCService struct {
	log        logger.Logger
	httpClient *http.Client
	issuer     string
	clientID   string

	discovery     *OIDCDiscovery
	jwks          *JWKSet
	discoveryMux  sync.RWMutex
	jwksMux       sync.RWMutex
	discoveryTime time.Time
	jwksTime      time.Time
	cacheTTL      time.Duration
}

func NewOIDCService(cfg config.Config) (*OIDCService, error) {
	log := logger.New("OIDCService")

	if cfg.OIDCIssuerURL == "" || cfg.OIDCClientID == "" {
		return nil, log.ErrMsg("OIDC configuration required: missing OIDCIssuerURL or OIDCClientID")
	}

	service := &OIDCService{
		log:        log,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		issuer:     cfg.OIDCIssuerURL,
		clientID:   cfg.OIDCClientID,
		cacheTTL:   15 * time.Minute,
	}

	log.Info("OIDC service initialized", "issuer", cfg.OIDCIssuerURL)
	return service, nil
}

// ValidateIDToken verifies the token signature against the issuer's JWKS and
// checks issuer and audience claims.
func (s *OIDCService) ValidateIDToken(ctx context.Context, idToken string) (*TokenInfo, error) {
	log := s.log.TraceFromContext(ctx).Function("ValidateIDToken")

	claims := &idTokenClaims{}
	token, err := jwt.ParseWithClaims(idToken, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}

		kid, ok := token.Header["kid"].(string)
		if !ok {
			return nil, fmt.Errorf("missing 'kid' in JWT header")
		}

		return s.publicKeyForKid(ctx, kid)
	},
		jwt.WithIssuer(s.issuer),
		jwt.WithAudience(s.clientID),
		jwt.WithValidMethods([]string{"RS256", "RS384", "RS512"}),
	)
	if err != nil {
		return nil, log.Err("token validation failed", err)
	}

	if !token.Valid || claims.Subject == "" {
		return nil, log.ErrMsg("token is not valid")
	}

	return &TokenInfo{
		UserID: claims.Subject,
		Email:  claims.Email,
		Name:   claims.Name,
	}, nil
}

func (s *OIDCService) publicKeyForKid(ctx context.Context, kid string) (*rsa.PublicKey, error) {
	jwks, err := s.getJWKS(ctx)
	if err != nil {
		return nil, err
	}

	for _, key := range jwks.Keys {
		if key.Kid == kid && key.Kty == "RSA" {
			return jwkToRSAPublicKey(key)
		}
	}

	return nil, fmt.Errorf("no matching JWK for kid %q", kid)
}

func (s *OIDCService) getDiscovery(ctx context.Context) (*OIDCDiscovery, error) {
	s.discoveryMux.RLock()
	if s.discovery != nil && time.Since(s.discoveryTime) < s.cacheTTL {
		defer s.discoveryMux.RUnlock()
		return s.discovery, nil
	}
	s.discoveryMux.RUnlock()

	s.discoveryMux.Lock()
	defer s.discoveryMux.Unlock()

	if s.discovery != nil && time.Since(s.discoveryTime) < s.cacheTTL {
		return s.discovery, nil
	}

	url := s.issuer + "/.well-known/openid-configuration"
	discovery := &OIDCDiscovery{}
	if err := s.getJSON(ctx, url, discovery); err != nil {
		return nil, s.log.Err("failed to fetch OIDC discovery document", err, "url", url)
	}

	s.discovery = discovery
	s.discoveryTime = time.Now()
	return discovery, nil
}

func (s *OIDCService) getJWKS(ctx context.Context) (*JWKSet, error) {
	s.jwksMux.RLock()
	if s.jwks != nil && time.Since(s.jwksTime) < s.cacheTTL {
		defer s.jwksMux.RUnlock()
		return s.jwks, nil
	}
	s.jwksMux.RUnlock()

	discovery, err := s.getDiscovery(ctx)
	if err != nil {
		return nil, err
	}

	s.jwksMux.Lock()
	defer s.jwksMux.Unlock()

	if s.jwks != nil && time.Since(s.jwksTime) < s.cacheTTL {
		return s.jwks, nil
	}

	jwks := &JWKSet{}
	if err := s.getJSON(ctx, discovery.JWKSURI, jwks); err != nil {
		return nil, s.log.Err("failed to fetch JWKS", err, "url", discovery.JWKSURI)
	}

	s.jwks = jwks
	s.jwksTime = time.Now()
	return jwks, nil
}

func (s *OIDCService) getJSON(ctx context.Context, url string, result any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d from %s", resp.StatusCode, url)
	}

	return json.NewDecoder(resp.Body).Decode(result)
}

func jwkToRSAPublicKey(key JWK) (*rsa.PublicKey, error) {
	nBytes, err := base64.RawURLEncoding.DecodeString(key.N)
	if err != nil {
		return nil, fmt.Errorf("failed to decode JWK modulus: %w", err)
	}

	eBytes, err := base64.RawURLEncoding.DecodeString(key.E)
	if err != nil {
		return nil, fmt.Errorf("failed to decode JWK exponent: %w", err)
	}

	e := 0
	for _, b := range eBytes {
		e = e<<8 + int(b)
	}

	return &rsa.PublicKey{
		N: new(big.Int).SetBytes(nBytes),
		E: e,
	}, nil
}
