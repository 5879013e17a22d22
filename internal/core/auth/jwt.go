package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken covers every validation failure: bad signature, expired,
// malformed structure, malformed subject. Callers treat them all the same;
// the wrapped cause is for logging only.
var ErrInvalidToken = errors.New("invalid token")

// Codec issues and validates self-contained HS256 tokens. The subject packs
// uid and email joined by Separator, the role names travel in a single
// Separator-joined claim under AuthoritiesKey.
type Codec struct {
	Secret         []byte
	TokenType      string // header prefix, e.g. "Bearer"
	Separator      string
	AuthoritiesKey string
	TTL            time.Duration
}

func (cd *Codec) Issue(uid, email string, roles []string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		cd.AuthoritiesKey: strings.Join(roles, cd.Separator),
		"sub":             uid + cd.Separator + email,
		"iat":             jwt.NewNumericDate(now),
		"exp":             jwt.NewNumericDate(now.Add(cd.TTL)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(cd.Secret)
}

// Validate verifies the signature before trusting any claim, then expiry,
// then the two-part subject. An empty authorities claim yields an empty role
// set; role-gated actions downstream will simply deny.
func (cd *Codec) Validate(tokenStr string) (*CallerIdentity, error) {
	claims := jwt.MapClaims{}
	t, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected alg %v", t.Header["alg"])
		}
		return cd.Secret, nil
	}, jwt.WithExpirationRequired())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !t.Valid {
		return nil, ErrInvalidToken
	}

	sub, err := claims.GetSubject()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	parts := strings.Split(sub, cd.Separator)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return nil, fmt.Errorf("%w: malformed subject", ErrInvalidToken)
	}

	var roles []string
	if s, ok := claims[cd.AuthoritiesKey].(string); ok && s != "" {
		roles = strings.Split(s, cd.Separator)
	}
	return &CallerIdentity{UID: parts[0], Email: parts[1], Roles: roles}, nil
}
