package auth

import (
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type Config struct {
	Secret     string        `yaml:"secret" envconfig:"AUTH_SECRET" default:"change-me"`
	TTL        time.Duration `yaml:"ttl" envconfig:"AUTH_TTL" default:"336h"`
	CookieName string        `yaml:"cookieName" envconfig:"AUTH_COOKIE" default:"session"`
	BcryptCost int           `yaml:"bcryptCost" envconfig:"AUTH_BCRYPT_COST" default:"10"`
}

type Claims struct {
	jwt.RegisteredClaims
	Username string `json:"username"`
}

var ErrInvalidToken = errors.New("invalid token")

// Tokens issues and verifies HS256 session tokens.
type Tokens struct {
	key []byte
	ttl time.Duration
	now func() time.Time
}

func NewTokens(cfg Config) *Tokens {
	return &Tokens{
		key: []byte(cfg.Secret),
		ttl: cfg.TTL,
		now: time.Now,
	}
}

func (t *Tokens) Issue(id Identity) (string, time.Time, error) {
	now := t.now()
	exp := now.Add(t.ttl)
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   strconv.FormatInt(id.UserID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
		Username: id.Username,
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.key)
	if err != nil {
		return "", time.Time{}, errors.Wrap(err, "sign token")
	}
	return token, exp, nil
}

func (t *Tokens) Parse(tokenStr string) (Identity, error) {
	claims := new(Claims)
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return t.key, nil
	})
	if err != nil || !token.Valid {
		return Identity{}, ErrInvalidToken
	}
	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || userID <= 0 {
		return Identity{}, ErrInvalidToken
	}
	return Identity{UserID: userID, Username: claims.Username}, nil
}
