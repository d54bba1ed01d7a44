package authenticator

import (
	"encoding/json"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

type generateClaims struct {
	jwt.RegisteredClaims
	Object any `json:"obj,omitempty"`
}

type verifyClaims struct {
	jwt.RegisteredClaims
	Object json.RawMessage `json:"obj,omitempty"`
}

type TokenEngine struct {
	secret  string
	counter int64
	lock    sync.Mutex
}

func NewTokenEngine(secret string) *TokenEngine {
	return &TokenEngine{secret: secret}
}

func (e *TokenEngine) Generate(expiration time.Duration, obj any) (string, error) {
	e.lock.Lock()
	e.counter++
	counter := e.counter
	e.lock.Unlock()

	now := time.Now()
	claims := generateClaims{
		Object: obj,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(expiration)),
			ID:        strconv.FormatInt(counter, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(e.secret))
}

// Verify checks the signature and validity window, then unmarshals the
// embedded object into obj, which must be a pointer.
func (e *TokenEngine) Verify(token string, obj any) error {
	var claims verifyClaims
	_, err := jwt.ParseWithClaims(
		token, &claims,
		func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
			}
			return []byte(e.secret), nil
		},
	)
	if err != nil {
		return err
	}

	if claims.Object == nil {
		return nil
	}

	return json.Unmarshal(claims.Object, obj)
}
