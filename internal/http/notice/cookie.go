package notice

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	CookieName   = "casebook_notices"
	cookieMaxAge = 300
	cookieTTL    = cookieMaxAge * time.Second
)

var errBadCookie = errors.New("invalid notice cookie")

// noticeClaims is the signed cookie payload. ExpiresAt bounds replay of a
// captured cookie independently of the browser's Max-Age.
type noticeClaims struct {
	Notices []Notice `json:"notices"`
	jwt.RegisteredClaims
}

// CookieStore keeps notices client-side in an HS256-signed cookie.
type CookieStore struct {
	secret []byte
	secure bool
	now    func() time.Time
}

func NewCookieStore(secret string, secure bool) *CookieStore {
	return &CookieStore{secret: []byte(secret), secure: secure, now: time.Now}
}

func (s *CookieStore) Add(c *gin.Context, n Notice) error {
	all := pending(c)
	if all == nil {
		// Keep anything still queued from an earlier redirect.
		all, _ = s.fromRequest(c)
	}
	all = append(all, n)
	c.Set(pendingKey, all)

	value, err := s.encode(all)
	if err != nil {
		return err
	}
	s.setCookie(c, value, cookieMaxAge)
	return nil
}

func (s *CookieStore) Pop(c *gin.Context) ([]Notice, error) {
	all := pending(c)
	if all == nil {
		var err error
		all, err = s.fromRequest(c)
		if err != nil {
			// Tampered or expired: drop it and carry on without notices.
			s.setCookie(c, "", -1)
			return nil, nil
		}
	}
	c.Set(pendingKey, []Notice{})
	if _, err := c.Cookie(CookieName); err == nil || len(all) > 0 {
		s.setCookie(c, "", -1)
	}
	return all, nil
}

func (s *CookieStore) fromRequest(c *gin.Context) ([]Notice, error) {
	raw, err := c.Cookie(CookieName)
	if err != nil || raw == "" {
		return nil, nil
	}
	return s.decode(raw)
}

func (s *CookieStore) encode(ns []Notice) (string, error) {
	now := s.now()
	claims := noticeClaims{
		Notices: ns,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(cookieTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *CookieStore) decode(value string) ([]Notice, error) {
	parsed, err := jwt.ParseWithClaims(value, &noticeClaims{}, func(token *jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, fmt.Errorf("parse notice cookie: %w", err)
	}
	claims, ok := parsed.Claims.(*noticeClaims)
	if !ok || !parsed.Valid {
		return nil, errBadCookie
	}
	return claims.Notices, nil
}

func (s *CookieStore) setCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, value, maxAge, "/", "", s.secure, true)
}
