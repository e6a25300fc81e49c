package service

import (
	"errors"
	"fmt"
	"time"

	"template-vault/internal/apperr"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrInvalidToken 簽章、演算法、格式或期限任一不符
var ErrInvalidToken = fmt.Errorf("%w: invalid token", apperr.ErrUnauthorized)

var (
	timeNow = time.Now
	newJTI  = uuid.NewString
)

// Claims 定義 JWT 負載內容：sub, iat, exp, jti
type Claims struct {
	jwt.RegisteredClaims
}

// TokenService 簽發與驗證 HS256 access token；secret 於啟動時注入
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

const DefaultTokenTTL = 24 * time.Hour

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

// Issue 依使用者 id 產生 JWT，回傳 token 與到期時間
func (s *TokenService) Issue(userID string) (string, time.Time, error) {
	if userID == "" {
		return "", time.Time{}, fmt.Errorf("IssueToken: %w: empty subject", apperr.ErrInternal)
	}
	now := timeNow()
	expiresAt := now.Add(s.ttl)
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			ID:        newJTI(),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("IssueToken: %w: %w", apperr.ErrInternal, err)
	}
	// NumericDate 只保留到秒
	return signed, claims.ExpiresAt.Time, nil
}

// Parse 驗證 token 並回傳完整 claims
func (s *TokenService) Parse(token string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims,
		func(*jwt.Token) (any, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(timeNow),
	)
	if err != nil {
		return nil, errors.Join(ErrInvalidToken, err)
	}
	if !parsed.Valid || claims.Subject == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// Verify 回傳 token 所屬的使用者 id
func (s *TokenService) Verify(token string) (string, error) {
	claims, err := s.Parse(token)
	if err != nil {
		return "", err
	}
	return claims.Subject, nil
}
