package service

import (
	"ForumFlare/internal/api/dto"
	"ForumFlare/internal/pkg/consts"
	"ForumFlare/internal/pkg/security"
	"context"
	"errors"
	log "log/slog"
	"time"
)

type AuthService interface {
	IssueToken(ctx context.Context, req *dto.TokenRequestDTO) (string, error)
	VerifyToken(ctx context.Context, token string) (*security.UserClaims, error)
	Logout(ctx context.Context, token string) error
}

type authServiceImpl struct {
	jwt   *security.JWTManager
	store KVStore
}

func NewAuthService(jwt *security.JWTManager, store KVStore) AuthService {
	return &authServiceImpl{
		jwt:   jwt,
		store: store,
	}
}

// IssueToken 为用户签发令牌
func (s *authServiceImpl) IssueToken(ctx context.Context, req *dto.TokenRequestDTO) (string, error) {
	token, err := s.jwt.GenerateToken(req.Email, req.Name)
	if err != nil {
		return "", err
	}
	log.InfoContext(ctx, "token issued", "email", req.Email)
	return token, nil
}

// VerifyToken 校验签名、有效期与吊销状态
func (s *authServiceImpl) VerifyToken(ctx context.Context, token string) (*security.UserClaims, error) {
	signature, err := security.ExtractSignature(token)
	if err != nil {
		return nil, ErrTokenInvalid
	}

	revoked, err := s.store.GetValue(ctx, consts.TokenRevokedKey+signature)
	if err != nil {
		return nil, err
	}
	if revoked != "" {
		return nil, ErrTokenInvalid
	}

	claims, err := s.jwt.ValidateToken(token)
	if err != nil {
		if errors.Is(err, security.ErrTokenInvalid) {
			return nil, ErrTokenInvalid
		}
		return nil, err
	}
	return claims, nil
}

// Logout 吊销令牌，吊销记录保留到令牌自然过期
func (s *authServiceImpl) Logout(ctx context.Context, token string) error {
	claims, err := s.jwt.ValidateToken(token)
	if err != nil {
		return ErrTokenInvalid
	}
	signature, err := security.ExtractSignature(token)
	if err != nil {
		return ErrTokenInvalid
	}

	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl <= 0 {
		return nil
	}
	return s.store.SetWithExpiration(ctx, consts.TokenRevokedKey+signature, claims.Email, ttl)
}
