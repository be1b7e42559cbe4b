package service

import (
	"ForumFlare/internal/api/dto"
	"ForumFlare/internal/pkg/consts"
	"ForumFlare/internal/pkg/security"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndVerifyToken(t *testing.T) {
	svc := NewAuthService(security.NewJWTManager("secret", time.Hour), newFakeKV())
	ctx := context.Background()

	token, err := svc.IssueToken(ctx, &dto.TokenRequestDTO{Email: "a@x.com"})
	require.NoError(t, err)

	claims, err := svc.VerifyToken(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", claims.Email)

	_, err = svc.VerifyToken(ctx, token+"x")
	assert.ErrorIs(t, err, ErrTokenInvalid)
	_, err = svc.VerifyToken(ctx, "garbage")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestLogoutRevokesToken(t *testing.T) {
	kv := newFakeKV()
	svc := NewAuthService(security.NewJWTManager("secret", time.Hour), kv)
	ctx := context.Background()

	token, err := svc.IssueToken(ctx, &dto.TokenRequestDTO{Email: "a@x.com"})
	require.NoError(t, err)
	require.NoError(t, svc.Logout(ctx, token))

	_, err = svc.VerifyToken(ctx, token)
	assert.ErrorIs(t, err, ErrTokenInvalid)

	sig := token[strings.LastIndex(token, ".")+1:]
	ttl := kv.ttl[consts.TokenRevokedKey+sig]
	assert.Greater(t, ttl, 59*time.Minute)
	assert.LessOrEqual(t, ttl, time.Hour)
}

func TestLogoutInvalidToken(t *testing.T) {
	svc := NewAuthService(security.NewJWTManager("secret", time.Hour), newFakeKV())
	assert.ErrorIs(t, svc.Logout(context.Background(), "a.b.c"), ErrTokenInvalid)
}
