package service

import (
	"context"

	"go.uber.org/zap"

	"go-user-management/internal/core/auth"
	"go-user-management/internal/domain"
	"go-user-management/pkg/utils"
)

// 未命中用户时也跑一次 bcrypt，让"邮箱不存在"和"密码错误"耗时一致
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

type LoginResult struct {
	Email     string `json:"email"`
	TokenType string `json:"tokenType"`
	Token     string `json:"token"`
}

type AuthService struct {
	users domain.UserRepository
	codec *auth.Codec
	log   *zap.Logger
}

func NewAuthService(users domain.UserRepository, codec *auth.Codec, log *zap.Logger) *AuthService {
	return &AuthService{users: users, codec: codec, log: log}
}

// Login verifies email+password and mints a token. Every failure — unknown
// email, wrong password, store or codec fault — comes back as ErrUnauthorized
// so the caller cannot probe which emails exist.
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	u, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		s.log.Error("login: user lookup failed", zap.Error(err))
		return nil, ErrUnauthorized
	}
	if u == nil {
		utils.CheckPassword(password, dummyHash)
		return nil, ErrUnauthorized
	}
	if !utils.CheckPassword(password, u.PasswordHash) {
		return nil, ErrUnauthorized
	}

	token, err := s.codec.Issue(u.UID, u.Email, u.Roles)
	if err != nil {
		s.log.Error("login: token issue failed", zap.Error(err))
		return nil, ErrUnauthorized
	}
	return &LoginResult{Email: u.Email, TokenType: s.codec.TokenType, Token: token}, nil
}
