package service

import (
	"strings"

	"go-journal-api/internal/core/auth"
	"go-journal-api/internal/domain"
	"go-journal-api/pkg/utils"
)

type AuthService struct {
	users domain.UserRepository
	jwter *auth.JWTer
}

func NewAuthService(users domain.UserRepository, jwter *auth.JWTer) *AuthService {
	return &AuthService{users: users, jwter: jwter}
}

// Register 预检查 + 唯一索引兜底：两个并发注册都过了预检查时，
// 后插入的一方会从仓储层拿到 ErrEmailTaken。
func (s *AuthService) Register(email, password string) (string, error) {
	email = strings.TrimSpace(email)

	existing, err := s.users.FindByEmail(email)
	if err != nil {
		return "", err
	}
	if existing != nil {
		return "", domain.ErrEmailTaken
	}

	u := &domain.User{
		ID:           utils.NewID(),
		Email:        email,
		PasswordHash: utils.HashPassword(password),
		Role:         "user",
	}
	if err := s.users.Create(u); err != nil {
		return "", err
	}
	return s.jwter.Issue(u.ID, u.Email, u.Role)
}

// Login 查无此人和密码不对返回同一个错误，不泄露哪一步失败
func (s *AuthService) Login(email, password string) (string, error) {
	u, err := s.users.FindByEmail(strings.TrimSpace(email))
	if err != nil {
		return "", err
	}
	if u == nil || !utils.CheckPassword(password, u.PasswordHash) {
		return "", domain.ErrInvalidCredentials
	}
	return s.jwter.Issue(u.ID, u.Email, u.Role)
}
