package service

import (
	"context"
	"errors"

	"smart_survey_backend/internal/config"
	"smart_survey_backend/internal/model"
	"smart_survey_backend/internal/repository"
	"smart_survey_backend/internal/util"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct {
	UserRepo *repository.UserRepository
	Tokens   repository.TokenStore
	Cfg      *config.Config
}

func NewAuthService(userRepo *repository.UserRepository, tokens repository.TokenStore, cfg *config.Config) *AuthService {
	return &AuthService{
		UserRepo: userRepo,
		Tokens:   tokens,
		Cfg:      cfg,
	}
}

func (s *AuthService) Register(ctx context.Context, name, email, password string) (*model.User, string, error) {
	_, err := s.UserRepo.FindByEmail(email)
	if err == nil {
		return nil, "", util.ErrEmailRegistered
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	user := &model.User{
		Name:     name,
		Email:    email,
		Password: string(hashedPassword),
	}
	if err := s.UserRepo.Create(user); err != nil {
		return nil, "", err
	}

	token, err := s.issueToken(ctx, user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Login 校验凭据并签发新令牌。邮箱不存在和密码错误返回同一个错误，
// 不向调用方泄露账号是否存在。
func (s *AuthService) Login(ctx context.Context, email, password string) (*model.User, string, error) {
	user, err := s.UserRepo.FindByEmail(email)
	if err != nil {
		return nil, "", util.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", util.ErrInvalidCredentials
	}

	token, err := s.issueToken(ctx, user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *AuthService) Logout(ctx context.Context, userID uint) error {
	return s.Tokens.Revoke(ctx, userID)
}

// issueToken 覆盖写入会话存储，同一用户之前签发的令牌随之失效
func (s *AuthService) issueToken(ctx context.Context, user *model.User) (string, error) {
	token, tokenID, err := util.GenerateJWT(user, s.Cfg.JWT.Secret, s.Cfg.JWT.ExpireTime)
	if err != nil {
		return "", err
	}
	if err := s.Tokens.Save(ctx, user.ID, tokenID, s.Cfg.JWT.ExpireTime); err != nil {
		return "", err
	}
	return token, nil
}

func (s *AuthService) GetCurrentUser(c *gin.Context) *model.User {
	claims := util.GetUserFromContext(c)
	if claims == nil {
		return nil
	}

	user, err := s.UserRepo.FindByID(claims.UserID)
	if err != nil {
		return nil
	}
	return user
}
