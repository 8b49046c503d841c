package service

import (
	"Inkwell/config"
	"Inkwell/dao"
	"Inkwell/models"
	"Inkwell/pkg/encrypt"
	"Inkwell/pkg/jwt"
	"Inkwell/pkg/snowflake"
	"Inkwell/types"
	"context"
	"time"
)

var _ IAuthService = (*AuthService)(nil)

type IAuthService interface {
	Register(ctx context.Context, req *types.RegisterRequest) (*types.TokenResponse, error)
	Login(ctx context.Context, req *types.LoginRequest) (*types.TokenResponse, error)
}

type AuthService struct {
	Config   *config.Config
	UsersDAO *dao.Users
}

// Register 注册用户并直接登录
func (s *AuthService) Register(ctx context.Context, req *types.RegisterRequest) (*types.TokenResponse, error) {
	if s.UsersDAO.IsUsernameExist(ctx, req.Username) {
		return nil, ErrUserExist
	}

	hash, err := encrypt.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &models.Users{
		Id:        snowflake.GenID(),
		Username:  req.Username,
		Email:     req.Email,
		Password:  hash,
		Nickname:  req.Nickname,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if user.Nickname == "" {
		user.Nickname = user.Username
	}

	if err := s.UsersDAO.Create(ctx, user); err != nil {
		return nil, err
	}

	return s.issueToken(user)
}

// Login 登录处理
func (s *AuthService) Login(ctx context.Context, req *types.LoginRequest) (*types.TokenResponse, error) {
	user, err := s.UsersDAO.FindByUsername(ctx, req.Username)
	if err != nil {
		if dao.IsNotFound(err) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if !encrypt.VerifyPassword(user.Password, req.Password) {
		return nil, ErrPasswordWrong
	}

	return s.issueToken(user)
}

func (s *AuthService) issueToken(user *models.Users) (*types.TokenResponse, error) {
	expire := time.Duration(s.Config.Jwt.ExpiresTime) * time.Second
	token, err := jwt.GenerateToken([]byte(s.Config.Jwt.Secret), user.Id, "access", expire)
	if err != nil {
		return nil, err
	}

	return &types.TokenResponse{
		AccessToken: token,
		ExpiresIn:   s.Config.Jwt.ExpiresTime,
		User: types.UserProfile{
			ID:       user.Id,
			Username: user.Username,
			Nickname: user.Nickname,
			Avatar:   user.Avatar,
		},
	}, nil
}
