package handler

import (
	"Inkwell/config"
	"Inkwell/pkg/context"
	"Inkwell/pkg/response"
	"Inkwell/service"
	"Inkwell/types"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Auth struct {
	Config      *config.Config
	AuthService service.IAuthService
}

func (a *Auth) RegisterRouter(r gin.IRouter) {
	auth := r.Group("/v1/auth")
	auth.POST("/register", context.Wrap(a.Register)) // 注册
	auth.POST("/login", context.Wrap(a.Login))       // 登录
}

// Register 注册
func (a *Auth) Register(c *gin.Context) error {
	var req types.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	token, err := a.AuthService.Register(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrUserExist) {
			return response.NewError(http.StatusBadRequest, err.Error())
		}
		return err
	}

	response.Success(c, token)
	return nil
}

// Login 登录
func (a *Auth) Login(c *gin.Context) error {
	var req types.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	token, err := a.AuthService.Login(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) || errors.Is(err, service.ErrPasswordWrong) {
			return response.NewError(http.StatusUnauthorized, err.Error())
		}
		return err
	}

	response.Success(c, token)
	return nil
}
