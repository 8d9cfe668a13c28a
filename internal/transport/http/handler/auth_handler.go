package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-journal-api/internal/service"
	httpez "go-journal-api/internal/transport/http/ez"
)

type AuthHandler struct{ svc *service.AuthService }

func NewAuthHandler(svc *service.AuthService) *AuthHandler { return &AuthHandler{svc: svc} }

type credentialsIn struct {
	Email    string `json:"email"    binding:"required,email,max=255"`
	Password string `json:"password" binding:"required,min=8,max=72"`
}

type tokenOut struct {
	AccessToken string `json:"access_token"`
}

// MountPublic 注册/登录不挂鉴权
func (h *AuthHandler) MountPublic(g *gin.RouterGroup) {
	ez := httpez.New(g)

	httpez.RegisterAction(ez, httpez.Action[credentialsIn, tokenOut]{
		Method: http.MethodPost,
		Path:   "/auth/register",
		Binder: httpez.BindJSON,
		Status: http.StatusCreated,
		Handler: func(c *gin.Context, in *credentialsIn) (tokenOut, error) {
			tok, err := h.svc.Register(in.Email, in.Password)
			if err != nil {
				return tokenOut{}, err
			}
			return tokenOut{AccessToken: tok}, nil
		},
	})

	httpez.RegisterAction(ez, httpez.Action[credentialsIn, tokenOut]{
		Method: http.MethodPost,
		Path:   "/auth/login",
		Binder: httpez.BindJSON,
		Handler: func(c *gin.Context, in *credentialsIn) (tokenOut, error) {
			tok, err := h.svc.Login(in.Email, in.Password)
			if err != nil {
				return tokenOut{}, err
			}
			return tokenOut{AccessToken: tok}, nil
		},
	})
}
