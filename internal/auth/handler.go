package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/stanislav-shchetinin/security-web/internal/httpx"
)

type loginDTO struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type registerDTO struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Password string `json:"password" binding:"required,min=6"`
	Email    string `json:"email" binding:"required,email"`
	FullName string `json:"fullName" binding:"required"`
}

type Controller struct {
	svc *Service
}

func NewController(svc *Service) *Controller {
	return &Controller{svc: svc}
}

func (ct *Controller) Login(c *gin.Context) {
	var dto loginDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		httpx.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	res, err := ct.svc.Login(dto.Username, dto.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			httpx.Error(c, http.StatusUnauthorized, "invalid credentials")
			return
		}
		httpx.Error(c, http.StatusInternalServerError, "internal server error")
		return
	}

	c.JSON(http.StatusOK, res)
}

func (ct *Controller) Register(c *gin.Context) {
	var dto registerDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		httpx.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	res, err := ct.svc.Register(dto.Username, dto.Password, dto.Email, dto.FullName)
	if err != nil {
		switch {
		case errors.Is(err, ErrUsernameTaken), errors.Is(err, ErrEmailTaken):
			httpx.Error(c, http.StatusConflict, err.Error())
		default:
			httpx.Error(c, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, res)
}
