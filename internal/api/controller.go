package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/stanislav-shchetinin/security-web/internal/auth"
	"github.com/stanislav-shchetinin/security-web/internal/httpx"
	"github.com/stanislav-shchetinin/security-web/internal/posts"
	"github.com/stanislav-shchetinin/security-web/internal/users"
)

type createPostDTO struct {
	Title   string `json:"title" binding:"required,max=200"`
	Content string `json:"content" binding:"required"`
}

// UserResponse is the user shape exposed over the API.
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	FullName  string    `json:"fullName"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// Controller serves the protected /api routes. Every handler here runs
// behind auth.RequireAuth.
type Controller struct {
	posts *posts.Service
	users users.Store
}

func NewController(postSvc *posts.Service, userStore users.Store) *Controller {
	return &Controller{posts: postSvc, users: userStore}
}

// GetData handles GET /api/data.
func (ct *Controller) GetData(c *gin.Context) {
	list, err := ct.posts.ListAll()
	if err != nil {
		httpx.Error(c, http.StatusInternalServerError, "internal server error")
		return
	}
	c.JSON(http.StatusOK, list)
}

// CreatePost handles POST /api/posts.
func (ct *Controller) CreatePost(c *gin.Context) {
	ident, ok := auth.CurrentIdentity(c)
	if !ok {
		httpx.Error(c, http.StatusUnauthorized, "unauthenticated")
		return
	}

	var dto createPostDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		httpx.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	post, err := ct.posts.Create(ident, dto.Title, dto.Content)
	if err != nil {
		if errors.Is(err, users.ErrNotFound) {
			httpx.Error(c, http.StatusNotFound, "user not found")
			return
		}
		httpx.Error(c, http.StatusInternalServerError, "internal server error")
		return
	}

	c.JSON(http.StatusOK, post)
}

// MyPosts handles GET /api/posts/my.
func (ct *Controller) MyPosts(c *gin.Context) {
	ident, ok := auth.CurrentIdentity(c)
	if !ok {
		httpx.Error(c, http.StatusUnauthorized, "unauthenticated")
		return
	}

	list, err := ct.posts.ListMine(ident)
	if err != nil {
		if errors.Is(err, users.ErrNotFound) {
			httpx.Error(c, http.StatusNotFound, "user not found")
			return
		}
		httpx.Error(c, http.StatusInternalServerError, "internal server error")
		return
	}
	c.JSON(http.StatusOK, list)
}

// ListUsers handles GET /api/users.
func (ct *Controller) ListUsers(c *gin.Context) {
	list, err := ct.users.List()
	if err != nil {
		httpx.Error(c, http.StatusInternalServerError, "internal server error")
		return
	}

	out := make([]UserResponse, 0, len(list))
	for i := range list {
		out = append(out, toUserResponse(&list[i]))
	}
	c.JSON(http.StatusOK, out)
}

// Me handles GET /api/me.
func (ct *Controller) Me(c *gin.Context) {
	ident, ok := auth.CurrentIdentity(c)
	if !ok {
		httpx.Error(c, http.StatusUnauthorized, "unauthenticated")
		return
	}

	u, err := ct.users.FindByUsername(ident.Username)
	if err != nil {
		if errors.Is(err, users.ErrNotFound) {
			httpx.Error(c, http.StatusNotFound, "user not found")
			return
		}
		httpx.Error(c, http.StatusInternalServerError, "internal server error")
		return
	}
	c.JSON(http.StatusOK, toUserResponse(u))
}

func toUserResponse(u *users.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		FullName:  u.FullName,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}
