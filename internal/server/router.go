package server

import (
	"github.com/gin-gonic/gin"

	"github.com/stanislav-shchetinin/security-web/internal/api"
	"github.com/stanislav-shchetinin/security-web/internal/auth"
)

// New assembles the gin engine: public auth routes, the bearer-token gate,
// and the protected /api group behind it.
func New(tokens *auth.TokenService, authCtrl *auth.Controller, apiCtrl *api.Controller) *gin.Engine {
	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	a := r.Group("/auth")
	a.POST("/login", authCtrl.Login)
	a.POST("/register", authCtrl.Register)

	g := r.Group("/api", auth.RequireAuth(tokens))
	g.GET("/data", apiCtrl.GetData)
	g.POST("/posts", apiCtrl.CreatePost)
	g.GET("/posts/my", apiCtrl.MyPosts)
	g.GET("/users", apiCtrl.ListUsers)
	g.GET("/me", apiCtrl.Me)

	return r
}
