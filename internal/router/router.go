package router

import (
	"Folks_Community/internal/config"
	"Folks_Community/internal/handler"
	"Folks_Community/internal/middleware"
	"Folks_Community/internal/pkg"
	"Folks_Community/internal/repository/mysql"
	"Folks_Community/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func InitRouter(db *gorm.DB, cfg *config.Config, events *pkg.EventProducer) *gin.Engine {
	r := gin.Default()

	secret := []byte(cfg.JWTSecret)

	user := handler.NewUserHandler(service.NewUserService(db, secret, cfg.SMTP))
	role := handler.NewRoleHandler(service.NewRoleService(db))
	community := handler.NewCommunityHandler(service.NewCommunityService(db, events))
	member := handler.NewMemberHandler(service.NewMemberService(db, events))

	v1 := r.Group("/v1")
	v1.Use(middleware.Identify(secret, &mysql.UserRepository{DB: db}))

	authGroup := v1.Group("/auth")
	{
		authGroup.POST("/signup", user.Signup)
		authGroup.POST("/signin", user.Signin)
		authGroup.GET("/me", user.Me)
	}

	roleGroup := v1.Group("/role")
	{
		roleGroup.POST("", role.Create)
		roleGroup.GET("", role.List)
	}

	communityGroup := v1.Group("/community")
	{
		communityGroup.POST("", community.Create)
		communityGroup.GET("", community.List)
		// gin's tree rejects the static /me/* paths next to the :id
		// wildcard, so one route takes both shapes and the handler splits
		communityGroup.GET("/:id/:sub", community.ListScoped)
	}

	memberGroup := v1.Group("/member")
	{
		memberGroup.POST("", member.Create)
		memberGroup.DELETE("/:id", member.Remove)
	}

	return r
}
