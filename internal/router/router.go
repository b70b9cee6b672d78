package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/trainlog-dev/trainlog/internal/auth"
	"github.com/trainlog-dev/trainlog/internal/handlers"
	"github.com/trainlog-dev/trainlog/internal/middleware"
	"github.com/trainlog-dev/trainlog/internal/store"
	"github.com/trainlog-dev/trainlog/internal/types"
)

func NewRouter(s *store.Store, authService *auth.Service) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     types.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	userHandler := &handlers.UserHandler{Users: s.Users, Memberships: s.Memberships, Auth: authService}
	planHandler := &handlers.PlanHandler{Plans: s.Plans, Memberships: s.Memberships}
	eventHandler := &handlers.EventHandler{Events: s.Events, Plans: s.Plans, Memberships: s.Memberships}
	runHandler := &handlers.RunHandler{Runs: s.Runs, Events: s.Events, Memberships: s.Memberships}

	requireAuth := middleware.RequireAuth(authService)

	r.GET("/ping", handlers.Ping)
	r.POST("/token", userHandler.Token)

	user := r.Group("/user")
	{
		user.POST("/create", userHandler.Create)

		authed := user.Group("", requireAuth)
		{
			authed.GET("/info", userHandler.Info)
			authed.POST("/modify", userHandler.Modify)
			authed.DELETE("/delete", userHandler.Delete)
			authed.GET("/plans", userHandler.Plans)
		}
	}

	plan := r.Group("/plan", requireAuth)
	{
		plan.POST("/create", planHandler.Create)
		plan.GET("/get", planHandler.Get)
		plan.POST("/modify", planHandler.Modify)
		plan.DELETE("/delete", planHandler.Delete)
		plan.POST("/add_users", planHandler.AddUsers)
		plan.POST("/remove_user", planHandler.RemoveUser)
		plan.GET("/members", planHandler.Members)
	}

	event := r.Group("/event", requireAuth)
	{
		event.POST("/create", eventHandler.Create)
		event.GET("/get", eventHandler.Get)
		event.POST("/modify", eventHandler.Modify)
		event.GET("/runs", eventHandler.Runs)
		event.DELETE("/delete", eventHandler.Delete)
	}

	run := r.Group("/run", requireAuth)
	{
		run.POST("/create", runHandler.Create)
		run.GET("/info", runHandler.Info)
		run.POST("/modify", runHandler.Modify)
		run.DELETE("/delete", runHandler.Delete)
	}

	return r
}
