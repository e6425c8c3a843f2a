package main

import (
	"log"

	"portfolio-cms/pkg/config"
	"portfolio-cms/pkg/handlers"
	"portfolio-cms/pkg/services"
	"portfolio-cms/pkg/ws"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	// Initialize config
	config.Init()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("logger init failed: %v", err)
	}
	defer logger.Sync()

	store, err := services.OpenBlobStore()
	if err != nil {
		logger.Fatal("failed to open content store", zap.Error(err))
	}
	defer store.Close()

	content := services.NewContentService(store, services.SeedDefaults(logger), logger)
	if err := content.Load(); err != nil {
		// Non-fatal: pages serve placeholder defaults until content loads.
		logger.Warn("initial content load failed", zap.Error(err))
	}

	r := gin.Default()

	// Session Setup
	sessionStore := cookie.NewStore([]byte(config.SessionSecret))
	r.Use(sessions.Sessions(config.SessionName, sessionStore))

	// Snapshot watch hub
	hub := ws.NewHub(logger)
	go hub.Run()
	snapshots, _ := content.Subscribe()
	go func() {
		for snap := range snapshots {
			hub.Broadcast(snap)
		}
	}()

	pages := &handlers.PagesController{Service: content}
	contentCtrl := handlers.NewContentController(content)

	// --- Public Pages ---
	r.GET("/", pages.Home)
	r.GET("/about", pages.About)
	r.GET("/work", pages.Work)
	r.GET("/contact", pages.Contact)

	// --- Auth Routes ---
	r.GET("/login", handlers.LoginPage)
	r.POST("/login", handlers.Login)
	r.GET("/logout", handlers.Logout)

	// --- Admin (Authorized) ---
	authorized := r.Group("/")
	authorized.Use(handlers.AuthRequired)
	{
		authorized.GET("/admin", contentCtrl.AdminDashboard)

		api := authorized.Group("/api")
		{
			api.GET("/content", contentCtrl.GetContent)
			api.GET("/content/field", contentCtrl.GetField)
			api.GET("/content/section/:name", contentCtrl.GetSection)
			api.POST("/content/section/:name", contentCtrl.SaveSection)
			api.POST("/content/revert", contentCtrl.Revert)
			api.GET("/content/watch", ws.Handler(hub, content))
		}
	}

	r.NoRoute(handlers.NotFound)

	if err := r.Run(":" + config.Port); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}
