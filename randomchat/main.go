package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"randomchat/randomchat/config"
	"randomchat/randomchat/controllers"
	"randomchat/randomchat/middlewares"
	"randomchat/randomchat/routes"
	"randomchat/randomchat/services/genai"
	"randomchat/randomchat/sources/psql"
	"randomchat/randomchat/sources/psql/dao"
	"randomchat/randomchat/utils/logging"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

func main() {
	logging.InitLogger()
	cfg, err := config.LoadConfig()
	if err != nil {
		logging.ErrorLogger.Error("configuration error", zap.Error(err))
		os.Exit(1)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	db, err := psql.NewDatabase(ctx, cfg)
	if err != nil {
		logging.ErrorLogger.Error("database connection error", zap.Error(err))
		os.Exit(1)
	}
	defer db.Close()

	userDAO := dao.NewUserDAO(db.DB)
	ownerInfoDAO := dao.NewOwnerInfoDAO(db.DB)
	geminiClient := genai.NewClient(cfg.GeminiAPIKey)

	authCtrl := controllers.NewAuthController(userDAO, cfg)
	chatCtrl := controllers.NewChatController(ownerInfoDAO, geminiClient)
	ownerInfoCtrl := controllers.NewOwnerInfoController(ownerInfoDAO)
	healthCtrl := controllers.NewHealthController()

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(middlewares.OriginGuard(cfg.AllowedOrigins))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))
	r.NotFound(routes.NotFoundHandler)

	routes.HealthRoutes(r, healthCtrl)
	r.Route("/api", func(api chi.Router) {
		api.NotFound(routes.NotFoundHandler)
		routes.HealthRoutes(api, healthCtrl)
		routes.AuthRoutes(api, authCtrl)
		routes.ChatRoutes(api, chatCtrl)
		routes.OwnerInfoRoutes(api, ownerInfoCtrl)
		routes.UserRoutes(api, cfg)
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}
	go func() {
		logging.AppLogger.Info("server listening", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.ErrorLogger.Error("server listen error", zap.Error(err))
		}
	}()
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logging.ErrorLogger.Error("server shutdown error", zap.Error(err))
	}
	logging.AppLogger.Info("server shutdown complete")
}
