package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/IM-Mukesh/community-forum/internal/config"
	"github.com/IM-Mukesh/community-forum/internal/database"
	"github.com/IM-Mukesh/community-forum/internal/forum"
	"github.com/IM-Mukesh/community-forum/internal/handlers"
	"github.com/IM-Mukesh/community-forum/internal/mailer"
	"github.com/IM-Mukesh/community-forum/internal/middleware"
	"github.com/IM-Mukesh/community-forum/internal/repos"
)

func main() {
	godotenv.Load()
	cfg := config.Load()

	logger, err := newLogger(cfg.DevMode)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	db, err := database.InitDB(cfg.DatabasePath)
	if err != nil {
		logger.Fatal("failed to open database", zap.Error(err))
	}
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		logger.Fatal("migrations failed", zap.Error(err))
	}

	middleware.SessionTTL = time.Duration(cfg.SessionTTLHours) * time.Hour

	store := repos.NewSQLiteRepos(db)

	var mail mailer.Mailer
	if cfg.SendGridAPIKey != "" {
		mail = mailer.NewSendGridMailer(cfg.SendGridAPIKey, cfg.EmailFrom)
	} else {
		mail = &mailer.LogMailer{Logger: logger}
	}

	hub := handlers.NewHub(logger)
	go hub.Run()

	svc := forum.NewService(store, mail, hub, logger, cfg.AppURL)
	handler := handlers.NewHandler(db, store, svc, hub, logger)

	r := mux.NewRouter()
	api := r.PathPrefix("/api").Subrouter()

	// --- Auth ---
	api.HandleFunc("/signup", handler.Signup).Methods(http.MethodPost)
	api.HandleFunc("/login", handler.Login).Methods(http.MethodPost)
	api.HandleFunc("/logout", handler.Logout).Methods(http.MethodPost)
	api.HandleFunc("/me", handler.Me).Methods(http.MethodGet)

	// --- Forums ---
	api.HandleFunc("/forums", handler.ListForums).Methods(http.MethodGet)
	api.HandleFunc("/forums", middleware.RequireAuth(handler.CreateForum, db)).Methods(http.MethodPost)
	api.HandleFunc("/forums/{id}", handler.GetForum).Methods(http.MethodGet)
	api.HandleFunc("/forums/{id}", middleware.RequireAuth(handler.UpdateForum, db)).Methods(http.MethodPut)
	api.HandleFunc("/forums/{id}", middleware.RequireAuth(handler.DeleteForum, db)).Methods(http.MethodDelete)
	api.HandleFunc("/forums/{id}/like", middleware.RequireAuth(handler.LikeForum, db)).Methods(http.MethodPost)

	// --- Comments ---
	api.HandleFunc("/forums/{id}/comments", handler.ListComments).Methods(http.MethodGet)
	api.HandleFunc("/forums/{id}/comments", middleware.RequireAuth(handler.CreateComment, db)).Methods(http.MethodPost)
	api.HandleFunc("/comments/{id}", middleware.RequireAuth(handler.DeleteComment, db)).Methods(http.MethodDelete)
	api.HandleFunc("/comments/{id}/like", middleware.RequireAuth(handler.LikeComment, db)).Methods(http.MethodPost)

	// --- Tags ---
	api.HandleFunc("/tags", handler.GetTags).Methods(http.MethodGet)

	// --- Profile ---
	api.HandleFunc("/profile", middleware.RequireAuth(handler.GetProfile, db)).Methods(http.MethodGet)
	api.HandleFunc("/profile", middleware.RequireAuth(handler.UpdateProfile, db)).Methods(http.MethodPut)
	api.HandleFunc("/profile/notifications", middleware.RequireAuth(handler.UpdateNotifications, db)).Methods(http.MethodPut)

	// --- Seed ---
	api.HandleFunc("/seed", handler.Seed).Methods(http.MethodPost)

	// --- WebSocket ---
	r.HandleFunc("/ws", handler.ServeWS)

	// --- Static files + SPA entry ---
	r.PathPrefix("/static/").Handler(
		http.StripPrefix("/static/", http.FileServer(http.Dir(cfg.StaticPath))),
	)
	r.PathPrefix("/").Handler(middleware.PageGuard(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/api/") {
			http.NotFound(w, r)
			return
		}
		http.ServeFile(w, r, cfg.StaticPath+"/index.html")
	}), db))

	// periodic session cleanup
	go func() {
		ticker := time.NewTicker(time.Hour)
		defer ticker.Stop()
		for range ticker.C {
			if err := middleware.CleanupExpiredSessions(db); err != nil {
				logger.Warn("session cleanup failed", zap.Error(err))
			}
		}
	}()

	server := &http.Server{
		Addr:    cfg.ServerAddr,
		Handler: r,
	}

	go func() {
		logger.Info("server listening", zap.String("addr", cfg.ServerAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	server.Shutdown(ctx)
	logger.Info("server stopped")
}

func newLogger(dev bool) (*zap.Logger, error) {
	if dev {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
