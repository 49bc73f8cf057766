package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"

	"communityhub/config"
	_ "communityhub/docs"
	"communityhub/internal/adapters/auth"
	"communityhub/internal/adapters/email"
	"communityhub/internal/adapters/secrets"
	delivery "communityhub/internal/delivery/http"
	"communityhub/internal/delivery/http/controllers"
	"communityhub/internal/delivery/http/middleware"
	"communityhub/internal/repository/postgres"
	"communityhub/internal/services"
)

// @title Community Hub API
// @version 2.0
// @description HTTP gateway for the community association site: events, members, sponsors, gallery, surveys, complaints, and the email gateway.
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Exit(1)
	}
	logger := config.NewLogger()

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		logger.Error("failed to open database", "err", err)
		os.Exit(1)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := db.PingContext(ctx); err != nil {
		logger.Warn("database not reachable at startup", "err", err)
	}
	cancel()

	// Repositories.
	memberRepo := postgres.NewMemberRepository(db)
	eventRepo := postgres.NewEventRepository(db)
	sponsorRepo := postgres.NewSponsorRepository(db)
	galleryRepo := postgres.NewGalleryRepository(db)
	libraryRepo := postgres.NewLibraryRepository(db)
	radioRepo := postgres.NewRadioRepository(db)
	surveyRepo := postgres.NewSurveyRepository(db)
	complaintRepo := postgres.NewComplaintRepository(db)
	contactRepo := postgres.NewContactRepository(db)
	sentRepo := postgres.NewSentEmailRepository(db)
	inboxRepo := postgres.NewInboxRepository(db)
	groupRepo := postgres.NewGroupRepository(db)

	// Adapters.
	hasher := auth.NewBcryptHasher(bcrypt.DefaultCost)
	tokenIssuer := auth.NewJWTIssuer(cfg.JWTSecret)
	mailer := email.NewMailer(cfg.Email, secrets.EnvStore{}, logger)
	renderer := email.NewTemplateRenderer()

	// Services.
	memberService := services.NewMemberService(memberRepo, hasher, tokenIssuer, cfg.JWTExpiry)
	communityService := services.NewCommunityService(surveyRepo, complaintRepo, contactRepo)
	emailService := services.NewEmailService(mailer, renderer, sentRepo, inboxRepo, groupRepo, logger)

	mux := delivery.NewRouter(delivery.Controllers{
		Health:    controllers.NewHealthController(),
		Content:   controllers.NewContentController(logger, eventRepo, sponsorRepo, galleryRepo, libraryRepo),
		Member:    controllers.NewMemberController(logger, memberService),
		Community: controllers.NewCommunityController(logger, communityService),
		Email:     controllers.NewEmailController(logger, emailService),
		Radio:     controllers.NewRadioController(logger, radioRepo),
		Zelle:     controllers.NewZelleController(),
	})

	handler := middleware.CORS(middleware.Logging(logger, mux))

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		logger.Info("server starting", "port", cfg.Port, "environment", cfg.Environment, "email_provider", mailer.Provider())
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "err", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("server shutting down")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "err", err)
	}
}
