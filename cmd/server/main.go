package main

import (
	"context"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"loginsvc/internal/adapters/api"
	"loginsvc/internal/adapters/db/memory"
	mongodb "loginsvc/internal/adapters/db/mongo"
	appauth "loginsvc/internal/application/auth"
	"loginsvc/internal/application/token"
	"loginsvc/internal/config"
	"loginsvc/internal/domain/auth"
	"loginsvc/internal/infrastructure/oauth"
)

//	@title			Login Service API
//	@version		1.0
//	@description	Federated-login API issuing application-level access and refresh tokens decoupled from provider sessions

//	@host		localhost:8080
//	@BasePath	/

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization

func main() {
	// Configure zerolog
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}

	userRepo, cleanup := newUserRepository(cfg)
	defer cleanup()

	// Initialize services
	identityService := appauth.NewService(userRepo)
	tokenService := token.NewService(&cfg.Token)
	providers := oauth.NewRegistry(
		oauth.NewGoogle(cfg.Google, nil),
		oauth.NewGitHub(cfg.GitHub, nil),
	)

	// Initialize API handler
	handler := api.NewHandler(identityService, tokenService, providers, cfg)

	// Setup Gin router
	gin.SetMode(gin.ReleaseMode)
	r := gin.Default()

	// Configure CORS
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.AllowedOrigin},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
	}))

	handler.RegisterRoutes(r)

	// Start server
	log.Info().Msgf("Starting login service on port %s", cfg.HTTPPort)
	if err := r.Run(":" + cfg.HTTPPort); err != nil {
		log.Fatal().Err(err).Msg("Failed to start server")
	}
}

// newUserRepository picks the Mongo-backed store when a URI is configured
// and falls back to the in-memory store otherwise
func newUserRepository(cfg *config.Config) (auth.Repository, func()) {
	if cfg.Mongo.URI == "" {
		log.Warn().Msg("MONGO_URI not set, using in-memory user store")
		return memory.NewUserRepository(), func() {}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongodriver.Connect(ctx, options.Client().ApplyURI(cfg.Mongo.URI))
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to MongoDB")
	}
	if err := client.Ping(ctx, nil); err != nil {
		log.Fatal().Err(err).Msg("Failed to reach MongoDB")
	}

	repo := mongodb.NewUserRepository(client.Database(cfg.Mongo.Database))
	if err := repo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("Failed to create MongoDB indexes")
	}
	log.Info().Str("database", cfg.Mongo.Database).Msg("Connected to MongoDB")

	cleanup := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = client.Disconnect(ctx)
	}
	return repo, cleanup
}
