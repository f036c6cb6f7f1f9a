package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-manager/internal/credentials"
	"resume-manager/internal/resumes"
	"resume-manager/internal/shared/config"
	"resume-manager/internal/shared/server"
	"resume-manager/internal/shared/storage/db"
	"resume-manager/internal/users"
)

// App holds shared dependencies constructed once at startup.
type App struct {
	Config config.Config
	Router *gin.Engine
	DB     *sql.DB

	UsersRepo   users.Repo
	ResumesRepo resumes.Repo

	UsersService   *users.Service
	ResumesService *resumes.Service

	UsersHandler   *users.Handler
	ResumesHandler *resumes.Handler
}

// Build prepares shared dependencies and wires the router. The datastore
// handle is constructed here and injected into the services; nothing reaches
// for process-global state.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	var userRepo users.Repo
	var resumeRepo resumes.Repo
	if sqlDB != nil {
		userRepo = &users.PGRepo{DB: sqlDB}
		resumeRepo = &resumes.PGRepo{DB: sqlDB}
	} else {
		userRepo = users.NewMemoryRepo()
		resumeRepo = resumes.NewMemoryRepo()
	}

	tokens, err := credentials.NewTokenService(cfg.JWTSecret)
	if err != nil {
		return nil, fmt.Errorf("token service: %w", err)
	}
	passwords := credentials.NewPasswordService(cfg.BcryptCost)

	userSvc := users.NewService(userRepo, passwords, tokens, cfg.TokenTTL)
	resumeSvc := resumes.NewService(resumeRepo)

	app := &App{
		Config:         cfg,
		DB:             sqlDB,
		UsersRepo:      userRepo,
		ResumesRepo:    resumeRepo,
		UsersService:   userSvc,
		ResumesService: resumeSvc,
		UsersHandler:   users.NewHandler(userSvc),
		ResumesHandler: resumes.NewHandler(resumeSvc),
	}

	app.Router = server.NewRouter(server.RouterDeps{
		Config:  cfg,
		Auth:    userSvc,
		Users:   app.UsersHandler,
		Resumes: app.ResumesHandler,
	})

	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory repositories")
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
	}

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return sqlDB, nil
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
