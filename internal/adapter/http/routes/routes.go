package routes

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	_ "nirman/docs"
	"nirman/internal/adapter/http/handlers"
	"nirman/internal/adapter/http/middleware"
	"nirman/internal/adapter/persistence/repository"
	"nirman/internal/config"
	"nirman/internal/domain/auth"
	"nirman/internal/infrastructure/cache"
	"nirman/internal/infrastructure/database"
	"nirman/internal/infrastructure/reports"
	"nirman/internal/infrastructure/security"
	"nirman/internal/infrastructure/storage"
	"nirman/internal/usecase"
	"nirman/internal/usecase/interfaces"
	"nirman/pkg/logger"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

// Dependencies are the collaborators the router needs once wiring is done.
type Dependencies struct {
	Tokens          interfaces.ITokenIssuer
	Policy          auth.Policy
	AuthHandler     *handlers.AuthHandler
	ProposalHandler *handlers.WorkProposalHandler
	ProgressHandler *handlers.WorkProgressHandler
}

// NewRouter builds the engine: global middleware, swagger, public and
// authenticated /api groups.
func NewRouter(d Dependencies) *gin.Engine {
	router := gin.New()
	setMiddlewares(router)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api")
	addPingRoutes(api)

	private := api.Group("", middleware.Authenticate(d.Tokens, time.Now))
	addAuthRoutes(api, private, d.AuthHandler)
	addWorkRoutes(private, d.Policy, d.ProposalHandler, d.ProgressHandler)
	return router
}

func setMiddlewares(router *gin.Engine) {
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.Recovery())
}

// Run wires every adapter from cfg and serves until ctx is cancelled.
func Run(ctx context.Context, cfg *config.Config) error {
	deps, err := wire(ctx, cfg)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.Server.Port),
		Handler:           NewRouter(deps),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info(ctx, "[http] listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info(context.Background(), "[http] shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func wire(ctx context.Context, cfg *config.Config) (Dependencies, error) {
	ddb, err := database.ConnectDynamoDB(ctx, cfg.DynamoDB)
	if err != nil {
		return Dependencies{}, err
	}

	proposalRepo := repository.NewWorkProposalDynamoRepository(ddb, cfg.DynamoDB.ProposalsTable)
	userRepo := repository.NewUserDynamoRepository(ddb, cfg.DynamoDB.UsersTable)
	sequenceRepo := repository.NewSequenceDynamoRepository(ddb, cfg.DynamoDB.CountersTable)

	tokens, err := security.NewJWTIssuer(cfg.Auth.JWTSecret, time.Duration(cfg.Auth.TokenExpireHours)*time.Hour)
	if err != nil {
		return Dependencies{}, err
	}
	hasher := security.NewBcryptHasher(0)

	var documents interfaces.IDocumentStorage
	if cfg.Minio.Endpoint != "" {
		minioStorage, err := storage.NewMinioStorage(cfg.Minio)
		if err != nil {
			return Dependencies{}, err
		}
		if err := minioStorage.EnsureBucket(ctx); err != nil {
			logger.Warn(ctx, "[storage] bucket check failed", zap.String("bucket", cfg.Minio.Bucket), zap.Error(err))
		}
		documents = minioStorage
	} else {
		logger.Warn(ctx, "[storage] minio endpoint not set, document upload disabled")
	}

	userCache := cache.NewRedisUserCache(cache.ConnectRedis(ctx, cfg.Redis), cfg.Redis.TTLMinutes)

	userUseCase := usecase.NewUserUseCase(userRepo, userCache, hasher)
	authUseCase := usecase.NewAuthUseCase(userRepo, hasher, tokens)
	proposalUseCase := usecase.NewWorkProposalUseCase(proposalRepo, sequenceRepo, documents, usecase.WorkProposalOptions{
		DeploymentCode:    cfg.Deployment.Code,
		MaxUpdateAttempts: cfg.Ledger.MaxUpdateAttempts,
	})
	progressUseCase := usecase.NewWorkProgressUseCase(proposalRepo, userUseCase, reports.NewProgressWorkbook(), usecase.WorkProgressOptions{
		MaxUpdateAttempts:        cfg.Ledger.MaxUpdateAttempts,
		EnforceCeilingOnProgress: cfg.Ledger.CeilingOnProgress(),
		DeploymentName:           cfg.Deployment.Name,
	})

	return Dependencies{
		Tokens:          tokens,
		Policy:          auth.DefaultPolicy(),
		AuthHandler:     handlers.NewAuthHandler(authUseCase),
		ProposalHandler: handlers.NewWorkProposalHandler(proposalUseCase),
		ProgressHandler: handlers.NewWorkProgressHandler(progressUseCase),
	}, nil
}
