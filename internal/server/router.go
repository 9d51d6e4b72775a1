// Package server wires repositories, services and handlers into the eWallet
// API router.
package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/h4ks-com/ewallet/internal/handlers"
	"github.com/h4ks-com/ewallet/internal/ledger"
	"github.com/h4ks-com/ewallet/internal/middleware"
	"github.com/h4ks-com/ewallet/internal/repository"
	"github.com/h4ks-com/ewallet/internal/services"
	"gorm.io/gorm"

	_ "github.com/h4ks-com/ewallet/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type Options struct {
	JWTSecret    string
	AuthTokenTTL time.Duration
	AccessLog    bool
}

// Services are the domain services behind the router. The test harness calls
// the gates directly.
type Services struct {
	Users           *services.UserService
	Wallets         *services.WalletService
	Tokens          *services.TokenService
	Memberships     *services.MembershipService
	AuthTokens      *services.AuthTokenService
	Auth            *services.AuthService
	Keys            *services.KeyService
	MintGate        *services.MintGate
	TransactionGate *services.TransactionGate
}

// NewServices builds every service over the core and ledger handles.
func NewServices(db, ledgerDB *gorm.DB, opts Options) *Services {
	userRepo := repository.NewUserRepository(db)
	walletRepo := repository.NewWalletRepository(db)
	tokenRepo := repository.NewTokenRepository(db)
	transferRepo := repository.NewTransferRepository(db)
	mintRepo := repository.NewMintRepository(db)
	keyRepo := repository.NewKeyRepository(db)
	apiKeyRepo := repository.NewAPIKeyRepository(db)
	authTokenRepo := repository.NewAuthTokenRepository(db)
	membershipRepo := repository.NewMembershipRepository(db)

	l := ledger.New(ledgerDB)

	walletService := services.NewWalletService(walletRepo, l)
	authTokenService := services.NewAuthTokenService(authTokenRepo, opts.JWTSecret, opts.AuthTokenTTL)

	return &Services{
		Users:           services.NewUserService(userRepo, walletRepo, db),
		Wallets:         walletService,
		Tokens:          services.NewTokenService(tokenRepo, walletService),
		Memberships:     services.NewMembershipService(membershipRepo),
		AuthTokens:      authTokenService,
		Auth:            services.NewAuthService(keyRepo, apiKeyRepo, authTokenService),
		Keys:            services.NewKeyService(keyRepo, apiKeyRepo),
		MintGate:        services.NewMintGate(mintRepo, transferRepo, tokenRepo, walletService, l, db),
		TransactionGate: services.NewTransactionGate(transferRepo, walletRepo, tokenRepo, l, db),
	}
}

// New returns the API router.
func New(svc *Services, opts Options) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	if opts.AccessLog {
		router.Use(gin.Logger())
	}

	authMiddleware := middleware.NewAuthMiddleware(svc.Auth)
	adminMiddleware := middleware.NewAdminMiddleware(svc.Memberships)

	walletHandler := handlers.NewWalletHandler(svc.Wallets, svc.Tokens)
	userHandler := handlers.NewUserHandler(svc.Users)
	tokenHandler := handlers.NewTokenHandler(svc.Tokens, svc.MintGate)
	transferHandler := handlers.NewTransferHandler(svc.TransactionGate)
	meHandler := handlers.NewMeHandler(walletHandler, svc.AuthTokens, svc.TransactionGate)
	adminHandler := handlers.NewAdminHandler(svc.Memberships)
	loginHandler := handlers.NewLoginHandler(svc.Users, svc.AuthTokens)

	router.GET("/docs", handlers.SwaggerUI())
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, middleware.ErrorBody("client:endpoint_not_found", "Endpoint not found."))
	})

	api := router.Group("/api")
	api.Use(middleware.RequireAccept())
	{
		api.POST("/status", handlers.Status)
		api.POST("/admin.login", loginHandler.Login)

		provider := api.Group("")
		provider.Use(authMiddleware.RequireProvider())
		{
			provider.POST("/user.get", userHandler.Get)
			provider.POST("/user.create", userHandler.Create)
			provider.POST("/token.all", tokenHandler.All)
			provider.POST("/token.create", tokenHandler.Create)
			provider.POST("/mint", tokenHandler.Mint)
			provider.POST("/transfer", transferHandler.Transfer)
			provider.POST("/wallet.balances", walletHandler.Balances)
		}

		client := api.Group("")
		client.Use(authMiddleware.RequireClient())
		{
			client.POST("/me.get", meHandler.Get)
			client.POST("/me.get_wallets", meHandler.GetWallets)
			client.POST("/me.get_transactions", meHandler.GetTransactions)
			client.POST("/me.logout", meHandler.Logout)
		}

		admin := api.Group("")
		admin.Use(authMiddleware.RequireClient(), adminMiddleware.RequireAdmin())
		{
			admin.POST("/admin.memberships", adminHandler.Memberships)
		}
	}

	return router
}
