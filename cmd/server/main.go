package main

import (
	"context"                           // context package is needed for Redis operations
	"log"                               // log package is needed for logging
	"wallet_backend/internal/api"        // Custom package for API handlers
	"wallet_backend/internal/config"     // Custom package for configuration
	"wallet_backend/internal/ledger"     // Wallet and settlement service
	"wallet_backend/internal/middleware" // Custom package for middleware

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logrus for structured logging
	"gorm.io/driver/mysql"         // MySQL driver for GORM
	"gorm.io/gorm"                 // GORM ORM library
)

// Main function to set up and run the server
func main() {
	cfg := config.LoadConfig() // Load configuration

	// Setup logger
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// Connect to the database
	db, err := gorm.Open(mysql.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		logrus.Fatalf("failed to connect to DB: %v", err) // Fatal error if DB connection fails
	}

	// Setup Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr, // Redis server address
		Password: cfg.RedisPass, // Redis password
		DB:       cfg.RedisDB,   // Redis database number
	})

	// Test Redis connection
	_, err = redisClient.Ping(context.Background()).Result()
	if err != nil {
		logrus.Fatalf("failed to connect to Redis: %v", err)
	}

	// Set Mode to Release if in production
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	svc := ledger.NewService(db) // Wallet, ledger and settlement service

	// Setup Gin
	r := gin.Default() // Gin router instance

	// Set trusted proxies for Gin
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logrus.Fatalf("failed to set trusted proxies: %v", err)
	}

	// Auth routes
	authGroup := r.Group("/auth")
	authGroup.POST("/create-wallet", api.RegisterHandler(svc, cfg.JWTAccessSecret, cfg.JWTRefreshSecret))       // Registration endpoint
	authGroup.POST("/access-wallet", api.LoginHandler(svc, cfg.JWTAccessSecret, cfg.JWTRefreshSecret))          // Login endpoint
	authGroup.POST("/verify-access-token", api.VerifyAccessTokenHandler(cfg.JWTAccessSecret))                   // Access token check
	authGroup.POST("/verify-refresh-token", api.VerifyRefreshTokenHandler(cfg.JWTRefreshSecret))                // Refresh token check
	authGroup.POST("/generate-access-token", api.RefreshAccessTokenHandler(cfg.JWTAccessSecret, cfg.JWTRefreshSecret)) // Token refresh

	auth := middleware.JWTAuthMiddleware(cfg.JWTAccessSecret) // Protects everything below

	// Wallet routes (protected by JWT)
	walletGroup := r.Group("/wallet", auth)
	walletGroup.POST("", api.CreateWalletHandler(svc))                              // Create wallet endpoint
	walletGroup.GET("", api.ListWalletsHandler(svc))                                // List wallets endpoint
	walletGroup.GET("/:id", api.GetWalletHandler(svc))                              // Get wallet endpoint
	walletGroup.GET("/public-key/:publicKey", api.GetWalletByPublicKeyHandler(svc)) // Lookup by public key
	walletGroup.PUT("/:id", api.UpdateWalletHandler(svc))                           // Update wallet endpoint
	// Admin only: wallets are never deleted in the normal flow
	walletGroup.DELETE("/:id", middleware.AdminKeyMiddleware(cfg.AdminKey), api.DeleteWalletHandler(svc))

	// Per-wallet transaction log routes (protected by JWT)
	txGroup := r.Group("/transactions", auth)
	txGroup.POST("", api.CreateTransactionHandler(svc))                 // Append log entry endpoint
	txGroup.GET("/:publicKey", api.ListTransactionsHandler(svc))        // List log endpoint
	txGroup.GET("/:publicKey/:id", api.GetTransactionHandler(svc))      // Get log entry endpoint
	txGroup.PUT("/:publicKey/:id", api.UpdateTransactionHandler(svc))   // Update log entry endpoint
	txGroup.DELETE("/:publicKey/:id", api.DeleteTransactionHandler(svc)) // Delete log entry endpoint

	// Crypto holding routes (protected by JWT)
	holdingGroup := r.Group("/crypto-holdings", auth)
	holdingGroup.POST("/:publicKey", api.CreateHoldingHandler(svc))          // Add holding endpoint
	holdingGroup.GET("/:publicKey", api.ListHoldingsHandler(svc))            // List holdings endpoint
	holdingGroup.PUT("/:publicKey/:token", api.UpdateHoldingHandler(svc))    // Update holding endpoint
	holdingGroup.DELETE("/:publicKey/:token", api.DeleteHoldingHandler(svc)) // Delete holding endpoint

	// Ledger entry routes, including the settlement workflow (protected by JWT)
	allTxGroup := r.Group("/all-transactions", auth)
	allTxGroup.POST("", api.CreateAllTransactionHandler(svc, redisClient))                       // Create ledger entry
	allTxGroup.GET("", api.ListAllTransactionsHandler(svc))                                      // List ledger entries
	allTxGroup.GET("/pending", api.ListPendingTransactionsHandler(svc, redisClient))             // Pending entries, oldest first
	allTxGroup.GET("/:id", api.GetAllTransactionHandler(svc))                                    // Get ledger entry
	allTxGroup.PUT("/:id", api.UpdateAllTransactionHandler(svc, redisClient))                    // Update ledger entry
	allTxGroup.PUT("/:id/miner-wallet", api.UpdateMinerWalletHandler(svc, redisClient))          // Record miner, mark complete
	allTxGroup.DELETE("/:id", api.DeleteAllTransactionHandler(svc, redisClient))                 // Delete ledger entry
	allTxGroup.POST("/process", api.ProcessTransactionHandler(svc, redisClient))                 // Create transfer intent
	allTxGroup.PUT("/update-pending/:id", api.UpdatePendingTransactionHandler(svc, redisClient)) // Settle ("mine") an intent

	// Swap routes (protected by JWT)
	r.GET("/assets", auth, api.ListAssetsHandler(svc, redisClient))                    // List assets endpoint
	r.GET("/assets/:symbol/price", auth, api.GetAssetPriceHandler(svc, redisClient))   // Asset price endpoint
	r.POST("/orders", auth, api.CreateOrderHandler(svc))                               // Create order endpoint

	log.Println("Server running on " + cfg.AppPort) // Log server start
	r.Run(":" + cfg.AppPort)                        // Start the server on port cfg.AppPort
}
