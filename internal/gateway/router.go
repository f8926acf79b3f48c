package gateway

import (
	"github.com/gin-gonic/gin"

	"github.com/davidgarcial/bank-architecture/internal/config"
)

// NewRouter wires the public HTTP surface. Everything except registration,
// login and the health probe sits behind the auth middleware.
func NewRouter(cfg *config.Config, clients *Clients) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	authHandler := NewAuthHandler(clients.Users, cfg.JWTSecret, cfg.JWTExpiredIn, cfg.JWTMaxAge)
	accountHandler := NewAccountHandler(clients.Accounts)
	bankHandler := NewBankHandler(clients.Accounts, clients.Deposits, clients.Withdrawals)
	historyHandler := NewHistoryHandler(clients.Accounts, clients.History)

	authed := RequireAuth(cfg.JWTSecret)

	auth := router.Group("/api/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.GET("/logout", authed, authHandler.Logout)
		auth.GET("/users/me", authed, authHandler.Me)
		auth.GET("/healthchecker", Healthchecker)
	}

	account := router.Group("/api/account", authed)
	{
		account.POST("/create", accountHandler.Create)
		account.GET("/list", accountHandler.List)
		account.PUT("/update", accountHandler.Update)
		account.GET("/:id", accountHandler.Get)
	}

	bank := router.Group("/api/bank", authed)
	{
		bank.POST("/deposit", bankHandler.Deposit)
		bank.POST("/withdraw", bankHandler.Withdraw)
	}

	history := router.Group("/api/history", authed)
	{
		history.GET("/transactions", historyHandler.Transactions)
	}

	return router
}
