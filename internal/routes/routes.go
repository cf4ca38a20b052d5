// Package routes defines the API routing configuration. It wires
// repositories into services and services into handlers, then registers
// all HTTP routes.
package routes

import (
	"walletledger/internal/handlers"
	"walletledger/internal/repositories"
	"walletledger/internal/services/transaction"
	"walletledger/internal/services/wallet"

	"github.com/gofiber/fiber/v2"
)

// SetupRoutes configures all application routes.
func SetupRoutes(app *fiber.App) {
	repo := repositories.NewLedgerRepository(repositories.DB)

	walletService := wallet.NewService(repo, repositories.Cache)
	txService := transaction.NewService(repo, repositories.Cache, nil)

	walletHandler := handlers.NewWalletHandler(walletService)
	txHandler := handlers.NewTransactionHandler(txService)

	app.Get("/health", handlers.Health)

	app.Get("/wallets", walletHandler.List)
	app.Post("/wallets", walletHandler.Create)
	app.Get("/wallets/:id", walletHandler.Get)
	app.Patch("/wallets/:id", walletHandler.Update)
	app.Delete("/wallets/:id", walletHandler.Delete)

	app.Get("/transactions", txHandler.List)
	app.Post("/transactions", txHandler.Create)
	app.Get("/transactions/:id", txHandler.Get)
}
