package server

import "github.com/gofiber/fiber/v2"

// RegisterRoutes mounts the ledger API under /tiny-ledger plus a health
// probe.
func RegisterRoutes(app *fiber.App, h *Handler) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/tiny-ledger")
	api.Post("/customers", h.CreateCustomer)
	api.Get("/customers/:customerId/balance", h.GetBalance)
	api.Post("/customers/:customerId/transactions", h.CreateTransaction)
	api.Get("/customers/:customerId/transactions", h.ListTransactions)
}
