package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/login", handler.Login)
	auth.Post("/verify", handler.VerifyLogin)
	auth.Post("/resend", handler.ResendCode)
	auth.Post("/logout", handler.AuthRequired, handler.Logout)

	clients := api.Group("/clients", handler.AuthRequired)
	clients.Get("", handler.ListClients)
	clients.Post("", handler.CreateClient)
	clients.Get("/:id", handler.GetClient)
	clients.Patch("/:id", handler.UpdateClient)
	clients.Delete("/:id", handler.DeleteClient)
	clients.Patch("/:id/urls", handler.UpdateClientURLs)
	clients.Get("/:id/progress", handler.ClientProgress)

	clients.Post("/:id/phases/:phase/status", handler.SetPhaseStatus)
	clients.Post("/:id/phases/:phase/tasks", handler.AddTask)
	clients.Post("/:id/phases/:phase/tasks/:task/toggle", handler.ToggleTask)
	clients.Delete("/:id/phases/:phase/tasks/:task", handler.RemoveTask)

	clients.Post("/:id/notify/phase", handler.NotifyPhaseUpdate)
	clients.Post("/:id/notify/website-live", handler.NotifyWebsiteLive)
	clients.Post("/:id/email", handler.SendClientEmail)
}
