package api

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/osscccar/webdash-admin/internal/models"
	"github.com/osscccar/webdash-admin/internal/services"
	"gorm.io/gorm"
)

type clientView struct {
	ID           string         `json:"id"`
	BusinessName string         `json:"business_name"`
	ContactName  string         `json:"contact_name"`
	Email        string         `json:"email"`
	Phone        string         `json:"phone"`
	Status       string         `json:"status"`
	DomainURL    string         `json:"domain_url"`
	WebsiteURL   string         `json:"website_url"`
	Notes        string         `json:"notes"`
	Phases       []models.Phase `json:"phases"`
	Completion   int            `json:"completion"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

func newClientView(client models.Client) clientView {
	return clientView{
		ID:           client.ID,
		BusinessName: client.BusinessName,
		ContactName:  client.ContactName,
		Email:        client.Email,
		Phone:        client.Phone,
		Status:       client.Status,
		DomainURL:    client.DomainURL,
		WebsiteURL:   client.WebsiteURL,
		Notes:        client.Notes,
		Phases:       client.Phases,
		Completion:   services.CompletionPercentage(client.Phases),
		CreatedAt:    client.CreatedAt,
		UpdatedAt:    client.UpdatedAt,
	}
}

func clientNotFound(c *fiber.Ctx, err error) (error, bool) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apiError(c, fiber.StatusNotFound, "client not found"), true
	}
	return nil, false
}

func (handler *Handler) ListClients(c *fiber.Ctx) error {
	clients, err := handler.clients.ListClients()
	if err != nil {
		log.Printf("clients: list: %v", err)
		return apiError(c, fiber.StatusInternalServerError, "could not list clients")
	}

	views := make([]clientView, 0, len(clients))
	for _, client := range clients {
		views = append(views, newClientView(client))
	}
	return c.JSON(fiber.Map{"clients": views})
}

func (handler *Handler) CreateClient(c *fiber.Ctx) error {
	input := clientInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if message := validateClientInput(input); message != "" {
		return apiError(c, fiber.StatusBadRequest, message)
	}

	client, err := handler.clients.CreateClient(services.NewClientInput{
		BusinessName: input.BusinessName,
		ContactName:  input.ContactName,
		Email:        input.Email,
		Phone:        input.Phone,
		Status:       input.Status,
		Notes:        input.Notes,
	})
	if err != nil {
		log.Printf("clients: create: %v", err)
		return apiError(c, fiber.StatusInternalServerError, "could not create client")
	}

	return c.Status(fiber.StatusCreated).JSON(newClientView(client))
}

func (handler *Handler) GetClient(c *fiber.Ctx) error {
	client, err := handler.clients.GetClient(c.Params("id"))
	if err != nil {
		if response, handled := clientNotFound(c, err); handled {
			return response
		}
		log.Printf("clients: get: %v", err)
		return apiError(c, fiber.StatusInternalServerError, "could not load client")
	}
	return c.JSON(newClientView(client))
}

func (handler *Handler) UpdateClient(c *fiber.Ctx) error {
	input := clientPatchInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	updates, message := buildClientUpdates(input)
	if message != "" {
		return apiError(c, fiber.StatusBadRequest, message)
	}

	client, err := handler.clients.UpdateClient(c.Params("id"), updates)
	if err != nil {
		if response, handled := clientNotFound(c, err); handled {
			return response
		}
		log.Printf("clients: update: %v", err)
		return apiError(c, fiber.StatusInternalServerError, "could not update client")
	}
	return c.JSON(newClientView(client))
}

func (handler *Handler) DeleteClient(c *fiber.Ctx) error {
	if err := handler.clients.DeleteClient(c.Params("id")); err != nil {
		if response, handled := clientNotFound(c, err); handled {
			return response
		}
		log.Printf("clients: delete: %v", err)
		return apiError(c, fiber.StatusInternalServerError, "could not delete client")
	}
	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) UpdateClientURLs(c *fiber.Ctx) error {
	input := urlsInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	client, err := handler.clients.UpdateURLs(c.Params("id"), input.DomainURL, input.WebsiteURL)
	if err != nil {
		if response, handled := clientNotFound(c, err); handled {
			return response
		}
		log.Printf("clients: update urls: %v", err)
		return apiError(c, fiber.StatusInternalServerError, "could not update urls")
	}
	return c.JSON(newClientView(client))
}

func (handler *Handler) ClientProgress(c *fiber.Ctx) error {
	completion, err := handler.clients.Progress(c.Params("id"))
	if err != nil {
		if response, handled := clientNotFound(c, err); handled {
			return response
		}
		log.Printf("clients: progress: %v", err)
		return apiError(c, fiber.StatusInternalServerError, "could not compute progress")
	}
	return c.JSON(fiber.Map{"completion": completion})
}
