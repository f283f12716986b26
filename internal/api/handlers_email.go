package api

import (
	"io"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/osscccar/webdash-admin/internal/mail"
)

// NotifyPhaseUpdate emails the client about one phase's current state. The
// phase index names which phase to report on; the record is not modified.
func (handler *Handler) NotifyPhaseUpdate(c *fiber.Ctx) error {
	input := notifyPhaseInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	client, err := handler.clients.GetClient(c.Params("id"))
	if err != nil {
		if response, handled := clientNotFound(c, err); handled {
			return response
		}
		log.Printf("notify: load client: %v", err)
		return apiError(c, fiber.StatusInternalServerError, "could not load client")
	}

	if input.Phase < 0 || input.Phase >= len(client.Phases) {
		return apiError(c, fiber.StatusBadRequest, "phase index out of range")
	}

	return handler.sendClientMessage(c, mail.BuildPhaseUpdateMessage(client, client.Phases[input.Phase]))
}

// NotifyWebsiteLive announces the published site. It refuses to send until a
// website URL is recorded for the client.
func (handler *Handler) NotifyWebsiteLive(c *fiber.Ctx) error {
	client, err := handler.clients.GetClient(c.Params("id"))
	if err != nil {
		if response, handled := clientNotFound(c, err); handled {
			return response
		}
		log.Printf("notify: load client: %v", err)
		return apiError(c, fiber.StatusInternalServerError, "could not load client")
	}

	if strings.TrimSpace(client.WebsiteURL) == "" {
		return apiError(c, fiber.StatusBadRequest, "client has no website url")
	}

	return handler.sendClientMessage(c, mail.BuildWebsiteLiveMessage(client))
}

// SendClientEmail relays a free-form message, optionally with file
// attachments from a multipart form.
func (handler *Handler) SendClientEmail(c *fiber.Ctx) error {
	client, err := handler.clients.GetClient(c.Params("id"))
	if err != nil {
		if response, handled := clientNotFound(c, err); handled {
			return response
		}
		log.Printf("email: load client: %v", err)
		return apiError(c, fiber.StatusInternalServerError, "could not load client")
	}

	subject := strings.TrimSpace(c.FormValue("subject"))
	body := c.FormValue("body")
	if subject == "" {
		return apiError(c, fiber.StatusBadRequest, "subject is required")
	}
	if strings.TrimSpace(body) == "" {
		return apiError(c, fiber.StatusBadRequest, "body is required")
	}

	attachments, err := readAttachments(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "could not read attachments")
	}

	return handler.sendClientMessage(c, mail.BuildAdHocMessage(client, subject, body, attachments))
}

func (handler *Handler) sendClientMessage(c *fiber.Ctx, message mail.Message) error {
	if err := handler.mailer.Send(c.Context(), message); err != nil {
		log.Printf("email: send to %s: %v", message.To, err)
		return apiError(c, fiber.StatusBadGateway, "could not send email")
	}
	return c.JSON(fiber.Map{"ok": true})
}

func readAttachments(c *fiber.Ctx) ([]mail.Attachment, error) {
	form, err := c.MultipartForm()
	if err != nil {
		// Plain JSON or urlencoded bodies carry no attachments.
		return nil, nil
	}

	files := form.File["attachments"]
	attachments := make([]mail.Attachment, 0, len(files))
	for _, header := range files {
		file, err := header.Open()
		if err != nil {
			return nil, err
		}
		content, err := io.ReadAll(file)
		file.Close()
		if err != nil {
			return nil, err
		}
		attachments = append(attachments, mail.Attachment{
			Filename: header.Filename,
			Content:  content,
		})
	}
	return attachments, nil
}
