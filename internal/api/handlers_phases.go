package api

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// SetPhaseStatus applies a manual status override. Setting a phase completed
// finishes its tasks; activating a phase completes the one before it.
func (handler *Handler) SetPhaseStatus(c *fiber.Ctx) error {
	phaseIndex, err := c.ParamsInt("phase")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid phase index")
	}

	input := phaseStatusInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	client, _, err := handler.clients.SetPhaseStatus(c.Params("id"), phaseIndex, strings.TrimSpace(input.Status))
	if err != nil {
		if response, handled := clientNotFound(c, err); handled {
			return response
		}
		if message := phaseStatusErrorMessage(err); message != "" {
			return apiError(c, fiber.StatusBadRequest, message)
		}
		log.Printf("phases: set status: %v", err)
		return apiError(c, fiber.StatusInternalServerError, "could not update phase")
	}
	return c.JSON(newClientView(client))
}

func (handler *Handler) AddTask(c *fiber.Ctx) error {
	phaseIndex, err := c.ParamsInt("phase")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid phase index")
	}

	input := taskInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	client, err := handler.clients.AddTask(c.Params("id"), phaseIndex, input.Name)
	if err != nil {
		if response, handled := clientNotFound(c, err); handled {
			return response
		}
		if message := phaseStatusErrorMessage(err); message != "" {
			return apiError(c, fiber.StatusBadRequest, message)
		}
		log.Printf("phases: add task: %v", err)
		return apiError(c, fiber.StatusInternalServerError, "could not add task")
	}
	return c.JSON(newClientView(client))
}

func (handler *Handler) ToggleTask(c *fiber.Ctx) error {
	phaseIndex, err := c.ParamsInt("phase")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid phase index")
	}
	taskIndex, err := c.ParamsInt("task")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid task index")
	}

	client, err := handler.clients.ToggleTask(c.Params("id"), phaseIndex, taskIndex)
	if err != nil {
		if response, handled := clientNotFound(c, err); handled {
			return response
		}
		if message := phaseStatusErrorMessage(err); message != "" {
			return apiError(c, fiber.StatusBadRequest, message)
		}
		log.Printf("phases: toggle task: %v", err)
		return apiError(c, fiber.StatusInternalServerError, "could not toggle task")
	}
	return c.JSON(newClientView(client))
}

func (handler *Handler) RemoveTask(c *fiber.Ctx) error {
	phaseIndex, err := c.ParamsInt("phase")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid phase index")
	}
	taskIndex, err := c.ParamsInt("task")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid task index")
	}

	client, err := handler.clients.RemoveTask(c.Params("id"), phaseIndex, taskIndex)
	if err != nil {
		if response, handled := clientNotFound(c, err); handled {
			return response
		}
		if message := phaseStatusErrorMessage(err); message != "" {
			return apiError(c, fiber.StatusBadRequest, message)
		}
		log.Printf("phases: remove task: %v", err)
		return apiError(c, fiber.StatusInternalServerError, "could not remove task")
	}
	return c.JSON(newClientView(client))
}
