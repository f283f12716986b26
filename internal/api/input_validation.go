package api

import (
	"errors"
	"strings"

	"github.com/osscccar/webdash-admin/internal/models"
	"github.com/osscccar/webdash-admin/internal/services"
)

func validateClientInput(input clientInput) string {
	if strings.TrimSpace(input.BusinessName) == "" {
		return "business name is required"
	}
	if normalizeEmail(input.Email) == "" {
		return "valid email is required"
	}
	if input.Status != "" && !validClientStatus(input.Status) {
		return "invalid client status"
	}
	return ""
}

func validClientStatus(status string) bool {
	switch status {
	case models.ClientStatusOnboarding, models.ClientStatusActive, models.ClientStatusArchived:
		return true
	default:
		return false
	}
}

func buildClientUpdates(input clientPatchInput) (map[string]any, string) {
	updates := make(map[string]any)

	if input.BusinessName != nil {
		name := strings.TrimSpace(*input.BusinessName)
		if name == "" {
			return nil, "business name must not be empty"
		}
		updates["business_name"] = name
	}
	if input.ContactName != nil {
		updates["contact_name"] = strings.TrimSpace(*input.ContactName)
	}
	if input.Email != nil {
		email := normalizeEmail(*input.Email)
		if email == "" {
			return nil, "valid email is required"
		}
		updates["email"] = email
	}
	if input.Phone != nil {
		updates["phone"] = strings.TrimSpace(*input.Phone)
	}
	if input.Status != nil {
		if !validClientStatus(*input.Status) {
			return nil, "invalid client status"
		}
		updates["status"] = *input.Status
	}
	if input.Notes != nil {
		updates["notes"] = *input.Notes
	}

	return updates, ""
}

func phaseStatusErrorMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, services.ErrPhaseIndex):
		return "phase index out of range"
	case errors.Is(err, services.ErrTaskIndex):
		return "task index out of range"
	case errors.Is(err, services.ErrPhaseStatus):
		return "invalid phase status"
	default:
		return ""
	}
}
