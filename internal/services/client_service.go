package services

import (
	"strings"

	"github.com/google/uuid"
	"github.com/osscccar/webdash-admin/internal/models"
)

type ClientStore interface {
	List() ([]models.Client, error)
	FindByID(clientID string) (models.Client, error)
	Create(client *models.Client) error
	UpdateByID(clientID string, updates map[string]any) error
	SavePhases(clientID string, phases []models.Phase) error
	Delete(clientID string) error
}

// ClientService owns client records and routes phase edits through the
// tracker: load, mutate in memory, save explicitly.
type ClientService struct {
	clients ClientStore
	newID   func() string
}

func NewClientService(clients ClientStore) *ClientService {
	return &ClientService{
		clients: clients,
		newID:   uuid.NewString,
	}
}

type NewClientInput struct {
	BusinessName string
	ContactName  string
	Email        string
	Phone        string
	Status       string
	Notes        string
}

func (service *ClientService) ListClients() ([]models.Client, error) {
	return service.clients.List()
}

// GetClient loads one record and seeds the default phase template for
// clients that have none yet.
func (service *ClientService) GetClient(clientID string) (models.Client, error) {
	client, err := service.clients.FindByID(clientID)
	if err != nil {
		return models.Client{}, err
	}

	if len(client.Phases) == 0 {
		client.Phases = models.DefaultPhases()
		if err := service.clients.SavePhases(client.ID, client.Phases); err != nil {
			return models.Client{}, err
		}
	}

	return client, nil
}

func (service *ClientService) CreateClient(input NewClientInput) (models.Client, error) {
	status := strings.TrimSpace(input.Status)
	if status == "" {
		status = models.ClientStatusActive
	}

	client := models.Client{
		ID:           service.newID(),
		BusinessName: strings.TrimSpace(input.BusinessName),
		ContactName:  strings.TrimSpace(input.ContactName),
		Email:        strings.ToLower(strings.TrimSpace(input.Email)),
		Phone:        strings.TrimSpace(input.Phone),
		Status:       status,
		Notes:        input.Notes,
		Phases:       models.DefaultPhases(),
	}
	if err := service.clients.Create(&client); err != nil {
		return models.Client{}, err
	}
	return client, nil
}

func (service *ClientService) UpdateClient(clientID string, updates map[string]any) (models.Client, error) {
	if len(updates) > 0 {
		if err := service.clients.UpdateByID(clientID, updates); err != nil {
			return models.Client{}, err
		}
	}
	return service.clients.FindByID(clientID)
}

func (service *ClientService) UpdateURLs(clientID string, domainURL string, websiteURL string) (models.Client, error) {
	return service.UpdateClient(clientID, map[string]any{
		"domain_url":  strings.TrimSpace(domainURL),
		"website_url": strings.TrimSpace(websiteURL),
	})
}

func (service *ClientService) DeleteClient(clientID string) error {
	return service.clients.Delete(clientID)
}

// SetPhaseStatus applies a manual status override to one phase and persists
// the resulting list. The updated phase is returned for notification emails.
func (service *ClientService) SetPhaseStatus(clientID string, phaseIndex int, status string) (models.Client, models.Phase, error) {
	client, err := service.GetClient(clientID)
	if err != nil {
		return models.Client{}, models.Phase{}, err
	}

	if err := SetPhaseStatus(client.Phases, phaseIndex, status); err != nil {
		return models.Client{}, models.Phase{}, err
	}

	if err := service.clients.SavePhases(client.ID, client.Phases); err != nil {
		return models.Client{}, models.Phase{}, err
	}
	return client, client.Phases[phaseIndex], nil
}

func (service *ClientService) ToggleTask(clientID string, phaseIndex int, taskIndex int) (models.Client, error) {
	client, err := service.GetClient(clientID)
	if err != nil {
		return models.Client{}, err
	}

	if err := ToggleTask(client.Phases, phaseIndex, taskIndex); err != nil {
		return models.Client{}, err
	}

	if err := service.clients.SavePhases(client.ID, client.Phases); err != nil {
		return models.Client{}, err
	}
	return client, nil
}

func (service *ClientService) AddTask(clientID string, phaseIndex int, taskName string) (models.Client, error) {
	client, err := service.GetClient(clientID)
	if err != nil {
		return models.Client{}, err
	}

	if err := AddTask(client.Phases, phaseIndex, taskName); err != nil {
		return models.Client{}, err
	}

	if err := service.clients.SavePhases(client.ID, client.Phases); err != nil {
		return models.Client{}, err
	}
	return client, nil
}

func (service *ClientService) RemoveTask(clientID string, phaseIndex int, taskIndex int) (models.Client, error) {
	client, err := service.GetClient(clientID)
	if err != nil {
		return models.Client{}, err
	}

	if err := RemoveTask(client.Phases, phaseIndex, taskIndex); err != nil {
		return models.Client{}, err
	}

	if err := service.clients.SavePhases(client.ID, client.Phases); err != nil {
		return models.Client{}, err
	}
	return client, nil
}

// Progress reports the completed-phase percentage for one client.
func (service *ClientService) Progress(clientID string) (int, error) {
	client, err := service.GetClient(clientID)
	if err != nil {
		return 0, err
	}
	return CompletionPercentage(client.Phases), nil
}
