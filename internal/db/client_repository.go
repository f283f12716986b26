package db

import (
	"github.com/osscccar/webdash-admin/internal/models"
	"gorm.io/gorm"
)

type ClientRepository struct {
	database *gorm.DB
}

func NewClientRepository(database *gorm.DB) *ClientRepository {
	return &ClientRepository{database: database}
}

func (repo *ClientRepository) List() ([]models.Client, error) {
	clients := make([]models.Client, 0)
	if err := repo.database.Order("created_at DESC, id DESC").Find(&clients).Error; err != nil {
		return nil, err
	}
	return clients, nil
}

func (repo *ClientRepository) FindByID(clientID string) (models.Client, error) {
	var client models.Client
	if err := repo.database.First(&client, "id = ?", clientID).Error; err != nil {
		return models.Client{}, err
	}
	return client, nil
}

func (repo *ClientRepository) Create(client *models.Client) error {
	return repo.database.Create(client).Error
}

func (repo *ClientRepository) Save(client *models.Client) error {
	return repo.database.Save(client).Error
}

func (repo *ClientRepository) UpdateByID(clientID string, updates map[string]any) error {
	return repo.database.Model(&models.Client{}).Where("id = ?", clientID).Updates(updates).Error
}

// SavePhases persists only the phase list. Phase edits happen in memory
// through the tracker first; this is the caller's explicit save step.
func (repo *ClientRepository) SavePhases(clientID string, phases []models.Phase) error {
	return repo.database.Model(&models.Client{}).Where("id = ?", clientID).Update("phases", phases).Error
}

func (repo *ClientRepository) Delete(clientID string) error {
	return repo.database.Delete(&models.Client{}, "id = ?", clientID).Error
}

func (repo *ClientRepository) Count() (int64, error) {
	var count int64
	if err := repo.database.Model(&models.Client{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
