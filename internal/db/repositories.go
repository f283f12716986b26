package db

import "gorm.io/gorm"

type Repositories struct {
	Clients *ClientRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Clients: NewClientRepository(database),
	}
}
