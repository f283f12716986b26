package models

import "time"

const (
	ClientStatusOnboarding = "onboarding"
	ClientStatusActive     = "active"
	ClientStatusArchived   = "archived"
)

type Client struct {
	ID           string `gorm:"primaryKey"`
	BusinessName string `gorm:"not null"`
	ContactName  string `gorm:"not null;default:''"`
	Email        string `gorm:"not null;index"`
	Phone        string `gorm:"not null;default:''"`
	Status       string `gorm:"not null;default:active"`
	DomainURL    string `gorm:"not null;default:''"`
	WebsiteURL   string `gorm:"not null;default:''"`
	Notes        string
	Phases       []Phase `gorm:"serializer:json"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
