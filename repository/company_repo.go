package repository

import "sskcargo/models"

// CompanyRepository persists the per-owner letterhead configuration.
type CompanyRepository interface {
	// Get returns the owner's company details, or nil when none are saved.
	Get(ownerID int64) (*models.CompanyDetails, error)
	// Save overwrites the owner's details wholesale.
	Save(details *models.CompanyDetails) error
}
