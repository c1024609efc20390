package catalog

import "errors"

var ErrServiceNotFound = errors.New("service not found")

var ErrCategoryNotFound = errors.New("service category not found")

var ErrCleanerProfileNotFound = errors.New("cleaner profile not found")

type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Service is one offering of a cleaner. CleanerID is the user id of the
// owning cleaner, resolved through the cleaner profile, so callers can
// check the cleaner/service pairing without knowing about profiles.
type Service struct {
	ID               int64  `json:"id"`
	CleanerProfileID int64  `json:"cleanerProfileId"`
	CleanerID        string `json:"cleanerId"`
	CategoryID       int64  `json:"categoryId"`
	CategoryName     string `json:"categoryName"`
	Name             string `json:"name"`
	Description      string `json:"description"`
	IsActive         bool   `json:"isActive"`
}

// ServiceInput is the caller-supplied part of an upsert. A nil ID
// creates a new service.
type ServiceInput struct {
	ID          *int64 `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	CategoryID  int64  `json:"categoryId"`
}
