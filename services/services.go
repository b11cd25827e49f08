package services

import (
	"github.com/chaiyapat/worklog/blobstore"
	"github.com/chaiyapat/worklog/repositories"
)

// Services holds all service instances
type Services struct {
	Submission SubmissionService
}

// NewServices creates and initializes all service instances
func NewServices(repos *repositories.Repositories, files blobstore.ObjectStore) *Services {
	return &Services{
		Submission: NewSubmissionService(repos.WorkLog, files),
	}
}
