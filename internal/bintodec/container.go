package bintodec

import "gorm.io/gorm"

type Container struct {
	Handler *Handler
	Service Service
}

// NewContainer picks the attempt store: the database when one is
// connected, else the CSV log when a path is set, else nothing.
func NewContainer(db *gorm.DB, attemptLogPath string) *Container {
	var repo AttemptRepository
	switch {
	case db != nil:
		repo = NewRepository(db)
	case attemptLogPath != "":
		repo = NewCSVRepository(attemptLogPath)
	default:
		repo = NewNoopRepository()
	}

	service := NewService(repo, NewRandomGenerator())
	handler := NewHandler(service)

	return &Container{
		Handler: handler,
		Service: service,
	}
}
