package controllers

import (
	"maestro/config"
	"maestro/internal/repositories"
	"maestro/internal/services"

	catalogController "maestro/internal/controllers/catalog"
	reconciliationController "maestro/internal/controllers/reconciliation"
)

type Controllers struct {
	Reconciliation reconciliationController.ReconciliationControllerInterface
	Catalog        catalogController.CatalogControllerInterface
}

func New(
	services services.Service,
	repos repositories.Repository,
	config config.Config,
) Controllers {
	return Controllers{
		Reconciliation: reconciliationController.New(repos, services, config),
		Catalog:        catalogController.New(repos, services, config),
	}
}
