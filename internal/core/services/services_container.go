package services

import (
	portsrepo "github.com/floner-app/floner_backend/internal/core/ports/repositories"
	portssvc "github.com/floner-app/floner_backend/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// User service first; every plan-gated service resolves plans through it.
	container.User = NewUserService(repos.UserRepo, repos.LedgerRepo, repos.BudgetRepo, repos.GoalRepo)
	planResolver := portssvc.PlanResolverSvc(container.User)

	container.Ledger = NewLedgerService(repos.LedgerRepo, planResolver)
	container.Reporting = NewReportingService(repos.LedgerRepo)
	container.Budget = NewBudgetService(repos.BudgetRepo, planResolver)
	container.Goal = NewGoalService(repos.GoalRepo, planResolver)
	container.Tax = NewTaxService(repos.LedgerRepo, planResolver)

	return container
}
