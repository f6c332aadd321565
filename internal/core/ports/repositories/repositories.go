package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This provides a cleaner way to pass repositories to service constructors.
type RepositoryProvider struct {
	UserRepo   UserRepository
	LedgerRepo LedgerRepository
	BudgetRepo BudgetRepository
	GoalRepo   GoalRepository
}
