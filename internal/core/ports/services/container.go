package services

// ServiceContainer holds all service interfaces for handler injection.
type ServiceContainer struct {
	User      UserSvcFacade
	Ledger    LedgerSvc
	Reporting ReportingSvc
	Budget    BudgetSvc
	Goal      GoalSvc
	Tax       TaxSvc
}
