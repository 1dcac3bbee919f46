package repositories

// RepositoryProvider bundles every repository the service layer needs,
// so wiring happens in one place.
type RepositoryProvider struct {
	VoucherRepo    VoucherRepositoryFacade
	AccountRepo    AccountRepositoryFacade
	CostCentreRepo CostCentreRepositoryFacade
	UserRepo       UserRepositoryFacade
}
