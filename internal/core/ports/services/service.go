package services

// ServiceContainer bundles every service facade for handler wiring.
type ServiceContainer struct {
	VoucherSvc     VoucherSvcFacade
	AccountSvc     AccountSvcFacade
	CostCentreSvc  CostCentreSvcFacade
	ReportingSvc   ReportingSvcFacade
	UserSvc        UserSvcFacade
	TokenSvc       TokenSvcFacade
	GoogleOAuthSvc GoogleOAuthSvcFacade
}
