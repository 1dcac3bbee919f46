package services

import (
	portsrepo "github.com/gstbooks/gstbooks_backend/internal/core/ports/repositories"
	portssvc "github.com/gstbooks/gstbooks_backend/internal/core/ports/services"
)

// ContainerConfig carries everything the service layer needs beyond
// repositories.
type ContainerConfig struct {
	Token       TokenConfig
	GoogleOAuth GoogleOAuthConfig
}

// NewServiceContainer wires every service against the repository provider.
func NewServiceContainer(repos *portsrepo.RepositoryProvider, cfg ContainerConfig) *portssvc.ServiceContainer {
	accountSvc := NewAccountService(repos.AccountRepo)
	voucherSvc := NewVoucherService(repos.VoucherRepo, repos.AccountRepo)
	costCentreSvc := NewCostCentreService(repos.CostCentreRepo)
	reportingSvc := NewReportingService(repos.VoucherRepo, repos.AccountRepo, repos.CostCentreRepo)
	userSvc := NewUserService(repos.UserRepo, accountSvc)
	tokenSvc := NewTokenService(repos.UserRepo, cfg.Token)
	googleOAuthSvc := NewGoogleOAuthService(cfg.GoogleOAuth, userSvc, tokenSvc)

	return &portssvc.ServiceContainer{
		VoucherSvc:     voucherSvc,
		AccountSvc:     accountSvc,
		CostCentreSvc:  costCentreSvc,
		ReportingSvc:   reportingSvc,
		UserSvc:        userSvc,
		TokenSvc:       tokenSvc,
		GoogleOAuthSvc: googleOAuthSvc,
	}
}
