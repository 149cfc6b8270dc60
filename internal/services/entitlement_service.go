package services

import (
	"mindtrackerd/internal/models"
	"mindtrackerd/internal/payments"
	"mindtrackerd/internal/providers"
	"mindtrackerd/internal/tracker/interfaces"
)

type EntitlementServiceInterface interface {
	Status() models.EntitlementStatus
	BeginUpgrade() (models.EntitlementStatus, string)
	ConfirmPurchase() models.EntitlementStatus
	IsPro() bool
}

type EntitlementService struct {
	state     *models.Entitlement
	checkout  payments.CheckoutProvider
	persister interfaces.SchedulerInterface
	logger    providers.Logger
}

func NewEntitlementService(state *models.Entitlement, checkout payments.CheckoutProvider, persister interfaces.SchedulerInterface, logger providers.Logger) EntitlementServiceInterface {
	return &EntitlementService{
		state:     state,
		checkout:  checkout,
		persister: persister,
		logger:    logger,
	}
}

func (s *EntitlementService) Status() models.EntitlementStatus {
	return s.state.Status()
}

// BeginUpgrade records checkout intent and returns the opaque checkout URL
// for the caller to open. Already-pro accounts get no URL.
func (s *EntitlementService) BeginUpgrade() (models.EntitlementStatus, string) {
	if !s.state.BeginUpgrade() {
		return s.state.Status(), ""
	}
	if err := s.persister.Persist(); err != nil {
		s.logger.Errorf(providers.TypeApp, "Pending upgrade not persisted: %s", err)
	}
	s.logger.Infof(providers.TypeApp, "Upgrade started, awaiting checkout confirmation")
	return s.state.Status(), s.checkout.CheckoutURL()
}

// ConfirmPurchase is trust-based: the user asserts checkout completed. It is
// accepted from free as well, and once pro there is no way back.
func (s *EntitlementService) ConfirmPurchase() models.EntitlementStatus {
	if s.state.ConfirmPurchase() {
		if err := s.persister.Persist(); err != nil {
			s.logger.Errorf(providers.TypeApp, "Pro status not persisted: %s", err)
		}
		s.logger.Infof(providers.TypeApp, "Account upgraded to pro")
	}
	return s.state.Status()
}

func (s *EntitlementService) IsPro() bool {
	return s.state.Status() == models.StatusPro
}
