//go:build wireinject
// +build wireinject

package di

import (
	wire "github.com/google/wire"
	"mindtrackerd/internal"
	"mindtrackerd/internal/auth"
	"mindtrackerd/internal/controllers"
	"mindtrackerd/internal/models"
	"mindtrackerd/internal/payments"
	"mindtrackerd/internal/providers"
	"mindtrackerd/internal/services"
	"mindtrackerd/internal/structures"
	"mindtrackerd/internal/tracker"
)

func InitApp(cfg *structures.CliFlags) (*internal.App, error) {

	wire.Build(
		providers.NewConfigProvider,
		providers.NewLogProvider,
		providers.NewMetricsProvider,
		providers.NewInstrumentedCacheProvider,

		models.NewJournal,
		models.NewEntitlement,
		models.NewPrefs,
		models.NewSession,
		models.NewFeed,

		services.NewStateService,
		tracker.NewZstdCompressor,
		tracker.NewFileManager,
		tracker.NewNotifier,
		tracker.NewScheduler,

		auth.NewAuthenticator,
		payments.NewCheckoutProvider,

		services.NewJournalService,
		services.NewAnalyticsService,
		services.NewEntitlementService,
		services.NewSessionService,
		services.NewCommunityService,

		controllers.NewApiController,
		controllers.NewAccountController,
		controllers.NewHealthController,
		internal.InitRoutes,
		internal.NewApp,
	)

	return nil, nil
}
