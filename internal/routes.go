package internal

import (
	"net/http"

	"mindtrackerd/internal/controllers"
	"mindtrackerd/internal/providers"
)

func InitRoutes(apiController *controllers.ApiController, accountController *controllers.AccountController) providers.RouterProviderInterface {
	routers := providers.NewRouterProvider()

	routers.Post("/entry", http.HandlerFunc(apiController.SaveEntry))
	routers.Get("/entries", http.HandlerFunc(apiController.GetEntries))
	routers.Get("/entries/recent", http.HandlerFunc(apiController.GetRecentEntries))
	routers.Get("/analytics", http.HandlerFunc(apiController.GetAnalytics))
	routers.Get("/analytics/weekly", http.HandlerFunc(apiController.GetWeekly))
	routers.Get("/moods", http.HandlerFunc(apiController.GetMoods))

	routers.Post("/session/login", http.HandlerFunc(accountController.Login))
	routers.Post("/session/signup", http.HandlerFunc(accountController.Signup))
	routers.Post("/session/logout", http.HandlerFunc(accountController.Logout))
	routers.Get("/session", http.HandlerFunc(accountController.GetSession))

	routers.Post("/upgrade", http.HandlerFunc(accountController.BeginUpgrade))
	routers.Post("/upgrade/confirm", http.HandlerFunc(accountController.ConfirmPurchase))
	routers.Get("/entitlement", http.HandlerFunc(accountController.GetEntitlement))

	routers.Get("/community", http.HandlerFunc(accountController.GetCommunity))
	routers.Post("/community/post", http.HandlerFunc(accountController.AddPost))

	routers.Post("/notifications/enable", http.HandlerFunc(accountController.EnableNotifications))

	return routers
}
