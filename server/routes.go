package server

import "net/http"

func (s *Server) initRoutes() {
	// Public pages
	s.RegisterRouteHandler("GET "+RouteIndex, ChainMiddleware(s.IndexHandler(), s.HTMLMiddleware()...))
	s.RegisterRouteFunc("GET "+RouteHealth, s.HealthHandler())

	// SIGNUP
	s.RegisterRouteHandler("GET "+RouteSignup, ChainMiddleware(s.SignupGetHandler(), s.HTMLMiddleware()...))
	s.RegisterRouteHandler("POST "+RouteSignup, ChainMiddleware(s.SignupPostHandler(), s.HTMLMiddleware()...))

	// LOGIN / LOGOUT
	s.RegisterRouteHandler("GET "+RouteLogin, ChainMiddleware(s.LoginGetHandler(), s.HTMLMiddleware()...))
	s.RegisterRouteHandler("POST "+RouteLogin, ChainMiddleware(s.LoginPostHandler(), s.HTMLMiddleware()...))
	s.RegisterRouteHandler("GET "+RouteLogout, ChainMiddleware(s.LogoutHandler(), s.HTMLMiddleware()...))

	// Session-gated pages
	s.RegisterRouteHandler("GET "+RouteDashboard, ChainMiddleware(s.DashboardHandler(), s.HTMLMiddleware(s.RequireSession())...))

	// Media browsing
	s.RegisterRouteHandler("GET "+RouteMusic, ChainMiddleware(s.MusicHandler(), s.HTMLMiddleware()...))
	s.RegisterRouteHandler("GET "+RouteTV, ChainMiddleware(s.TVHandler(), s.HTMLMiddleware()...))
	s.RegisterRouteHandler("GET "+RouteGames, ChainMiddleware(s.GamesHandler(), s.HTMLMiddleware()...))
	s.RegisterRouteHandler("GET "+RoutePlayGame, ChainMiddleware(s.PlayGameHandler(), s.HTMLMiddleware()...))

	// Admin diagnostic listing (requires a session)
	s.RegisterRouteHandler("GET "+RouteAdminAccounts, ChainMiddleware(s.AdminAccountsHandler(), s.HTMLMiddleware(s.RequireSession())...))

	// Local HTML5 game assets
	s.RegisterRouteHandler("GET "+RouteStaticGames,
		http.StripPrefix(RouteStaticGames, http.FileServer(http.Dir(s.config.GamesDir))))
}
