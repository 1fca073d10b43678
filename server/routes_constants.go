package server

// Route path constants
// All application routes are defined here to ensure consistency and prevent typos
const (
	// Pages
	RouteIndex     = "/"
	RouteDashboard = "/dashboard"

	// Auth Routes
	RouteSignup = "/signup"
	RouteLogin  = "/login"
	RouteLogout = "/logout"

	// Media Routes
	RouteMusic    = "/music"
	RouteTV       = "/tv"
	RouteGames    = "/games"
	RoutePlayGame = "/game/{slug}"

	// Admin Routes
	RouteAdminAccounts = "/admin/accounts"

	// Operational Routes
	RouteHealth = "/health"

	// Static assets (local HTML5 games)
	RouteStaticGames = "/static/games/"
)
