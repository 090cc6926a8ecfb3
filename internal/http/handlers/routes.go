package handlers

// Route patterns served by the gateway. They double as metric labels.
const (
	RouteHealth  = "/api/health"
	RouteTeams   = "/api/teams"
	RoutePlayers = "/api/players/{teamId:[0-9]+}"
	RouteStats   = "/api/stats/{playerId:[0-9]+}"
)
