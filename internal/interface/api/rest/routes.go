package rest

const (
	// api
	RouteApiV1 = "/api/v1"

	// auth
	RouteConnect    = RouteApiV1 + "/connect"
	RouteDisconnect = RouteApiV1 + "/disconnect"

	RouteUsers  = RouteApiV1 + "/users"
	RouteUserMe = RouteUsers + "/me"

	RouteFiles = RouteApiV1 + "/files"
	RouteFile  = RouteFiles + "/:id"

	// ops
	RouteStatus  = RouteApiV1 + "/status"
	RouteStats   = RouteApiV1 + "/stats"
	RouteHealth  = RouteApiV1 + "/healthz"
	RouteMetrics = RouteApiV1 + "/metrics"
)
