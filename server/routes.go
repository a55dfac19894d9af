package server

const (
	RouteLogin            = "/auth/login"
	RouteRefresh          = "/auth/refresh"
	RouteLogout           = "/auth/logout"
	RouteProfile          = "/auth/profile"
	RouteAdminCredentials = "/admin/principals/{id}/credentials"
	RouteHealth           = "/healthz"
)

func (s *Server) initRoutes() {
	s.RegisterRouteFunc("GET "+RouteHealth, s.HealthHandler())

	// Session issuance and renewal
	s.RegisterRouteFunc("POST "+RouteLogin, s.LoginHandler())
	s.RegisterRouteFunc("POST "+RouteRefresh, s.RefreshHandler())
	s.RegisterRouteFunc("POST "+RouteLogout, s.LogoutHandler())

	// Routes requiring a valid access token
	s.RegisterRouteFunc("GET "+RouteProfile, ChainMiddleware(s.ProfileHandler(), s.RequireAccessToken()))
	s.RegisterRouteFunc("POST "+RouteAdminCredentials, ChainMiddleware(s.UpdateCredentialsHandler(), s.RequireAccessToken(), s.RequireSuperAdmin()))
}
