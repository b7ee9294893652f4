package common

// SaltSize is the number of random bytes prepended to every password digest.
const SaltSize = 16

// Routes shared by the server router and the terminal client.
const (
	RouteRegister     = "/user/register"
	RouteLogin        = "/user/login"
	RouteLogout       = "/user/logout"
	RouteSession      = "/user/session"
	RouteSettings     = "/settings"
	RouteSaveSettings = "/settings/save"
)
