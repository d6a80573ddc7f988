package server

// muxKeys describes enum with known API tokens.
type muxKeys string

const (
	// urlCameraID describes camera ID URL param.
	urlCameraID muxKeys = "cameraID"
	// ctxtUserName describes user in the context.
	ctxtUserName muxKeys = "user"
	// routeAPI describes base api prefix.
	routeAPI = "/api/v1"
	// routePublic describes prefix of the routes without authentication.
	routePublic = "/pub"
)
