package server

// Server is the lifecycle contract of the erosion HTTP server.
type Server interface {
	// RunServer serves requests and blocks until a stop signal has been
	// handled and the server has shut down.
	RunServer()

	// Shutdown stops accepting connections and waits for in-flight
	// requests.
	Shutdown()
}
