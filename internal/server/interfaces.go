package server

// Server defines the lifecycle contract of the application server.
//
// RunServer blocks until a termination signal arrives or the listener
// fails. Shutdown drains in-flight requests and frees resources.
type Server interface {
	RunServer()
	Shutdown()
}
