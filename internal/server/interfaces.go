package server

// Server defines the lifecycle contract of the transport server managed by
// this package.
//
// Implementations are expected to block in [RunServer] until shutdown is
// requested and to release resources in [Shutdown].
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	// It returns an error if the listener could not be started.
	RunServer() error

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}
