package resolvers

const (
	// Identifier for the offline range database backend.
	NameLocal = "local"

	// Identifier for the remote geolocation API backend.
	NameRemote = "remote"
)
