package platform

// New returns the Platform backend selected at compile time for this
// operating system.
func New() Platform {
	return newBackend()
}
