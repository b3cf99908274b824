package art

// ArtError is an error type for the art module
type ArtError string

func (e ArtError) Error() string {
	return string(e)
}

// ErrInvalidConfig signals an invalid tree configuration.
const ErrInvalidConfig = ArtError("art: invalid configuration")

// ErrCorrupted is flagged by the invariant checker whenever the internal
// structure of a tree is inconsistent.
const ErrCorrupted = ArtError("art: tree structure corrupted")

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
