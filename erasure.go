package erasure

// Dropper is optionally implemented by payload types that need cleanup.
// An owning wrapper calls Drop exactly once when it releases the payload:
// on reset, on overwrite, or when a copy replaces it. Transferring a
// payload between wrappers transfers the obligation; pointer wrappers
// never drop.
type Dropper interface {
	Drop()
}
