package domain

// LockfileVersion is the current pin file format version.
const LockfileVersion = 1

// Lockfile is the persisted result of one aggregation run: a single resolved constraint per
// package identifier, in resolution order.
type Lockfile struct {
	// Version is the lockfile format version.
	// This allows for future schema migrations and backward compatibility.
	Version int

	// Packages holds one resolved constraint per identifier.
	Packages []ResolvedConstraint
}

// NewLockfile wraps resolved constraints in a lockfile of the current format version.
func NewLockfile(resolved []ResolvedConstraint) *Lockfile {
	return &Lockfile{Version: LockfileVersion, Packages: resolved}
}
