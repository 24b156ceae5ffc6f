package component

// Marker components. They carry no data; presence in the store is the flag.

// Avatar marks the player-controlled entity.
type Avatar struct{}

// Target marks the static target entity.
type Target struct{}

// Camera marks the free-fly camera entity.
type Camera struct{}
