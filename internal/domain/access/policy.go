package access

import "archarad-app/internal/domain/users"

// Capability names an action a session may perform.
type Capability string

const (
	CapBrowse Capability = "browse"
	CapCurate Capability = "curate"
)

// Policy is the computed access view handed to the API layer. The core
// consumes only Privileged; capabilities exist for the client UI.
type Policy struct {
	Privileged   bool         `json:"privileged"`
	Capabilities []Capability `json:"capabilities"`
}

func CapabilitiesFor(role string) []Capability {
	if role == users.RoleCurator {
		return []Capability{CapBrowse, CapCurate}
	}
	return []Capability{CapBrowse}
}

func PolicyFor(u users.User) Policy {
	return Policy{
		Privileged:   u.IsPrivileged(),
		Capabilities: CapabilitiesFor(u.Role),
	}
}
