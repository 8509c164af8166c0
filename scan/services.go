package scan

// ServiceNamer maps a port to the name of the service conventionally
// served on it. Implementations must not block on host configuration or
// the network; lookups that cannot name a port return "unknown".
type ServiceNamer func(port int) string

// ServiceName is the default ServiceNamer, backed by the static table
// of well-known TCP service assignments in wellknown.go.
func ServiceName(port int) string {
	if s, ok := wellKnownServices[port]; ok {
		return s
	}
	return "unknown"
}
