package scan

type PortStatus uint8

const (
	StatusOpen PortStatus = iota
	StatusClosed
	StatusTimeout
	StatusError
)

func (s PortStatus) String() string {
	switch s {
	case StatusOpen:
		return "open"
	case StatusClosed:
		return "closed"
	case StatusTimeout:
		return "timeout"
	case StatusError:
		return "error"
	}
	return "unknown"
}

// Result is the outcome of probing a single port. Service is populated
// only for open ports.
type Result struct {
	Port    int
	Status  PortStatus
	Service string
}

// Progress reports how far a scan has advanced. Completed is
// non-decreasing across the events emitted by a single scan and equals
// Total exactly once, when the last probe lands.
type Progress struct {
	Completed int
	Total     int
}
