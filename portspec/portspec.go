// Package portspec parses textual port specifications into the ordered
// port lists the scan engine consumes.
package portspec

import (
	"fmt"
	"strconv"
	"strings"
)

// Presets are the named port groups accepted by Parse. Callers may
// consult this map directly, e.g. to list the available names.
var Presets = map[string][]int{
	"common":   {21, 22, 23, 25, 53, 80, 110, 143, 443, 445, 3306, 3389, 5432, 8080},
	"web":      {80, 443, 8080, 8443},
	"database": {1433, 1521, 3306, 5432, 27017},
	"mail":     {25, 110, 143, 465, 587, 993, 995},
	"remote":   {22, 23, 3389, 5900},
}

// Parse resolves a port specification into an ordered list of ports.
// A specification is one of:
//
//   - a preset name ("common", "web", "database", "mail", "remote")
//   - "all", meaning every port from 1 to 65535
//   - a range "start-end"
//   - a comma separated list, e.g. "22,80,443"
func Parse(spec string) ([]int, error) {
	spec = strings.TrimSpace(strings.ToLower(spec))

	if preset, ok := Presets[spec]; ok {
		ports := make([]int, len(preset))
		copy(ports, preset)
		return ports, nil
	}

	if spec == "all" {
		ports := make([]int, 0, 65535)
		for port := 1; port <= 65535; port++ {
			ports = append(ports, port)
		}
		return ports, nil
	}

	if strings.Contains(spec, "-") {
		return parseRange(spec)
	}

	return parseList(spec)
}

func parseRange(spec string) ([]int, error) {
	parts := strings.SplitN(spec, "-", 2)
	start, err := parsePort(parts[0])
	if err != nil {
		return nil, err
	}
	end, err := parsePort(parts[1])
	if err != nil {
		return nil, err
	}
	if start > end {
		return nil, fmt.Errorf("invalid port range %d-%d: start is greater than end", start, end)
	}

	ports := make([]int, 0, end-start+1)
	for port := start; port <= end; port++ {
		ports = append(ports, port)
	}
	return ports, nil
}

func parseList(spec string) ([]int, error) {
	if spec == "" {
		return nil, fmt.Errorf("empty port specification")
	}

	var ports []int
	for _, token := range strings.Split(spec, ",") {
		port, err := parsePort(token)
		if err != nil {
			return nil, err
		}
		ports = append(ports, port)
	}
	return ports, nil
}

func parsePort(token string) (int, error) {
	token = strings.TrimSpace(token)
	port, err := strconv.Atoi(token)
	if err != nil {
		return 0, fmt.Errorf("invalid port number: '%s'", token)
	}
	if port < 1 || port > 65535 {
		return 0, fmt.Errorf("port %d is outside 1-65535", port)
	}
	return port, nil
}
