// Package netutil validates and resolves scan targets before they reach
// the scan engine.
package netutil

import (
	"fmt"
	"net"
)

// ResolveTarget turns a target string into the address the scanner will
// probe. IPv4 and IPv6 literals are accepted verbatim; anything else is
// treated as a hostname and resolved, preferring the first IPv4 record.
func ResolveTarget(target string) (net.IP, error) {
	if ip := net.ParseIP(target); ip != nil {
		return ip, nil
	}

	ips, err := net.LookupIP(target)
	if err != nil {
		return nil, fmt.Errorf("lookup failed for '%s': %w", target, err)
	}
	if len(ips) == 0 {
		return nil, fmt.Errorf("lookup failed for '%s': no addresses found", target)
	}

	for _, ip := range ips {
		if ip.To4() != nil {
			return ip, nil
		}
	}
	return ips[0], nil
}
