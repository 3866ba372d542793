package firestore

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"strings"
)

// DefaultDatabaseURL is the public Firestore endpoint.
const DefaultDatabaseURL = "https://firestore.googleapis.com"

const (
	defaultHost = "firestore.googleapis.com"
	defaultPort = "443"
)

// Endpoint converts a database URL such as "https://nam5-firestore.googleapis.com"
// into the "host:port" form used by the gRPC transport. It returns "" for
// the public endpoint so the SDK keeps its own default. A URL without a
// scheme is treated as https.
func Endpoint(databaseURL string) (string, error) {
	raw := strings.TrimSpace(databaseURL)
	if raw == "" {
		return "", nil
	}
	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", errors.Join(ErrInvalidDatabaseURL, err)
	}
	if u.Scheme != "https" && u.Scheme != "http" {
		return "", fmt.Errorf("%w: unsupported scheme %q", ErrInvalidDatabaseURL, u.Scheme)
	}
	if u.Hostname() == "" {
		return "", fmt.Errorf("%w: missing host in %q", ErrInvalidDatabaseURL, databaseURL)
	}
	if u.Path != "" && u.Path != "/" {
		return "", fmt.Errorf("%w: unexpected path %q", ErrInvalidDatabaseURL, u.Path)
	}

	port := u.Port()
	if port == "" {
		port = defaultPort
	}
	if u.Hostname() == defaultHost && port == defaultPort {
		return "", nil
	}
	return net.JoinHostPort(u.Hostname(), port), nil
}
