// Package payload assembles the text that gets encoded for each key.
package payload

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"
)

// Scheme prefixes connection descriptors.
const Scheme = "ssh"

const DefaultPort = 22

var (
	ErrInvalidServer     = errors.New("invalid server")
	ErrInvalidConnection = errors.New("invalid connection descriptor")
)

// Connection holds the metadata combined with a key in connection mode.
type Connection struct {
	User string
	Host string
	Port int
}

// Validate reports whether c can produce a decodable descriptor.
func (c *Connection) Validate() error {
	if c.User == "" {
		return fmt.Errorf("%w: username is empty", ErrInvalidConnection)
	}
	if c.Host == "" {
		return fmt.Errorf("%w: host is empty", ErrInvalidConnection)
	}
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("%w: port %d out of range", ErrInvalidConnection, c.Port)
	}
	return nil
}

// URI returns the descriptor for key:
//
//	ssh://<user>@<host>:<port>?key=<query-escaped key>
func (c *Connection) URI(key string) string {
	u := url.URL{
		Scheme:   Scheme,
		User:     url.User(c.User),
		Host:     net.JoinHostPort(c.Host, strconv.Itoa(c.Port)),
		RawQuery: url.Values{"key": {key}}.Encode(),
	}
	return u.String()
}

// Build returns the payload for a key file's content. Without a connection
// the content is returned unchanged; otherwise the trimmed key is wrapped in
// a connection descriptor.
func Build(content string, conn *Connection) string {
	if conn == nil {
		return content
	}
	return conn.URI(strings.TrimSpace(content))
}

// ParseConnection decodes a descriptor produced by Build.
func ParseConnection(s string) (*Connection, string, error) {
	u, err := url.Parse(s)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrInvalidConnection, err)
	}
	if u.Scheme != Scheme {
		return nil, "", fmt.Errorf("%w: scheme %q", ErrInvalidConnection, u.Scheme)
	}
	if u.User == nil {
		return nil, "", fmt.Errorf("%w: missing user", ErrInvalidConnection)
	}

	port, err := strconv.Atoi(u.Port())
	if err != nil {
		return nil, "", fmt.Errorf("%w: port %q", ErrInvalidConnection, u.Port())
	}

	key := u.Query().Get("key")
	if key == "" {
		return nil, "", fmt.Errorf("%w: missing key", ErrInvalidConnection)
	}

	return &Connection{
		User: u.User.Username(),
		Host: u.Hostname(),
		Port: port,
	}, key, nil
}

// ParseServer splits a --server value of the form host or user@host. The
// user part is empty when absent. Ports belong in --port, so a host carrying
// one is rejected.
func ParseServer(spec string) (user, host string, err error) {
	host = spec
	if idx := strings.LastIndexByte(spec, '@'); idx != -1 {
		user = spec[:idx]
		host = spec[idx+1:]
	}

	if host == "" {
		return "", "", fmt.Errorf("%w: %q has no host", ErrInvalidServer, spec)
	}
	if _, _, splitErr := net.SplitHostPort(host); splitErr == nil {
		return "", "", fmt.Errorf("%w: %q includes a port, use --port instead", ErrInvalidServer, spec)
	}
	if strings.HasPrefix(host, "[") && strings.HasSuffix(host, "]") {
		host = host[1 : len(host)-1]
	}

	return user, host, nil
}
