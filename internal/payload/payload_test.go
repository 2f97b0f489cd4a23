package payload

import (
	"errors"
	"strings"
	"testing"
)

const testKey = "ssh-ed25519 AAAAC3NzaC1lZDI1NTE5AAAAIBq+v/z0Wl3xZ= alice@laptop"

func TestBuildPlainModeIsExact(t *testing.T) {
	content := testKey + "\n"
	if got := Build(content, nil); got != content {
		t.Errorf("Build(plain) = %q, want %q", got, content)
	}
}

func TestBuildConnectionModeRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		conn Connection
	}{
		{"hostname", Connection{User: "alice", Host: "host", Port: 22}},
		{"custom port", Connection{User: "bob", Host: "git.example.com", Port: 2222}},
		{"ipv6", Connection{User: "carol", Host: "2001:db8::1", Port: 22}},
		{"user with dot", Connection{User: "first.last", Host: "10.0.0.5", Port: 443}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn := tt.conn
			got := Build(testKey+"\n", &conn)

			if !strings.HasPrefix(got, "ssh://") {
				t.Errorf("payload %q is not scheme-prefixed", got)
			}
			if !strings.Contains(got, conn.User) {
				t.Errorf("payload %q does not contain user %q", got, conn.User)
			}

			parsed, key, err := ParseConnection(got)
			if err != nil {
				t.Fatalf("ParseConnection(%q) error: %v", got, err)
			}
			if *parsed != conn {
				t.Errorf("ParseConnection() conn = %+v, want %+v", *parsed, conn)
			}
			if key != testKey {
				t.Errorf("ParseConnection() key = %q, want %q", key, testKey)
			}
		})
	}
}

func TestBuildConnectionModeContainsComponents(t *testing.T) {
	got := Build(testKey, &Connection{User: "alice", Host: "host", Port: DefaultPort})
	want := "ssh://alice@host:22?key="
	if !strings.HasPrefix(got, want) {
		t.Errorf("Build() = %q, want prefix %q", got, want)
	}
}

func TestParseConnectionErrors(t *testing.T) {
	tests := []string{
		"https://alice@host:22?key=x",
		"ssh://host:22?key=x",
		"ssh://alice@host?key=x",
		"ssh://alice@host:22",
		"::not a url",
	}
	for _, in := range tests {
		if _, _, err := ParseConnection(in); !errors.Is(err, ErrInvalidConnection) {
			t.Errorf("ParseConnection(%q) error = %v, want ErrInvalidConnection", in, err)
		}
	}
}

func TestParseServer(t *testing.T) {
	tests := []struct {
		spec     string
		wantUser string
		wantHost string
		wantErr  bool
	}{
		{spec: "host", wantHost: "host"},
		{spec: "alice@host", wantUser: "alice", wantHost: "host"},
		{spec: "me@corp@bastion", wantUser: "me@corp", wantHost: "bastion"},
		{spec: "[2001:db8::1]", wantHost: "2001:db8::1"},
		{spec: "2001:db8::1", wantHost: "2001:db8::1"},
		{spec: "alice@", wantErr: true},
		{spec: "", wantErr: true},
		{spec: "host:2222", wantErr: true},
		{spec: "alice@[::1]:22", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			user, host, err := ParseServer(tt.spec)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidServer) {
					t.Errorf("ParseServer(%q) error = %v, want ErrInvalidServer", tt.spec, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseServer(%q) error: %v", tt.spec, err)
			}
			if user != tt.wantUser || host != tt.wantHost {
				t.Errorf("ParseServer(%q) = (%q, %q), want (%q, %q)", tt.spec, user, host, tt.wantUser, tt.wantHost)
			}
		})
	}
}

func TestConnectionValidate(t *testing.T) {
	tests := []struct {
		name    string
		conn    Connection
		wantErr bool
	}{
		{"ok", Connection{User: "a", Host: "h", Port: 22}, false},
		{"no user", Connection{Host: "h", Port: 22}, true},
		{"no host", Connection{User: "a", Port: 22}, true},
		{"port zero", Connection{User: "a", Host: "h", Port: 0}, true},
		{"port too big", Connection{User: "a", Host: "h", Port: 70000}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.conn.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
