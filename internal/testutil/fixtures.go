package testutil

import (
	"crypto/ed25519"
	"crypto/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/crypto/ssh"
)

// KeyDir wraps a temporary directory holding key fixtures
type KeyDir struct {
	Path string
	t    *testing.T
}

// NewKeyDir creates an empty key directory that is removed with the test.
func NewKeyDir(t *testing.T) *KeyDir {
	t.Helper()
	return &KeyDir{Path: t.TempDir(), t: t}
}

// AddKey generates a fresh ed25519 public key, writes it to name and returns
// the file content.
func (kd *KeyDir) AddKey(name, comment string) string {
	kd.t.Helper()
	content := GeneratePublicKey(kd.t, comment)
	kd.AddFile(name, content)
	return content
}

// AddFile writes arbitrary content to name.
func (kd *KeyDir) AddFile(name, content string) {
	kd.t.Helper()
	if err := os.WriteFile(filepath.Join(kd.Path, name), []byte(content), 0644); err != nil {
		kd.t.Fatalf("Failed to write fixture %s: %v", name, err)
	}
}

// GeneratePublicKey returns an authorized_keys line for a new ed25519 key,
// newline terminated the way ssh-keygen writes .pub files.
func GeneratePublicKey(t *testing.T, comment string) string {
	t.Helper()

	pub, _, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		t.Fatalf("Failed to generate key: %v", err)
	}
	sshPub, err := ssh.NewPublicKey(pub)
	if err != nil {
		t.Fatalf("Failed to convert key: %v", err)
	}

	line := strings.TrimSpace(string(ssh.MarshalAuthorizedKey(sshPub)))
	if comment != "" {
		line += " " + comment
	}
	return line + "\n"
}
