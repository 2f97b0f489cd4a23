package keys

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/crypto/ssh"
)

// List returns the *.pub files in dir. The order is whatever the directory
// listing yields and callers must not depend on it.
func List(dir string) ([]Entry, error) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list key directory: %w", err)
	}

	var entries []Entry
	for _, de := range dirEntries {
		name := de.Name()
		if !strings.HasSuffix(name, Suffix) {
			continue
		}

		path := filepath.Join(dir, name)
		if de.IsDir() {
			continue
		}
		// Follow symlinks so a linked key is accepted but a linked directory is
		// not. A link that cannot be followed is an unreadable key file.
		if de.Type()&os.ModeSymlink != 0 {
			info, err := os.Stat(path)
			if err != nil {
				return nil, fmt.Errorf("failed to stat key file %s: %w", name, err)
			}
			if info.IsDir() {
				continue
			}
		}

		entries = append(entries, Entry{Name: name, Path: path})
	}

	return entries, nil
}

// Load reads the key file behind e.
func Load(e Entry) (*KeyFile, error) {
	data, err := os.ReadFile(e.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read key file %s: %w", e.Name, err)
	}

	return &KeyFile{
		Name:    e.Name,
		Path:    e.Path,
		Content: string(data),
	}, nil
}

// Inspect parses content as an authorized_keys line.
func Inspect(content string) (*Info, error) {
	pub, comment, _, _, err := ssh.ParseAuthorizedKey([]byte(content))
	if err != nil {
		return nil, fmt.Errorf("invalid SSH key format: %w", err)
	}

	return &Info{
		Type:        pub.Type(),
		Fingerprint: ssh.FingerprintSHA256(pub),
		Comment:     comment,
	}, nil
}
