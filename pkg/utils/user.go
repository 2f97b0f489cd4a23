package utils

import (
	"os"
	"os/user"
	"strconv"
)

// GetActualUser returns the invoking user's name and home directory.
// Under sudo the SUDO_USER account is reported instead of root, so
// `sudo qrkeys --server host` still composes the payload for the real user.
//
// The username is best effort: it may be empty when the account cannot be
// looked up even though the home directory is known.
func GetActualUser() (username, homeDir string, err error) {
	if sudoUser := os.Getenv("SUDO_USER"); sudoUser != "" {
		if u, lookupErr := user.Lookup(sudoUser); lookupErr == nil {
			return u.Username, u.HomeDir, nil
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", "", err
	}

	u, err := user.Current()
	if err != nil {
		return "", home, nil
	}
	return u.Username, home, nil
}

// FixFileOwnership hands path back to SUDO_USER when running under sudo.
// It is a no-op otherwise, and lookup failures are ignored.
func FixFileOwnership(path string) error {
	sudoUser := os.Getenv("SUDO_USER")
	if sudoUser == "" {
		return nil
	}

	u, err := user.Lookup(sudoUser)
	if err != nil {
		return nil
	}

	uid, _ := strconv.Atoi(u.Uid)
	gid, _ := strconv.Atoi(u.Gid)
	return os.Chown(path, uid, gid)
}
