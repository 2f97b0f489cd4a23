package keys

// Suffix marks a file as a public key candidate.
const Suffix = ".pub"

// Entry is a candidate key file found in the scanned directory.
type Entry struct {
	Name string // base name, e.g. "id_ed25519.pub"
	Path string
}

// KeyFile is a loaded public key file. Content is kept byte-exact.
type KeyFile struct {
	Name    string
	Path    string
	Content string
}

// Info describes a key file whose content parses as an authorized_keys line.
type Info struct {
	Type        string
	Fingerprint string
	Comment     string
}
