package main

import (
	"crypto"
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/rsa"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/ssh"
)

func main() {
	_ = godotenv.Load(".env")

	dir := flag.String("dir", os.Getenv("QRKEYS_DIRECTORY"), "Directory to write the public key into")
	name := flag.String("name", "id_test", "Key file name, without the .pub suffix")
	keyType := flag.String("type", "ed25519", "Key type: ed25519, ecdsa or rsa")
	comment := flag.String("comment", "qrkeys@test", "Key comment")
	flag.Parse()

	if *dir == "" {
		fmt.Println("Usage: go run scripts/add-test-ssh-key.go --dir=/tmp/keys [--name=id_test] [--type=ed25519] [--comment=user@host]")
		fmt.Println("\nExample:")
		fmt.Println("  go run scripts/add-test-ssh-key.go --dir=./testkeys --type=rsa --name=id_rsa")
		fmt.Println("  go run ./cmd/qrkeys ./testkeys")
		os.Exit(1)
	}

	key, err := generate(*keyType)
	if err != nil {
		log.Fatalf("Error: %v", err)
	}

	pub, err := ssh.NewPublicKey(key)
	if err != nil {
		log.Fatalf("Error converting public key: %v", err)
	}

	line := ssh.MarshalAuthorizedKey(pub)
	if *comment != "" {
		line = append(line[:len(line)-1], []byte(" "+*comment+"\n")...)
	}

	if err := os.MkdirAll(*dir, 0o755); err != nil {
		log.Fatalf("Error creating %s: %v", *dir, err)
	}
	path := filepath.Join(*dir, *name+".pub")
	if err := os.WriteFile(path, line, 0o644); err != nil {
		log.Fatalf("Error writing %s: %v", path, err)
	}

	fmt.Println("✓ Test SSH key written")
	fmt.Printf("  Path: %s\n", path)
	fmt.Printf("  Type: %s\n", pub.Type())
	fmt.Printf("  Fingerprint: %s\n", ssh.FingerprintSHA256(pub))
}

func generate(keyType string) (crypto.PublicKey, error) {
	switch keyType {
	case "ed25519":
		pub, _, err := ed25519.GenerateKey(rand.Reader)
		return pub, err
	case "ecdsa":
		priv, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
		if err != nil {
			return nil, err
		}
		return &priv.PublicKey, nil
	case "rsa":
		priv, err := rsa.GenerateKey(rand.Reader, 3072)
		if err != nil {
			return nil, err
		}
		return &priv.PublicKey, nil
	default:
		return nil, fmt.Errorf("unsupported key type %q", keyType)
	}
}
