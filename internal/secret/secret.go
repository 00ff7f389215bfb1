// Package secret decrypts named secrets sealed with a process-wide master
// key. Records are ChaCha20-Poly1305 ciphertexts with a 96-bit nonce and no
// associated data.
package secret

import (
	"crypto/cipher"
	"crypto/rand"
	_ "embed"
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"slices"

	"golang.org/x/crypto/chacha20poly1305"
	"gopkg.in/yaml.v3"
)

// Errors returned by Store.
var (
	ErrSecretUnknown = errors.New("secret unknown")
	ErrSecretCorrupt = errors.New("secret corrupt")
	ErrInvalidKey    = errors.New("invalid master key")
)

//go:embed secrets.yaml
var embeddedTable []byte

// Record is a sealed secret. Both fields are standard base64.
type Record struct {
	Nonce      string `yaml:"nonce"      json:"nonce"`
	Ciphertext string `yaml:"ciphertext" json:"ciphertext"`
}

// Store holds the sealed records and the AEAD built from the master key.
// It is read-only after construction and safe for concurrent use.
type Store struct {
	aead    cipher.AEAD
	records map[string]Record
}

// NewStore creates a Store from a raw 32-byte key and a record table.
func NewStore(key []byte, records map[string]Record) (*Store, error) {
	if len(key) != chacha20poly1305.KeySize {
		return nil, fmt.Errorf("%w: want %d bytes, got %d", ErrInvalidKey, chacha20poly1305.KeySize, len(key))
	}
	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, fmt.Errorf("creating cipher: %w", err)
	}
	if records == nil {
		records = map[string]Record{}
	}
	return &Store{aead: aead, records: records}, nil
}

// Load decodes the base64 master key and opens the table at path, or the
// embedded table when path is empty.
func Load(masterKey, path string) (*Store, error) {
	key, err := DecodeKey(masterKey)
	if err != nil {
		return nil, err
	}

	data := embeddedTable
	if path != "" {
		data, err = os.ReadFile(path) //nolint:gosec // path comes from operator config
		if err != nil {
			return nil, fmt.Errorf("reading secret table: %w", err)
		}
	}

	records, err := ParseTable(data)
	if err != nil {
		return nil, err
	}
	return NewStore(key, records)
}

// EmbeddedTable returns the records compiled into the binary.
func EmbeddedTable() (map[string]Record, error) {
	return ParseTable(embeddedTable)
}

// ParseTable parses a YAML mapping of secret name to Record.
func ParseTable(data []byte) (map[string]Record, error) {
	records := map[string]Record{}
	if err := yaml.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parsing secret table: %w", err)
	}
	return records, nil
}

// DecodeKey decodes a base64 master key and checks its length.
func DecodeKey(masterKey string) ([]byte, error) {
	if masterKey == "" {
		return nil, fmt.Errorf("%w: empty", ErrInvalidKey)
	}
	key, err := base64.StdEncoding.DecodeString(masterKey)
	if err != nil {
		return nil, fmt.Errorf("%w: decoding base64: %w", ErrInvalidKey, err)
	}
	if len(key) != chacha20poly1305.KeySize {
		return nil, fmt.Errorf("%w: want %d bytes, got %d", ErrInvalidKey, chacha20poly1305.KeySize, len(key))
	}
	return key, nil
}

// GenerateKey returns a fresh random master key, base64 encoded.
func GenerateKey() (string, error) {
	key := make([]byte, chacha20poly1305.KeySize)
	if _, err := rand.Read(key); err != nil {
		return "", fmt.Errorf("generating key: %w", err)
	}
	return base64.StdEncoding.EncodeToString(key), nil
}

// Decrypt returns the plaintext of the named secret.
func (s *Store) Decrypt(name string) ([]byte, error) {
	rec, ok := s.records[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrSecretUnknown, name)
	}

	nonce, err := base64.StdEncoding.DecodeString(rec.Nonce)
	if err != nil || len(nonce) != s.aead.NonceSize() {
		return nil, fmt.Errorf("%w: %q has a malformed nonce", ErrSecretCorrupt, name)
	}
	ciphertext, err := base64.StdEncoding.DecodeString(rec.Ciphertext)
	if err != nil {
		return nil, fmt.Errorf("%w: %q has malformed ciphertext", ErrSecretCorrupt, name)
	}

	plaintext, err := s.aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %q failed authentication", ErrSecretCorrupt, name)
	}
	return plaintext, nil
}

// DecryptString is Decrypt for UTF-8 secrets.
func (s *Store) DecryptString(name string) (string, error) {
	b, err := s.Decrypt(name)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Encrypt seals plaintext under a fresh random nonce.
func (s *Store) Encrypt(plaintext []byte) (Record, error) {
	nonce := make([]byte, s.aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return Record{}, fmt.Errorf("generating nonce: %w", err)
	}
	ciphertext := s.aead.Seal(nil, nonce, plaintext, nil)
	return Record{
		Nonce:      base64.StdEncoding.EncodeToString(nonce),
		Ciphertext: base64.StdEncoding.EncodeToString(ciphertext),
	}, nil
}

// Names returns the secret names in sorted order.
func (s *Store) Names() []string {
	names := make([]string, 0, len(s.records))
	for name := range s.records {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
