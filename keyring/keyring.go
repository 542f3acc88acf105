// Package keyring stores OTP credentials in a JSON file, optionally
// encrypted at rest with a password.
package keyring

import (
	"encoding/base32"
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Version is the current keyring document version.
const Version = 1

// Entry types.
const (
	TypeTOTP = "totp"
	TypeHOTP = "hotp"
)

// Entry holds the configuration for a single OTP credential.
type Entry struct {
	Name    string  `json:"name"`
	Issuer  string  `json:"issuer,omitempty"`
	Type    string  `json:"type"`
	Secret  string  `json:"secret"` // base32, no padding
	Algo    string  `json:"algo"`
	Digits  int     `json:"digits"`
	Period  float64 `json:"period,omitempty"`
	Counter uint64  `json:"counter,omitempty"`
}

// Keyring is a collection of OTP credentials.
type Keyring struct {
	Version int     `json:"version"`
	Entries []Entry `json:"entries"`
}

// New returns an empty keyring at the current version.
func New() *Keyring {
	return &Keyring{Version: Version}
}

// DecodeSecret decodes the entry's base32 secret into raw key bytes.
// Whitespace and case are normalized first, matching how authenticator
// apps present secrets.
func (e Entry) DecodeSecret() ([]byte, error) {
	var secret string = strings.ToUpper(strings.ReplaceAll(e.Secret, " ", ""))

	return base32.StdEncoding.WithPadding(base32.NoPadding).DecodeString(secret)
}

// Add appends an entry to the keyring. Entry names are unique.
func (k *Keyring) Add(e Entry) error {
	if e.Name == "" {
		return fmt.Errorf("keyring: entry name must not be empty")
	}

	for _, existing := range k.Entries {
		if existing.Name == e.Name {
			return fmt.Errorf("keyring: duplicate entry %q", e.Name)
		}
	}

	k.Entries = append(k.Entries, e)

	return nil
}

// Find returns the named entry.
func (k *Keyring) Find(name string) (Entry, bool) {
	for _, e := range k.Entries {
		if e.Name == name {
			return e, true
		}
	}

	return Entry{}, false
}

// Load reads and decodes the keyring file at path. Encrypted keyrings
// require the password; plaintext keyrings ignore it.
func Load(path string, pwd string) (*Keyring, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return Decode(data, pwd)
}

// Decode decodes keyring bytes, decrypting when the data is a sealed
// envelope.
func Decode(data []byte, pwd string) (*Keyring, error) {
	if Encrypted(data) {
		var envelope sealedFile

		if err := json.Unmarshal(data, &envelope); err != nil {
			return nil, err
		}

		return envelope.open(pwd)
	}

	var ring Keyring

	if err := json.Unmarshal(data, &ring); err != nil {
		return nil, err
	}

	return &ring, nil
}

// Encrypted reports whether the data is a sealed keyring envelope
// rather than a plaintext keyring document.
func Encrypted(data []byte) bool {
	var envelope sealedFile

	if err := json.Unmarshal(data, &envelope); err != nil {
		return false
	}

	return envelope.Data != ""
}

// WriteFile saves the keyring at path, sealing it with the password
// when one is given. The file is created with owner-only permissions.
func (k *Keyring) WriteFile(path string, pwd string) error {
	var data []byte
	var err error

	if pwd == "" {
		data, err = json.MarshalIndent(k, "", "  ")
	} else {
		data, err = k.Seal(pwd)
	}

	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o600)
}
