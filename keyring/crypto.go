package keyring

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"errors"

	"golang.org/x/crypto/scrypt"
)

// Default scrypt cost parameters for newly sealed keyrings.
const (
	defaultN = 1 << 15
	defaultR = 8
	defaultP = 1
)

// ErrWrongPassword indicates the sealed keyring could not be opened,
// either because the password is wrong or the file is corrupt.
var ErrWrongPassword = errors.New("keyring: wrong password or corrupt keyring")

// sealedFile is the on-disk envelope of an encrypted keyring.
type sealedFile struct {
	Version int       `json:"version"`
	KDF     kdfParams `json:"kdf"`
	Nonce   string    `json:"nonce"` // hex
	Data    string    `json:"data"`  // base64 AES-256-GCM sealed keyring
}

type kdfParams struct {
	N    int    `json:"n"`
	R    int    `json:"r"`
	P    int    `json:"p"`
	Salt string `json:"salt"` // hex
}

// deriveKey stretches the password into a 32-byte AES key using the
// stored scrypt parameters.
func (p kdfParams) deriveKey(pwd string) ([]byte, error) {
	salt, err := hex.DecodeString(p.Salt)
	if err != nil {
		return nil, err
	}

	return scrypt.Key([]byte(pwd), salt, p.N, p.R, p.P, 32)
}

// Seal encrypts the keyring with a key derived from the password and
// returns the on-disk envelope bytes.
func (k *Keyring) Seal(pwd string) ([]byte, error) {
	plain, err := json.Marshal(k)
	if err != nil {
		return nil, err
	}

	var salt []byte = make([]byte, 16)

	if _, err := rand.Read(salt); err != nil {
		return nil, err
	}

	var params kdfParams = kdfParams{
		N:    defaultN,
		R:    defaultR,
		P:    defaultP,
		Salt: hex.EncodeToString(salt),
	}

	key, err := params.deriveKey(pwd)
	if err != nil {
		return nil, err
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}

	aesgcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	var nonce []byte = make([]byte, aesgcm.NonceSize())

	if _, err := rand.Read(nonce); err != nil {
		return nil, err
	}

	var sealed []byte = aesgcm.Seal(nil, nonce, plain, nil)

	var envelope sealedFile = sealedFile{
		Version: Version,
		KDF:     params,
		Nonce:   hex.EncodeToString(nonce),
		Data:    base64.StdEncoding.EncodeToString(sealed),
	}

	return json.MarshalIndent(envelope, "", "  ")
}

// open decrypts the envelope's keyring using the password.
func (s *sealedFile) open(pwd string) (*Keyring, error) {
	key, err := s.KDF.deriveKey(pwd)
	if err != nil {
		return nil, err
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}

	aesgcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	nonce, err := hex.DecodeString(s.Nonce)
	if err != nil {
		return nil, err
	}

	// GCM panics on a wrong-length nonce; treat it as a corrupt envelope
	if len(nonce) != aesgcm.NonceSize() {
		return nil, ErrWrongPassword
	}

	data, err := base64.StdEncoding.DecodeString(s.Data)
	if err != nil {
		return nil, err
	}

	// Attempt to decrypt the keyring content
	plain, err := aesgcm.Open(nil, nonce, data, nil)
	if err != nil {
		return nil, ErrWrongPassword
	}

	var ring Keyring

	if err := json.Unmarshal(plain, &ring); err != nil {
		return nil, err
	}

	return &ring, nil
}
