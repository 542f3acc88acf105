package keyring

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEntry() Entry {
	return Entry{
		Name:   "alice@example.com",
		Issuer: "Example",
		Type:   TypeTOTP,
		Secret: "GEZDGNBVGY3TQOJQGEZDGNBVGY3TQOJQ",
		Algo:   "SHA1",
		Digits: 6,
		Period: 30,
	}
}

func TestAddRejectsDuplicateNames(t *testing.T) {
	var ring *Keyring = New()

	require.NoError(t, ring.Add(testEntry()))

	err := ring.Add(testEntry())
	assert.ErrorContains(t, err, "duplicate")

	err = ring.Add(Entry{})
	assert.ErrorContains(t, err, "name")
}

func TestFind(t *testing.T) {
	var ring *Keyring = New()

	require.NoError(t, ring.Add(testEntry()))

	entry, ok := ring.Find("alice@example.com")
	require.True(t, ok)
	assert.Equal(t, "Example", entry.Issuer)

	_, ok = ring.Find("nobody")
	assert.False(t, ok)
}

func TestDecodeSecretNormalizes(t *testing.T) {
	want, err := Entry{Secret: "GEZDGNBVGY3TQOJQGEZDGNBVGY3TQOJQ"}.DecodeSecret()
	require.NoError(t, err)
	assert.Equal(t, []byte("12345678901234567890"), want)

	// Lowercase and spaced secrets decode to the same bytes
	got, err := Entry{Secret: "gezd gnbv gy3t qojq gezd gnbv gy3t qojq"}.DecodeSecret()
	require.NoError(t, err)
	assert.Equal(t, want, got)

	_, err = Entry{Secret: "not!base32"}.DecodeSecret()
	assert.Error(t, err)
}

func TestDecodePlaintext(t *testing.T) {
	var ring *Keyring = New()
	require.NoError(t, ring.Add(testEntry()))

	data, err := json.Marshal(ring)
	require.NoError(t, err)

	assert.False(t, Encrypted(data))

	// The password is ignored for plaintext keyrings
	decoded, err := Decode(data, "whatever")
	require.NoError(t, err)
	assert.Equal(t, ring.Entries, decoded.Entries)
}

func TestWriteFileAndLoadPlaintext(t *testing.T) {
	var path string = filepath.Join(t.TempDir(), "keyring.json")

	var ring *Keyring = New()
	require.NoError(t, ring.Add(testEntry()))
	require.NoError(t, ring.WriteFile(path, ""))

	loaded, err := Load(path, "")
	require.NoError(t, err)
	assert.Equal(t, ring.Entries, loaded.Entries)
}
