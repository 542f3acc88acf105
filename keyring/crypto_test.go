package keyring

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSealAndDecodeRoundTrip(t *testing.T) {
	var ring *Keyring = New()
	require.NoError(t, ring.Add(testEntry()))

	data, err := ring.Seal("correct horse")
	require.NoError(t, err)
	require.True(t, Encrypted(data))

	opened, err := Decode(data, "correct horse")
	require.NoError(t, err)
	assert.Equal(t, ring.Entries, opened.Entries)
}

func TestDecodeWrongPassword(t *testing.T) {
	var ring *Keyring = New()
	require.NoError(t, ring.Add(testEntry()))

	data, err := ring.Seal("correct horse")
	require.NoError(t, err)

	_, err = Decode(data, "battery staple")
	assert.ErrorIs(t, err, ErrWrongPassword)

	_, err = Decode(data, "")
	assert.ErrorIs(t, err, ErrWrongPassword)
}

func TestDecodeCorruptEnvelope(t *testing.T) {
	var ring *Keyring = New()
	require.NoError(t, ring.Add(testEntry()))

	data, err := ring.Seal("pwd")
	require.NoError(t, err)

	var envelope sealedFile
	require.NoError(t, json.Unmarshal(data, &envelope))

	// A truncated nonce must surface as a corrupt keyring, not a panic
	truncated := envelope
	truncated.Nonce = truncated.Nonce[:4]

	corrupt, err := json.Marshal(truncated)
	require.NoError(t, err)

	_, err = Decode(corrupt, "pwd")
	assert.ErrorIs(t, err, ErrWrongPassword)

	// Same for a nonce that isn't hex at all
	badHex := envelope
	badHex.Nonce = "zz"

	corrupt, err = json.Marshal(badHex)
	require.NoError(t, err)

	_, err = Decode(corrupt, "pwd")
	assert.Error(t, err)
}

func TestSealedFilesDiffer(t *testing.T) {
	var ring *Keyring = New()
	require.NoError(t, ring.Add(testEntry()))

	first, err := ring.Seal("pwd")
	require.NoError(t, err)

	second, err := ring.Seal("pwd")
	require.NoError(t, err)

	// Fresh salt and nonce every time
	assert.NotEqual(t, first, second)
}

func TestWriteFileAndLoadEncrypted(t *testing.T) {
	var path string = filepath.Join(t.TempDir(), "keyring.enc.json")

	var ring *Keyring = New()
	require.NoError(t, ring.Add(testEntry()))
	require.NoError(t, ring.WriteFile(path, "pwd"))

	loaded, err := Load(path, "pwd")
	require.NoError(t, err)
	assert.Equal(t, ring.Entries, loaded.Entries)

	_, err = Load(path, "wrong")
	assert.ErrorIs(t, err, ErrWrongPassword)
}
