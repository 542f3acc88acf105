// Package otp generates one-time passwords following the HOTP (RFC 4226)
// and TOTP (RFC 6238) constructions.
//
// The package is a pipeline of three stateless functions: Validate checks
// that a configuration is sane, ResolveCounter turns a Factor into the
// 64-bit counter, and GenerateCode turns secret, counter, and algorithm
// into a zero-padded decimal code. Every function is pure and safe for
// concurrent use.
package otp

import (
	"crypto/hmac"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/binary"
	"fmt"
	"hash"
	"strings"
)

// Algorithm identifies the keyed-hash function used for code generation.
type Algorithm int

const (
	AlgorithmSHA1 Algorithm = iota
	AlgorithmSHA256
	AlgorithmSHA512
)

// ParseAlgorithm maps an algorithm name such as "SHA1" or "sha256"
// onto its identifier.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToUpper(name) {
	case "SHA1":
		return AlgorithmSHA1, nil
	case "SHA256":
		return AlgorithmSHA256, nil
	case "SHA512":
		return AlgorithmSHA512, nil
	}

	return 0, fmt.Errorf("otp: unsupported algorithm %q", name)
}

// String returns the algorithm name.
func (algo Algorithm) String() string {
	switch algo {
	case AlgorithmSHA1:
		return "SHA1"
	case AlgorithmSHA256:
		return "SHA256"
	case AlgorithmSHA512:
		return "SHA512"
	}

	return fmt.Sprintf("Algorithm(%d)", int(algo))
}

// Size returns the HMAC output length in bytes.
func (algo Algorithm) Size() int {
	switch algo {
	case AlgorithmSHA1:
		return sha1.Size
	case AlgorithmSHA256:
		return sha256.Size
	case AlgorithmSHA512:
		return sha512.Size
	}

	panic("otp: unknown algorithm")
}

// hmacSum hashes the counter using the secret and the selected algorithm
// then returns the hash.
func hmacSum(algo Algorithm, secret []byte, counter uint64) []byte {
	var counterBytes []byte = make([]byte, 8)

	// Encode the counter in big endian regardless of host byte order
	binary.BigEndian.PutUint64(counterBytes, counter)

	var mac hash.Hash

	switch algo {
	case AlgorithmSHA1:
		mac = hmac.New(sha1.New, secret)
	case AlgorithmSHA256:
		mac = hmac.New(sha256.New, secret)
	case AlgorithmSHA512:
		mac = hmac.New(sha512.New, secret)
	default:
		panic("otp: unknown algorithm")
	}

	mac.Write(counterBytes)

	return mac.Sum(nil)
}
