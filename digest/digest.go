// Package digest provides the shared hashing primitives exposed through the bridge.
package digest

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/zeebo/blake3"
)

// Algorithm identifies a supported digest algorithm.
type Algorithm string

const (
	// SHA256 is SHA-256 as defined in FIPS 180-4.
	SHA256 Algorithm = "sha256"
	// BLAKE3 is BLAKE3 with a 256-bit output.
	BLAKE3 Algorithm = "blake3"
)

// Size is the digest size in bytes for every supported algorithm.
const Size = 32

// HashSHA256 returns the lowercase hex SHA-256 digest of input.
func HashSHA256(input string) string {
	sum := sha256.Sum256([]byte(input))
	return hex.EncodeToString(sum[:])
}

// HashBLAKE3 returns the lowercase hex BLAKE3-256 digest of input.
func HashBLAKE3(input string) string {
	sum := blake3.Sum256([]byte(input))
	return hex.EncodeToString(sum[:])
}

// ParseAlgorithm returns the Algorithm named by s. Matching is case-insensitive
// and accepts "sha-256" as an alias.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sha256", "sha-256":
		return SHA256, nil
	case "blake3":
		return BLAKE3, nil
	default:
		return "", fmt.Errorf("unsupported digest algorithm: %q", s)
	}
}

// ParseHex decodes a hex digest string and checks that it is Size bytes long.
// Upper-case hex is accepted.
func ParseHex(s string) ([]byte, error) {
	decoded, err := hex.DecodeString(strings.TrimSpace(s))
	if err != nil {
		return nil, fmt.Errorf("parsing hex digest: %w", err)
	}
	if len(decoded) != Size {
		return nil, fmt.Errorf("digest is %d bytes, want %d", len(decoded), Size)
	}
	return decoded, nil
}
