package digest

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zeebo/blake3"
)

func TestHashSHA256(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty input",
			input:    "",
			expected: "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
		},
		{
			name:     "abc",
			input:    "abc",
			expected: "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad",
		},
		{
			name:     "hello world",
			input:    "hello world",
			expected: "b94d27b9934d3e08a52e52d7da7dabfac484efe37a5380ee9088f7ace2efcde9",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, HashSHA256(tt.input))
		})
	}
}

func TestHashSHA256_MatchesStdlib(t *testing.T) {
	inputs := []string{
		"héllo wörld",
		"日本語のテキスト",
		strings.Repeat("a", 1000),
		"line one\nline two\n",
	}

	for _, input := range inputs {
		sum := sha256.Sum256([]byte(input))
		assert.Equal(t, hex.EncodeToString(sum[:]), HashSHA256(input))
	}
}

func TestHashSHA256_Determinism(t *testing.T) {
	content := "some content with special chars: @#$%^&*()"
	first := HashSHA256(content)
	second := HashSHA256(content)
	assert.Equal(t, first, second)
	assert.Len(t, first, 64)
	assert.Equal(t, strings.ToLower(first), first)
}

func TestHashBLAKE3(t *testing.T) {
	assert.Equal(t,
		"af1349b9f5f9a1a6a0404dea36dcc9499bcb25c9adc112b7cc9a93cae41f3262",
		HashBLAKE3(""))

	sum := blake3.Sum256([]byte("abc"))
	assert.Equal(t, hex.EncodeToString(sum[:]), HashBLAKE3("abc"))
	assert.NotEqual(t, HashSHA256("abc"), HashBLAKE3("abc"))
}

func TestParseAlgorithm(t *testing.T) {
	tests := []struct {
		input    string
		expected Algorithm
		wantErr  bool
	}{
		{input: "sha256", expected: SHA256},
		{input: "SHA-256", expected: SHA256},
		{input: " blake3 ", expected: BLAKE3},
		{input: "md5", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			alg, err := ParseAlgorithm(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, alg)
		})
	}
}

func TestParseHex(t *testing.T) {
	decoded, err := ParseHex(HashSHA256("abc"))
	require.NoError(t, err)
	assert.Len(t, decoded, Size)

	upper, err := ParseHex(strings.ToUpper(HashSHA256("abc")))
	require.NoError(t, err)
	assert.Equal(t, decoded, upper)

	_, err = ParseHex("not-hex")
	assert.Error(t, err)

	_, err = ParseHex("abcd")
	assert.ErrorContains(t, err, "want 32")
}
