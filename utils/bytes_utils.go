package utils

import (
	"encoding/hex"
	"strings"
)

func BytesToHex(bytes []byte) string {
	return hex.EncodeToString(bytes)
}

func HexToBytes(str string) ([]byte, error) {
	bytes, err := hex.DecodeString(str)
	if err != nil {
		return nil, err
	}
	return bytes, nil
}

// HasLeadingHexZeros reports whether the hex digest starts with difficulty '0' characters.
func HasLeadingHexZeros(digest string, difficulty int) bool {
	if difficulty < 0 || difficulty > len(digest) {
		return false
	}
	return strings.HasPrefix(digest, strings.Repeat("0", difficulty))
}

// IsHexDigest reports whether s looks like a rendered SHA256 digest.
func IsHexDigest(s string) bool {
	if len(s) != 2*32 {
		return false
	}
	for _, c := range s {
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}
	return true
}
