package utils

import (
	"crypto"
	_ "crypto/sha256"
)

// Hash message using SHA256
func SHA256(msg []byte) []byte {
	newhash := crypto.SHA256
	if !newhash.Available() {
		panic("sha256 digest is not linked into the binary")
	}
	pssh := newhash.New()
	pssh.Write(msg)
	return pssh.Sum(nil)
}

// Digest hashes msg and returns the 64 character lowercase hex form.
func Digest(msg []byte) string {
	return BytesToHex(SHA256(msg))
}
