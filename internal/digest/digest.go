package digest

import (
	"encoding/binary"
	"encoding/hex"
	"io"
	"os"

	"golang.org/x/crypto/blake2b"
)

// File returns the hex BLAKE2b-256 digest of the file at path and its size.
func File(path string) (sum string, size int64, err error) {
	f, err := os.Open(path)
	if err != nil {
		return "", 0, err
	}
	defer f.Close()

	h, err := blake2b.New256(nil)
	if err != nil {
		return "", 0, err
	}
	size, err = io.Copy(h, f)
	if err != nil {
		return "", 0, err
	}
	return hex.EncodeToString(h.Sum(nil)), size, nil
}

// Fingerprint returns a short hex fingerprint over an ordered list of parts.
//
// Each part is length-prefixed before hashing, so ("ab","c") and ("a","bc")
// differ. The BLAKE2b-256 sum is truncated to 10 bytes (20 hex chars).
func Fingerprint(parts ...string) string {
	h, _ := blake2b.New256(nil) // only fails for oversized keys
	var n [8]byte
	for _, p := range parts {
		binary.LittleEndian.PutUint64(n[:], uint64(len(p)))
		h.Write(n[:])
		io.WriteString(h, p)
	}
	sum := h.Sum(nil)
	return hex.EncodeToString(sum[:10])
}
