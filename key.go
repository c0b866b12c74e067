package sfv

import "github.com/sfv-go/sfv/rfc8941"

// validateKey checks key against the RFC 8941 Section 3.1.2 key grammar
// shared by Parameters and Dictionary.
func validateKey(key string) error {
	if key == "" || !rfc8941.IsKeyStart(key[0]) {
		return &InvalidKey{Key: key}
	}
	for i := 1; i < len(key); i++ {
		if !rfc8941.IsKeyChar(key[i]) {
			return &InvalidKey{Key: key}
		}
	}
	return nil
}
