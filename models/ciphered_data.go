package models

// CipherBlob is the persisted form of a secret: Base64 text of
// IV (16 bytes) ‖ AES-CBC ciphertext (PKCS7 padded).
//
// The value is opaque to the storage layer. Only the cipher engine knows how
// to open it, and only with the key it was sealed under.
type CipherBlob string

// String returns the Base64 text of the blob.
func (b CipherBlob) String() string {
	return string(b)
}

// IsEmpty reports whether the blob holds no data at all.
func (b CipherBlob) IsEmpty() bool {
	return len(b) == 0
}
