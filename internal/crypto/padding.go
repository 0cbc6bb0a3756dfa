package crypto

import "crypto/subtle"

// pkcs7Pad copies plaintext into a new slice padded to a multiple of
// blockSize. A full block of padding is added when plaintext is already
// aligned.
func pkcs7Pad(plaintext string, blockSize int) []byte {
	padding := blockSize - len(plaintext)%blockSize

	padded := make([]byte, len(plaintext)+padding)
	copy(padded, plaintext)
	for i := len(plaintext); i < len(padded); i++ {
		padded[i] = byte(padding)
	}

	return padded
}

// pkcs7Unpad returns the length of data without its padding and whether the
// padding is well formed. The check touches every byte of the final block
// regardless of where it fails.
func pkcs7Unpad(data []byte, blockSize int) (int, bool) {
	length := len(data)
	if length == 0 || length%blockSize != 0 {
		return 0, false
	}

	padding := int(data[length-1])
	good := subtle.ConstantTimeLessOrEq(1, padding) &
		subtle.ConstantTimeLessOrEq(padding, blockSize)

	last := data[length-blockSize:]
	for i, b := range last {
		// position counted from the end: blockSize for last[0], 1 for the final byte
		inPadding := subtle.ConstantTimeLessOrEq(blockSize-i, padding)
		matches := subtle.ConstantTimeByteEq(b, byte(padding))
		good &= subtle.ConstantTimeSelect(inPadding, matches, 1)
	}

	if good != 1 {
		return 0, false
	}
	return length - padding, true
}
