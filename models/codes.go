package models

import (
	"crypto/rand"
	"math/big"
)

// Room code alphabet excludes visually confusable characters: 0, O, 1, I, L.
const codeAlphabet = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"

const codeLength = 6

// GenerateRoomCode returns a random 6-character shareable room code.
func GenerateRoomCode() (string, error) {
	code := make([]byte, codeLength)
	for i := range code {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(codeAlphabet))))
		if err != nil {
			return "", err
		}
		code[i] = codeAlphabet[n.Int64()]
	}
	return string(code), nil
}
