package engine

import "math/rand"

// roomCodeAlphabet leaves out O, 0, I and 1, which read ambiguously when
// a code is passed on verbally or retyped.
const roomCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// RoomCodeLength is the length of generated room codes.
const RoomCodeLength = 6

// NewRoomCode draws a 6-character room code uniformly from the alphabet.
// Collision handling is the room store's concern.
func NewRoomCode(rng *rand.Rand) string {
	code := make([]byte, RoomCodeLength)
	for i := range code {
		code[i] = roomCodeAlphabet[rng.Intn(len(roomCodeAlphabet))]
	}
	return string(code)
}
