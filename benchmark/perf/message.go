package perf

import (
	"fmt"
	"math/rand"
)

// Message size classes and their approximate record bytes.
const (
	SizeSmall  = "small"  // ~64 bytes
	SizeMedium = "medium" // ~256 bytes
	SizeLarge  = "large"  // ~1024 bytes
)

func targetBytes(size string) (int, error) {
	switch size {
	case SizeSmall:
		return 64, nil
	case SizeMedium:
		return 256, nil
	case SizeLarge:
		return 1024, nil
	default:
		return 0, fmt.Errorf("perf: unknown message size %q", size)
	}
}

const messageBase = "performance test message from thread %d, iteration %d, with payload: "

// buildTemplate pads the base format string with random filler so a
// rendered record lands near the class's target size. The two %d verbs
// are left for the worker to fill.
func buildTemplate(size string) (string, error) {
	target, err := targetBytes(size)
	if err != nil {
		return "", err
	}
	pad := target - len(messageBase) - 20 // rough room for the numbers
	if pad < 0 {
		pad = 0
	}
	return messageBase + randomString(pad), nil
}

const letters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

func randomString(n int) string {
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = letters[rand.Intn(len(letters))]
	}
	return string(buf)
}
