package utils

import (
	"math/rand"
	"strconv"
	"strings"
)

// GenerateActivationCode generates a 4-digit activation code (1000-9999)
func GenerateActivationCode() string {
	return strconv.Itoa(1000 + rand.Intn(9000))
}

// ParseDataURI splits a "data:<mime>;base64,<payload>" string. ok is false
// when s is not a data URI.
func ParseDataURI(s string) (mime, payload string, ok bool) {
	rest, found := strings.CutPrefix(s, "data:")
	if !found {
		return "", "", false
	}
	meta, payload, found := strings.Cut(rest, ",")
	if !found {
		return "", "", false
	}
	mime, _, _ = strings.Cut(meta, ";")
	return mime, payload, true
}
