package utils

import (
	"fmt"
	"math/rand"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

var specialChars = []byte{'@', '#', '$'}

func firstNameOf(fullName string) string {
	fields := strings.Fields(fullName)
	if len(fields) == 0 {
		return ""
	}
	return strings.ToLower(fields[0])
}

// GenerateUsername builds a login name from the first name plus a random
// 4-digit number, e.g. "abebe4821". Different call, different output.
func GenerateUsername(fullName string) string {
	first := firstNameOf(fullName)
	var b strings.Builder
	for _, r := range first {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return fmt.Sprintf("%s%d", b.String(), 1000+rand.Intn(9000))
}

// GeneratePassword builds a temporary password in the form
// firstname + one of @#$ + two digits, e.g. "abebe@42".
func GeneratePassword(fullName string) string {
	first := firstNameOf(fullName)
	special := specialChars[rand.Intn(len(specialChars))]
	return fmt.Sprintf("%s%c%d", first, special, 10+rand.Intn(90))
}

// HashPassword returns a one-way bcrypt hash of the plaintext.
func HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword compares a plaintext against a stored hash.
func CheckPassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
