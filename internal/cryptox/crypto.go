// Package cryptox holds the password policies used by the credential store.
package cryptox

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/investprofile/internal/common"
	"golang.org/x/crypto/argon2"
)

// PasswordPolicy turns a password into its stored form and checks candidates
// against it. Seal follows the policy; Match accepts any stored form.
type PasswordPolicy interface {
	Seal(password string) (string, error)
	Match(stored, candidate string) bool
}

// PlaintextPolicy stores passwords verbatim and compares them exactly.
// Kept for compatibility with existing stores; do not use it for real accounts.
type PlaintextPolicy struct{}

// Seal refuses passwords that would read back as an argon2 record.
func (PlaintextPolicy) Seal(password string) (string, error) {
	if strings.HasPrefix(password, argon2Prefix+"$") {
		return "", fmt.Errorf("%w: password must not start with %q", common.ErrInvalidInput, argon2Prefix+"$")
	}
	return password, nil
}

func (PlaintextPolicy) Match(stored, candidate string) bool { return Verify(stored, candidate) }

const (
	argon2Prefix  = "argon2"
	argon2SaltLen = 16
)

// Argon2Policy stores "argon2$<salt hex>$<verifier hex>", where the verifier
// is SHA-256 of the argon2id key derived from the password and a random salt.
type Argon2Policy struct{}

func (Argon2Policy) Seal(password string) (string, error) {
	salt := common.GenerateRandByteArray(argon2SaltLen)
	verifier := MakeVerifier(DeriveMasterKey([]byte(password), salt))
	return strings.Join([]string{argon2Prefix, hex.EncodeToString(salt), hex.EncodeToString(verifier)}, "$"), nil
}

func (Argon2Policy) Match(stored, candidate string) bool { return Verify(stored, candidate) }

// Verify checks candidate against stored in whichever form stored was sealed,
// so switching policies never locks out existing accounts. Values carrying
// the argon2 prefix are only ever matched through argon2.
func Verify(stored, candidate string) bool {
	if strings.HasPrefix(stored, argon2Prefix+"$") {
		return matchArgon2(stored, candidate)
	}
	return subtle.ConstantTimeCompare([]byte(stored), []byte(candidate)) == 1
}

func matchArgon2(stored, candidate string) bool {
	parts := strings.Split(stored, "$")
	if len(parts) != 3 {
		return false
	}
	salt, err := hex.DecodeString(parts[1])
	if err != nil {
		return false
	}
	want, err := hex.DecodeString(parts[2])
	if err != nil {
		return false
	}

	got := MakeVerifier(DeriveMasterKey([]byte(candidate), salt))
	return subtle.ConstantTimeCompare(want, got) == 1
}

func MakeVerifier(masterKey []byte) []byte {
	hash := sha256.Sum256(masterKey)
	return hash[:]
}

func DeriveMasterKey(password []byte, salt []byte) []byte {
	return argon2.IDKey(password, salt, 1, 64*1024, 4, 32)
}
