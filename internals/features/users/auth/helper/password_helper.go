// file: internals/features/users/auth/helper/password_helper.go
package helper

import (
	"sync"

	"golang.org/x/crypto/bcrypt"

	"srs_backend/internals/configs"
)

func HashPassword(plaintext string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func CheckPasswordHash(hashed, plaintext string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plaintext))
}

/* =========================
   Credential policy
   ========================= */

// CredentialPolicy supplies the password digest stamped onto accounts that are
// created without an explicit password (bulk import, admin-created students).
type CredentialPolicy interface {
	DefaultCredential() (string, error)
}

// BcryptCredentialPolicy hashes a configured plaintext once and reuses the digest.
type BcryptCredentialPolicy struct {
	Plaintext string

	once   sync.Once
	digest string
	err    error
}

func NewDefaultCredentialPolicy() *BcryptCredentialPolicy {
	return &BcryptCredentialPolicy{Plaintext: configs.DefaultCredential}
}

func (p *BcryptCredentialPolicy) DefaultCredential() (string, error) {
	p.once.Do(func() {
		p.digest, p.err = HashPassword(p.Plaintext)
	})
	return p.digest, p.err
}
