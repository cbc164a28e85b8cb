package model

import (
	"database/sql/driver"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// ErrPasswordReadNotAllowed is returned by every path that would expose a
// stored password hash.
var ErrPasswordReadNotAllowed = errors.New("password hashes may not be viewed")

// Digest holds a bcrypt password hash in an unexported field so no other
// package can read the raw hash. It still round-trips through the database
// via driver.Valuer and sql.Scanner.
type Digest struct {
	hash string
}

func NewDigest(plain string) (Digest, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return Digest{}, fmt.Errorf("hash password failed: %w", err)
	}
	return Digest{hash: string(hashed)}, nil
}

// Verify reports whether plain matches the digest. bcrypt's comparison is
// constant-time over the hash. An unset digest or empty plaintext never
// matches.
func (d Digest) Verify(plain string) bool {
	if d.hash == "" || plain == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(d.hash), []byte(plain)) == nil
}

func (d Digest) IsZero() bool {
	return d.hash == ""
}

func (d Digest) Value() (driver.Value, error) {
	return d.hash, nil
}

func (d *Digest) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		d.hash = ""
	case string:
		d.hash = v
	case []byte:
		d.hash = string(v)
	default:
		return fmt.Errorf("scan password digest: unsupported type %T", src)
	}
	return nil
}

// MarshalJSON fails loudly instead of leaking the hash through an accidental
// encode.
func (d Digest) MarshalJSON() ([]byte, error) {
	return nil, ErrPasswordReadNotAllowed
}

// String keeps the hash out of log output and %v formatting.
func (d Digest) String() string {
	return "[redacted]"
}
