package service

import (
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"accountd/internal/domain"

	"golang.org/x/crypto/argon2"
)

// OWASP-recommended argon2id parameters.
const (
	argon2Time    = 1         // iterations
	argon2Memory  = 64 * 1024 // 64 MB
	argon2Threads = 4         // parallelism
	argon2KeyLen  = 32        // output length in bytes

	minSaltLen = 8 // argon2 rejects anything shorter

	// maxVerifyMemory caps the m parameter accepted from a stored hash,
	// in KiB. Anything above it is treated as corruption.
	maxVerifyMemory = 1 << 22 // 4 GB
)

// PasswordHasher turns raw passwords into one-way, verifiable hashes.
type PasswordHasher interface {
	// Hash produces an encoded hash of the password.
	Hash(raw string) (string, error)

	// Verify checks the attempted password against a stored hash. Returns
	// (false, nil) on mismatch; an error means the stored hash is malformed,
	// not that the password is wrong.
	Verify(stored, attempted string) (bool, error)
}

// Argon2Hasher implements PasswordHasher using argon2id with a service-wide
// salt taken from configuration. Hashing is therefore deterministic for a
// given deployment: the same password always yields the same encoded hash.
type Argon2Hasher struct {
	salt []byte
}

func NewArgon2Hasher(salt string) *Argon2Hasher {
	return &Argon2Hasher{salt: []byte(salt)}
}

// Hash produces a PHC-encoded argon2id hash of the password.
// $argon2id$v=19$m=65536,t=1,p=4$<salt>$<hash>
func (h *Argon2Hasher) Hash(raw string) (string, error) {
	if len(h.salt) < minSaltLen {
		// Misconfiguration, not a per-request condition.
		return "", domain.HashingError(fmt.Errorf("salt must be at least %d bytes", minSaltLen))
	}

	key := argon2.IDKey([]byte(raw), h.salt, argon2Time, argon2Memory, argon2Threads, argon2KeyLen)

	encoded := fmt.Sprintf(
		"$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		argon2Memory,
		argon2Time,
		argon2Threads,
		base64.RawStdEncoding.EncodeToString(h.salt),
		base64.RawStdEncoding.EncodeToString(key),
	)

	return encoded, nil
}

// Verify recomputes the hash with the parameters embedded in the stored value
// and compares in constant time.
func (h *Argon2Hasher) Verify(stored, attempted string) (bool, error) {
	parts := strings.Split(stored, "$")
	if len(parts) != 6 {
		return false, domain.HashingError(fmt.Errorf("invalid hash format"))
	}

	if parts[1] != "argon2id" {
		return false, domain.HashingError(fmt.Errorf("unsupported hash algorithm: %s", parts[1]))
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return false, domain.HashingError(err)
	}

	var memory, time, threads uint32
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &time, &threads); err != nil {
		return false, domain.HashingError(err)
	}
	if threads == 0 || threads > 255 {
		return false, domain.HashingError(fmt.Errorf("threads value %d out of range", threads))
	}
	// argon2 panics on t < 1, and an oversized m would make a corrupted row
	// drive an arbitrary-size allocation.
	if time == 0 {
		return false, domain.HashingError(fmt.Errorf("time cost must be at least 1"))
	}
	if memory == 0 || memory > maxVerifyMemory {
		return false, domain.HashingError(fmt.Errorf("memory value %d out of range", memory))
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return false, domain.HashingError(err)
	}

	expected, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return false, domain.HashingError(err)
	}
	if len(expected) == 0 || len(expected) > 1<<10 {
		return false, domain.HashingError(fmt.Errorf("invalid hash key length: %d", len(expected)))
	}

	computed := argon2.IDKey([]byte(attempted), salt, time, memory, uint8(threads), uint32(len(expected)))

	return subtle.ConstantTimeCompare(computed, expected) == 1, nil
}
