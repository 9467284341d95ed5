// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"

	"conduit/config"
	"conduit/internal/domain/service"
)

// Default argon2id parameters: 64 MiB memory, 3 passes, 4 lanes. Memory
// hardness is the point; per-hash salts defeat precomputed tables.
const (
	defaultMemoryKiB   = 64 * 1024
	defaultIterations  = 3
	defaultParallelism = 4
	saltLength         = 16
	keyLength          = 32
)

// argon2Hasher is a concrete implementation of the PasswordHasher interface
// using argon2id. Hashes are PHC strings of the form
// $argon2id$v=19$m=65536,t=3,p=4$<salt>$<digest>, so every parameter needed
// to re-derive lives inside the stored value.
type argon2Hasher struct {
	memoryKiB   uint32
	iterations  uint32
	parallelism uint8
}

// NewArgon2Hasher is the constructor for argon2Hasher. Zero config values
// fall back to the package defaults.
func NewArgon2Hasher(cfg *config.Config) service.PasswordHasher {
	h := &argon2Hasher{
		memoryKiB:   defaultMemoryKiB,
		iterations:  defaultIterations,
		parallelism: defaultParallelism,
	}

	if cfg != nil && cfg.Argon2 != nil {
		if cfg.Argon2.MemoryKiB != 0 {
			h.memoryKiB = cfg.Argon2.MemoryKiB
		}
		if cfg.Argon2.Iterations != 0 {
			h.iterations = cfg.Argon2.Iterations
		}
		if cfg.Argon2.Parallelism != 0 {
			h.parallelism = cfg.Argon2.Parallelism
		}
	}

	return h
}

// Hash derives an argon2id digest under a fresh random salt and encodes it
// as a PHC string. A failure to read the system's entropy source is not a
// recoverable condition, so it surfaces as an error the caller should treat
// as fatal.
func (h *argon2Hasher) Hash(password string) (string, error) {
	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("read random salt: %w", err)
	}

	digest := argon2.IDKey([]byte(password), salt, h.iterations, h.memoryKiB, h.parallelism, keyLength)

	encoded := fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		h.memoryKiB,
		h.iterations,
		h.parallelism,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(digest),
	)

	return encoded, nil
}

// Check re-derives the digest with the stored salt and parameters and
// compares in constant time. A malformed stored hash reports false, the
// same outward signal as a mismatch.
func (h *argon2Hasher) Check(password, hash string) bool {
	memoryKiB, iterations, parallelism, salt, digest, ok := decodePHC(hash)
	if !ok {
		return false
	}

	derived := argon2.IDKey([]byte(password), salt, iterations, memoryKiB, parallelism, uint32(len(digest)))

	return subtle.ConstantTimeCompare(digest, derived) == 1
}

// decodePHC splits an argon2id PHC string back into its parameters.
func decodePHC(hash string) (memoryKiB, iterations uint32, parallelism uint8, salt, digest []byte, ok bool) {
	parts := strings.Split(hash, "$")
	if len(parts) != 6 || parts[0] != "" || parts[1] != "argon2id" {
		return 0, 0, 0, nil, nil, false
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil || version != argon2.Version {
		return 0, 0, 0, nil, nil, false
	}

	var p uint32
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memoryKiB, &iterations, &p); err != nil {
		return 0, 0, 0, nil, nil, false
	}
	if memoryKiB == 0 || iterations == 0 || p == 0 || p > 255 {
		return 0, 0, 0, nil, nil, false
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil || len(salt) == 0 {
		return 0, 0, 0, nil, nil, false
	}

	digest, err = base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil || len(digest) == 0 {
		return 0, 0, 0, nil, nil, false
	}

	return memoryKiB, iterations, uint8(p), salt, digest, true
}
