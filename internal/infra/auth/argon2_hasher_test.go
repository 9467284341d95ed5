package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"conduit/config"
)

func TestArgon2Hasher_HashAndCheck(t *testing.T) {
	hasher := NewArgon2Hasher(nil)

	password := "correct horse battery staple"
	hash, err := hasher.Hash(password)
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)
	assert.True(t, strings.HasPrefix(hash, "$argon2id$"))

	assert.True(t, hasher.Check(password, hash))
	assert.False(t, hasher.Check("wrong password", hash))
	assert.False(t, hasher.Check("", hash))
}

func TestArgon2Hasher_SaltUniqueness(t *testing.T) {
	hasher := NewArgon2Hasher(nil)

	first, err := hasher.Hash("pw1")
	require.NoError(t, err)
	second, err := hasher.Hash("pw1")
	require.NoError(t, err)

	// Same plaintext hashes differently each time, and both verify.
	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Check("pw1", first))
	assert.True(t, hasher.Check("pw1", second))
}

func TestArgon2Hasher_MalformedHashReportsFalse(t *testing.T) {
	hasher := NewArgon2Hasher(nil)

	malformed := []string{
		"",
		"not-a-hash",
		"$argon2id$v=19$m=65536,t=3,p=4$salt-only",
		"$argon2id$v=19$m=0,t=0,p=0$AAAA$AAAA",
		"$argon2i$v=19$m=65536,t=3,p=4$AAAA$AAAA",
		"$argon2id$v=18$m=65536,t=3,p=4$AAAA$AAAA",
		"$argon2id$v=19$m=65536,t=3,p=4$!!!$AAAA",
	}

	for _, hash := range malformed {
		assert.False(t, hasher.Check("anything", hash), "expected false for %q", hash)
	}
}

func TestArgon2Hasher_ConfiguredParams(t *testing.T) {
	cfg := &config.Config{
		Argon2: &config.Argon2Config{
			MemoryKiB:   32 * 1024,
			Iterations:  2,
			Parallelism: 2,
		},
	}
	hasher := NewArgon2Hasher(cfg)

	hash, err := hasher.Hash("pw1")
	require.NoError(t, err)
	assert.Contains(t, hash, "m=32768,t=2,p=2")
	assert.True(t, hasher.Check("pw1", hash))
}

func TestArgon2Hasher_CrossParameterVerify(t *testing.T) {
	// A verifier with different configured parameters still checks hashes
	// produced under the stored parameters: everything needed to re-derive
	// lives in the hash string itself.
	producer := NewArgon2Hasher(&config.Config{
		Argon2: &config.Argon2Config{MemoryKiB: 32 * 1024, Iterations: 2, Parallelism: 2},
	})
	verifier := NewArgon2Hasher(nil)

	hash, err := producer.Hash("pw1")
	require.NoError(t, err)
	assert.True(t, verifier.Check("pw1", hash))
	assert.False(t, verifier.Check("pw2", hash))
}
