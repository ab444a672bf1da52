// internal/auth/password.go
package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

// ErrMalformedHash marks a stored credential that cannot be parsed. It is a
// data defect, not a failed verification.
var ErrMalformedHash = errors.New("malformed password hash")

const saltLength = 16

type argonParams struct {
	time    uint32
	memory  uint32
	threads uint8
	keyLen  uint32
}

// PasswordHasher hashes and verifies passwords with argon2id. The encoded
// form embeds the parameters, so they can be raised over time: old hashes
// keep verifying and NeedsRehash flags them for an upgrade on next login.
type PasswordHasher struct {
	params argonParams
}

func NewPasswordHasher() *PasswordHasher {
	return &PasswordHasher{
		params: argonParams{
			time:    1,
			memory:  64 * 1024,
			threads: 4,
			keyLen:  32,
		},
	}
}

// Hash derives an argon2id digest in PHC form:
// $argon2id$v=19$m=65536,t=1,p=4$<salt>$<hash>.
func (p *PasswordHasher) Hash(password string) (string, error) {
	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generating salt: %w", err)
	}

	hash := argon2.IDKey([]byte(password), salt,
		p.params.time, p.params.memory, p.params.threads, p.params.keyLen)

	encoded := fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		p.params.memory,
		p.params.time,
		p.params.threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(hash),
	)
	return encoded, nil
}

// Verify checks password against a stored digest using the digest's own
// parameters, in constant time.
func (p *PasswordHasher) Verify(password, encoded string) (bool, error) {
	params, salt, hash, err := decodeHash(encoded)
	if err != nil {
		return false, err
	}
	candidate := argon2.IDKey([]byte(password), salt,
		params.time, params.memory, params.threads, params.keyLen)
	return subtle.ConstantTimeCompare(hash, candidate) == 1, nil
}

// NeedsRehash reports whether a stored digest was produced with weaker
// parameters than the hasher currently uses. Unparseable digests read as
// needing a rehash; the next successful login replaces them.
func (p *PasswordHasher) NeedsRehash(encoded string) bool {
	params, _, _, err := decodeHash(encoded)
	if err != nil {
		return true
	}
	return params.memory < p.params.memory ||
		params.time < p.params.time ||
		params.keyLen < p.params.keyLen
}

// decodeHash splits a PHC-form argon2id digest into its parameters, salt and
// hash. Wrong algorithm or version is ErrMalformedHash, never a silent
// verification failure.
func decodeHash(encoded string) (argonParams, []byte, []byte, error) {
	var params argonParams

	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return params, nil, nil, ErrMalformedHash
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil || version != argon2.Version {
		return params, nil, nil, ErrMalformedHash
	}
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d",
		&params.memory, &params.time, &params.threads); err != nil {
		return params, nil, nil, ErrMalformedHash
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return params, nil, nil, fmt.Errorf("%w: bad salt encoding", ErrMalformedHash)
	}
	hash, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return params, nil, nil, fmt.Errorf("%w: bad hash encoding", ErrMalformedHash)
	}
	params.keyLen = uint32(len(hash))

	return params, salt, hash, nil
}
