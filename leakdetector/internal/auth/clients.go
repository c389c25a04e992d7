package auth

import (
	"golang.org/x/crypto/bcrypt"
)

// RoleAnalyst is the role granted to every configured API client.
const RoleAnalyst = "ANALYST"

// ClientRegistry holds the API clients allowed to log in, keyed by id.
type ClientRegistry struct {
	hashes map[string]string
}

// NewClientRegistry wraps a client id -> bcrypt hash map.
func NewClientRegistry(hashes map[string]string) *ClientRegistry {
	copied := make(map[string]string, len(hashes))
	for id, hash := range hashes {
		copied[id] = hash
	}
	return &ClientRegistry{hashes: copied}
}

// Authenticate reports whether the secret matches the stored hash for clientID.
func (r *ClientRegistry) Authenticate(clientID, secret string) bool {
	hash, ok := r.hashes[clientID]
	if !ok {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(secret)) == nil
}

// Len returns the number of configured clients.
func (r *ClientRegistry) Len() int {
	return len(r.hashes)
}

// HashSecret hashes a client secret for the API_CLIENTS setting.
func HashSecret(secret string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}
