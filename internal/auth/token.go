package auth

import "golang.org/x/crypto/bcrypt"

// ServiceTokenVerifier checks the shared token presented by internal
// services (fulfillment workers, report jobs) that call the engine without
// a user session. Only the bcrypt hash of the token is configured.
type ServiceTokenVerifier struct {
	hash []byte
}

// NewServiceTokenVerifier creates a verifier from a bcrypt hash. An empty
// hash disables service-token access entirely.
func NewServiceTokenVerifier(hash string) *ServiceTokenVerifier {
	return &ServiceTokenVerifier{hash: []byte(hash)}
}

// Verify reports whether the presented token matches the configured hash.
func (v *ServiceTokenVerifier) Verify(token string) bool {
	if len(v.hash) == 0 || token == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword(v.hash, []byte(token)) == nil
}

// HashServiceToken produces the bcrypt hash to store in configuration.
func HashServiceToken(token string, cost int) (string, error) {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	bytes, err := bcrypt.GenerateFromPassword([]byte(token), cost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}
