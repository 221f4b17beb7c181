package bidding

import "github.com/google/uuid"

// IDGenerator produces globally unique identifiers for bundles and audit entries
type IDGenerator func() string

// NewUUID is the default IDGenerator
func NewUUID() string {
	return uuid.NewString()
}
