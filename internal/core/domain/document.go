package domain

import "time"

// Operation is an access-controlled action on a resource
type Operation string

const (
	OpRead   Operation = "read"
	OpWrite  Operation = "write"
	OpDelete Operation = "delete"
)

// Document represents a stored document. Role is the title of the role
// required to access it; an empty Role means the document never declared
// one and cannot be authorized by rank comparison.
type Document struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Content      string    `json:"content"`
	OwnerID      string    `json:"ownerId"`
	Role         string    `json:"role,omitempty"`
	DateCreated  time.Time `json:"dateCreated"`
	LastModified time.Time `json:"lastModified"`
}

// RequiredLevel resolves the rank a principal needs to read the document.
// Fails with ErrRoleUndeclared when no role was declared.
func (d *Document) RequiredLevel() (int, error) {
	if d.Role == "" {
		return 0, ErrRoleUndeclared
	}
	return AccessLevelOf(d.Role)
}
