package services

import (
	"github.com/docuvault-labs/docuvault-core/internal/core/domain"
)

// Access policy for documents and user profiles. One canonical rule:
// numeric rank comparison with an owner override.
//
// Precedence for a single document:
//  1. A document with no declared role cannot be rank-compared; reads are
//     refused with ErrRoleUndeclared for everyone, including the owner.
//  2. The owner may do anything else with their document.
//  3. Deletion by a non-owner requires the top administrative rank -
//     ownership or top rank, nothing in between.
//  4. Read/write by a non-owner requires principal rank >= document rank;
//     equal rank is sufficient.

// CheckDocumentAccess decides whether a principal may perform op on doc.
// A nil return means ALLOW.
func CheckDocumentAccess(p *domain.Principal, doc *domain.Document, op domain.Operation) error {
	if op == domain.OpRead && doc.Role == "" {
		return domain.ErrRoleUndeclared
	}

	if p.Owns(doc) {
		return nil
	}

	if op == domain.OpDelete {
		if p.AccessLevel == domain.MaxAccessLevel {
			return nil
		}
		return domain.ErrForbidden
	}

	required, err := doc.RequiredLevel()
	if err != nil {
		return err
	}
	if p.AccessLevel >= required {
		return nil
	}
	return domain.ErrForbidden
}

// DocumentVisible is the listing filter: an item is returned iff the
// principal outranks (or equals) its required role, or owns it.
// Items with an undeclared role are visible to their owner only.
func DocumentVisible(p *domain.Principal, doc *domain.Document) bool {
	if p.Owns(doc) {
		return true
	}
	required, err := doc.RequiredLevel()
	if err != nil {
		return false
	}
	return p.AccessLevel >= required
}

// FilterDocuments returns the documents visible to the principal,
// preserving order
func FilterDocuments(p *domain.Principal, docs []*domain.Document) []*domain.Document {
	visible := make([]*domain.Document, 0, len(docs))
	for _, doc := range docs {
		if DocumentVisible(p, doc) {
			visible = append(visible, doc)
		}
	}
	return visible
}

// CanAccessProfile reports whether a principal may read, update or
// delete the given user profile: their own, or any if top rank.
func CanAccessProfile(p *domain.Principal, userID string) bool {
	return p.UserID == userID || p.AccessLevel == domain.MaxAccessLevel
}

// CanListUsers restricts the user listing to top-rank principals
func CanListUsers(p *domain.Principal) bool {
	return p.AccessLevel == domain.MaxAccessLevel
}
