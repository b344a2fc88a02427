// Package service contains the domain logic between HTTP handlers and repositories.
package service

import (
	"blogsphere/internal/models"
)

// authorizeOwner is the single ownership predicate applied by every mutating
// entry point: a document may be mutated only by the user referenced in its
// author field.
func authorizeOwner(ownerID, callerID uint) error {
	if ownerID != callerID {
		return models.NewForbiddenError("You can only modify your own content")
	}
	return nil
}
