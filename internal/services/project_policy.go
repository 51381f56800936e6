package services

import "github.com/yukikurage/project-showcase-api/internal/models"

// Permission rules for projects. Admins may do anything; students act on
// their own projects while those are not approved, and read approved ones.

func authorizeRead(actor *models.User, project *models.Project) error {
	if actor.IsAdmin() || project.IsApproved || project.IsOwnedBy(actor.ID) {
		return nil
	}
	return ErrProjectAccess
}

func authorizeUpdate(actor *models.User, project *models.Project) error {
	if actor.IsAdmin() {
		return nil
	}
	if !project.IsOwnedBy(actor.ID) {
		return ErrUpdateNotOwner
	}
	if project.IsApproved {
		return ErrUpdateApproved
	}
	return nil
}

func authorizeDelete(actor *models.User, project *models.Project) error {
	if actor.IsAdmin() {
		return nil
	}
	if !project.IsOwnedBy(actor.ID) {
		return ErrDeleteNotOwner
	}
	if project.IsApproved {
		return ErrDeleteApproved
	}
	return nil
}

// stripRestrictedFields drops the fields a non-admin may not change. They are
// ignored rather than rejected.
func stripRestrictedFields(actor *models.User, input UpdateProjectInput) UpdateProjectInput {
	if actor.IsAdmin() {
		return input
	}
	input.BatchID = nil
	input.Batch = nil
	input.IsApproved = nil
	input.ApprovedByID = nil
	input.ApprovedAt = nil
	return input
}
