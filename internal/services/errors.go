package services

import (
	"errors"
	"fmt"

	apierrors "github.com/yukikurage/project-showcase-api/internal/errors"
	"github.com/yukikurage/project-showcase-api/internal/utils"
)

// MinPasswordLength applies to every password set through the services.
const MinPasswordLength = 6

var (
	ErrInvalidCredentials = apierrors.Authentication("Invalid email or password")
	ErrBatchRequired      = apierrors.Validation("Batch ID is required for student login")
	ErrBatchMismatch      = apierrors.Authentication("Invalid batch ID for this user")
	ErrBatchInactive      = apierrors.Authentication("Batch is not active or does not exist")
	ErrAdminExists        = apierrors.BusinessRule("Admin user already exists")
	ErrPasswordTooShort   = apierrors.Validation(fmt.Sprintf("Password must be at least %d characters", MinPasswordLength))
	ErrUserInactive       = apierrors.Authentication("Invalid token or user is not active")

	ErrDuplicateEmail   = apierrors.Duplicate("User with this email already exists")
	ErrEmailTaken       = apierrors.Duplicate("Email is already taken")
	ErrUserNotFound     = apierrors.NotFoundError("User not found")
	ErrWrongPassword    = apierrors.Validation("Current password is incorrect")
	ErrSelfDeactivation = apierrors.BusinessRule("Cannot deactivate your own account")
	ErrUserAccessDenied = apierrors.Authorization("You can only access your own account")

	ErrDuplicateBatch  = apierrors.Duplicate("Batch with this ID already exists")
	ErrBatchNotFound   = apierrors.NotFoundError("Batch not found")
	ErrBatchNotActive  = apierrors.Validation("Batch is not active")
	ErrBatchAccess     = apierrors.Authorization("Access denied for this batch")
	ErrInvalidBatch    = apierrors.Validation("Batch is not active or does not exist")
	ErrBatchIDRequired = apierrors.Validation("Batch ID is required")
	ErrMalformedBatch  = apierrors.Validation(fmt.Sprintf("Batch ID must contain only uppercase letters and numbers (at most %d)", utils.MaxBatchIDLength))

	// ErrBatchHasStudents is the cause of the error returned when deleting a
	// batch that still has active students.
	ErrBatchHasStudents = errors.New("batch has active students")

	ErrProjectNotFound    = apierrors.NotFoundError("Project not found")
	ErrProjectAccess      = apierrors.Authorization("Access denied")
	ErrForeignBatch       = apierrors.Authorization("You can only create projects for your own batch")
	ErrUpdateNotOwner     = apierrors.Authorization("You can only update your own projects")
	ErrUpdateApproved     = apierrors.BusinessRule("Cannot update approved projects")
	ErrDeleteNotOwner     = apierrors.Authorization("You can only delete your own projects")
	ErrDeleteApproved     = apierrors.BusinessRule("Cannot delete approved projects")
	ErrApproveForbidden   = apierrors.Authorization("Admin access required")
	ErrApproverNotFound   = apierrors.Validation("Approver not found")
	ErrStudentCreateBatch = apierrors.Authorization("Students without a batch cannot create projects")
)

func batchHasStudents(count int64) error {
	return &apierrors.AppError{
		Kind:    apierrors.KindBusinessRule,
		Message: fmt.Sprintf("Cannot delete batch. %d active students are assigned to this batch", count),
		Err:     ErrBatchHasStudents,
	}
}

func validatePassword(password string) error {
	if len(password) < MinPasswordLength {
		return ErrPasswordTooShort
	}
	return nil
}
