package apperrors

import (
	"net/http"
)

/*
Factories and predefined variables for common business-logic errors.
Repositories keep their own sentinel errors; services translate those
into the AppErrors below before they reach a handler.
*/

// --- Factories wrapping repository errors ---

// ErrNotFound converts a repository not-found error into a 404.
func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

// ErrAlreadyExists converts a duplicate error into a 409.
func ErrAlreadyExists(err error) *AppError {
	return Wrap(err, CodeAlreadyExists, "resource", "Resource already exists", http.StatusConflict)
}

// ErrConflict is the generic conflict factory.
func ErrConflict(err error, domain, message string) *AppError {
	return Wrap(err, CodeConflict, domain, message, http.StatusConflict)
}

// --- Factories creating new errors ---

// ErrInvalidOperation flags an operation the current state does not allow.
func ErrInvalidOperation(domain, message string) *AppError {
	return New(CodeInvalidOperation, domain, message, http.StatusBadRequest)
}

// ErrInvalidStatus flags an invalid status transition.
func ErrInvalidStatus(domain, message string) *AppError {
	return New(CodeInvalidStatus, domain, message, http.StatusBadRequest)
}

// --- Predefined variables for frequent, static errors ---

// ErrInvalidUserRole is returned when an operation is not available for the
// caller's role (e.g. an institution editing a faculty profile).
var ErrInvalidUserRole = New(
	CodeInvalidOperation,
	"business_logic",
	"Invalid user role for this operation",
	http.StatusBadRequest,
)

// ErrInsufficientPermissions is returned when a non-admin attempts an
// admin-only action.
var ErrInsufficientPermissions = New(
	CodeForbidden,
	"auth",
	"Insufficient permissions",
	http.StatusForbidden,
)

// ErrWeakPassword is returned on registration/reset with a short password.
var ErrWeakPassword = New(
	CodeValidationFailed,
	"auth",
	"Password must be at least 8 characters long",
	http.StatusBadRequest,
)

// ErrEmailAlreadyExists is returned on registration with a taken address.
var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"auth",
	"Email already registered",
	http.StatusConflict,
)

// ErrInvalidCredentials covers unknown email and wrong password alike.
var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid email or password",
	http.StatusUnauthorized,
)

// ErrAccountSuspended is returned on login for suspended or banned users.
var ErrAccountSuspended = New(
	CodeForbidden,
	"auth",
	"Account is suspended",
	http.StatusForbidden,
)

// ErrInvalidRefreshToken covers unknown and expired refresh tokens.
var ErrInvalidRefreshToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired refresh token",
	http.StatusUnauthorized,
)

// ErrInvalidVerificationToken is returned for an unknown email
// verification token.
var ErrInvalidVerificationToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid verification token",
	http.StatusBadRequest,
)

// ErrInvalidResetToken covers unknown and expired password reset tokens.
var ErrInvalidResetToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired reset token",
	http.StatusBadRequest,
)

// --- Privacy & visibility ---

// ErrProfileNotVisible is deliberately a 404, not a 403: a denial must not
// leak that the profile exists.
var ErrProfileNotVisible = New(
	CodeNotFound,
	"visibility",
	"Profile not available",
	http.StatusNotFound,
)

// ErrTierRequired is returned when a basic-tier faculty tries to create a
// block rule.
var ErrTierRequired = New(
	CodeForbidden,
	"membership",
	"This feature requires the professional membership tier",
	http.StatusForbidden,
)

// ErrInvitationExpired covers expired and revoked invitation links alike.
var ErrInvitationExpired = New(
	CodeTokenExpired,
	"invitation",
	"Invitation link has expired",
	http.StatusGone,
)

// --- Contacts ---

// ErrContactClosed is returned on a status change of an already terminal
// contact request.
var ErrContactClosed = New(
	CodeInvalidStatus,
	"contact",
	"Contact request is already closed",
	http.StatusBadRequest,
)

// --- Uploads & files ---

// ErrFileTooLarge: the file exceeds the per-request size limit.
var ErrFileTooLarge = New(
	CodeLimitExceeded,
	"validation",
	"File size exceeds the allowed limit",
	http.StatusRequestEntityTooLarge,
)

// ErrInvalidFileType: the MIME type is not allowed.
var ErrInvalidFileType = New(
	CodeValidationFailed,
	"validation",
	"The provided file type is not allowed",
	http.StatusUnsupportedMediaType,
)
