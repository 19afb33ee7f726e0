// Package apperrors defines the error taxonomy shared by the service layer.
// Services return these; controllers map them to HTTP statuses with Status.
package apperrors

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func Validation(msg string) error { return &ValidationError{Msg: msg} }

type ConflictError struct {
	Msg string
}

func (e *ConflictError) Error() string { return e.Msg }

func Conflict(msg string) error { return &ConflictError{Msg: msg} }

type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string { return e.Resource + " not found" }

func NotFound(resource string) error { return &NotFoundError{Resource: resource} }

type AuthorizationError struct {
	Msg string
}

func (e *AuthorizationError) Error() string { return e.Msg }

func Forbidden(msg string) error { return &AuthorizationError{Msg: msg} }

// Status maps a service error to the HTTP status the handler should send.
// Anything outside the taxonomy is treated as an internal store failure.
func Status(err error) int {
	var ve *ValidationError
	var ce *ConflictError
	var nfe *NotFoundError
	var ae *AuthorizationError

	switch {
	case errors.As(err, &ve):
		return fiber.StatusBadRequest
	case errors.As(err, &ce):
		return fiber.StatusConflict
	case errors.As(err, &nfe):
		return fiber.StatusNotFound
	case errors.As(err, &ae):
		return fiber.StatusForbidden
	default:
		return fiber.StatusInternalServerError
	}
}

// Message returns the error text for taxonomy errors and a generic message
// for internal ones, so store details never leak to the client.
func Message(err error) string {
	if Status(err) == fiber.StatusInternalServerError {
		return "Internal server error"
	}
	return err.Error()
}
