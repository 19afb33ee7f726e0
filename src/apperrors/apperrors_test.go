package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestStatusMapping(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{Validation("bad input"), fiber.StatusBadRequest},
		{Conflict("already declared"), fiber.StatusConflict},
		{NotFound("Skill"), fiber.StatusNotFound},
		{Forbidden("not yours"), fiber.StatusForbidden},
		{errors.New("disk on fire"), fiber.StatusInternalServerError},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.status, Status(tc.err), "error %v", tc.err)
	}
}

func TestStatusSeesWrappedErrors(t *testing.T) {
	wrapped := fmt.Errorf("declare: %w", Conflict("already declared"))
	assert.Equal(t, fiber.StatusConflict, Status(wrapped))
}

func TestMessageHidesInternalDetails(t *testing.T) {
	assert.Equal(t, "Internal server error", Message(errors.New("sqlite: database is locked")))
	assert.Equal(t, "Skill not found", Message(NotFound("Skill")))
	assert.Equal(t, "bad input", Message(Validation("bad input")))
}
