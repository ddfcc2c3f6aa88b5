package handler

import (
	"strconv"

	"go-bakery-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

// parseID parses a route :id param into the uint key the repositories use.
func parseID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	return uint(id), err
}

// getUserName returns the authenticated display name set by RequireAuth.
func getUserName(c *fiber.Ctx) string {
	name, ok := c.Locals("user_name").(string)
	if !ok || name == "" {
		return "Unknown"
	}
	return name
}

// repoError maps storage failures onto status codes: unique/FK collisions
// are the user's to fix, missing rows are 404, the rest is on us.
func repoError(c *fiber.Ctx, err error) error {
	switch {
	case repository.IsNotFound(err):
		return c.Status(404).JSON(fiber.Map{"error": "Not found"})
	case repository.IsConstraintErr(err):
		return c.Status(409).JSON(fiber.Map{"error": err.Error()})
	default:
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
}
