package controllers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/sheidamoradi/danesh-platform/config"
	"github.com/sheidamoradi/danesh-platform/models"
	"github.com/sheidamoradi/danesh-platform/store"
	"github.com/sheidamoradi/danesh-platform/utils"
)

// parseID reads a numeric path parameter.
func parseID(c *fiber.Ctx, name string) (uint, error) {
	id, err := strconv.Atoi(c.Params(name))
	if err != nil || id <= 0 {
		return 0, errors.New("invalid " + name)
	}
	return uint(id), nil
}

// parseQueryID reads a numeric query-string value.
func parseQueryID(v string) (uint, error) {
	id, err := strconv.Atoi(v)
	if err != nil || id <= 0 {
		return 0, errors.New("invalid id")
	}
	return uint(id), nil
}

// respondErr maps store errors onto HTTP statuses: validation failures are
// 400, missing rows 404, anything else 500.
func respondErr(c *fiber.Ctx, err error) error {
	switch {
	case store.IsValidation(err):
		return utils.BadRequest(c, err.Error())
	case errors.Is(err, store.ErrNotFound):
		return utils.NotFound(c, "Not found")
	default:
		return utils.InternalServerError(c, "Could not query database")
	}
}

// currentUser resolves the requesting user from the Authorization header if
// one is present. Catalog reads are public, so a missing or stale token just
// means an anonymous request.
func currentUser(c *fiber.Ctx, s *store.Store, cfg *config.Config) *models.User {
	userID, err := utils.ExtractUserIDFromToken(c, cfg)
	if err != nil {
		return nil
	}
	user, err := s.GetUser(userID)
	if err != nil {
		return nil
	}
	return user
}
