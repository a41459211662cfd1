package api

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
)

const (
	defaultListLimit = 100
	dateParamLayout  = "2006-01-02"
)

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

func idParam(c *fiber.Ctx, name string) (uint, error) {
	value, err := strconv.ParseUint(c.Params(name), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(value), nil
}

// listRange reads the skip/limit paging query parameters, falling back
// to the defaults on absent or malformed values.
func listRange(c *fiber.Ctx) (int, int) {
	skip := c.QueryInt("skip", 0)
	if skip < 0 {
		skip = 0
	}
	limit := c.QueryInt("limit", defaultListLimit)
	if limit <= 0 {
		limit = defaultListLimit
	}
	return skip, limit
}

func (handler *Handler) dateQuery(c *fiber.Ctx, name string) (*time.Time, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	parsed, err := time.ParseInLocation(dateParamLayout, raw, handler.location)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

func (handler *Handler) parseDateField(raw *string) (*time.Time, bool) {
	if raw == nil || *raw == "" {
		return nil, true
	}
	parsed, err := time.ParseInLocation(dateParamLayout, *raw, handler.location)
	if err != nil {
		return nil, false
	}
	return &parsed, true
}
