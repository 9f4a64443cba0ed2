package handler

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v3"
)

func parseQueryIntStrict(c fiber.Ctx, key string, defaultVal int) (int, error) {
	s := strings.TrimSpace(c.Query(key))
	if s == "" {
		return defaultVal, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	return v, nil
}

func parseQueryBool(c fiber.Ctx, key string) (bool, error) {
	s := strings.TrimSpace(c.Query(key))
	if s == "" {
		return false, nil
	}
	return strconv.ParseBool(s)
}
