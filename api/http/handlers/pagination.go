package handlers

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// page: limit/offset из query. Невалидные значения молча заменяются
// значениями по умолчанию, limit не превышает maxLimit.
type page struct {
	Limit  int
	Offset int
}

func pageFrom(c *fiber.Ctx, maxLimit int) page {
	p := page{Limit: maxLimit}
	if n, ok := queryInt(c, "limit"); ok && n > 0 {
		p.Limit = min(n, maxLimit)
	}
	if n, ok := queryInt(c, "offset"); ok && n >= 0 {
		p.Offset = n
	}
	return p
}

func queryInt(c *fiber.Ctx, key string) (int, bool) {
	v := strings.TrimSpace(c.Query(key))
	if v == "" {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	return n, err == nil
}
