// file: internals/helpers/json_response.go
package helper

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

/* ===============================
   Pagination type & defaults
=================================*/

type Pagination struct {
	Page       int   `json:"page"`
	PerPage    int   `json:"per_page"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
	HasNext    bool  `json:"has_next"`
	HasPrev    bool  `json:"has_prev"`
}

type Paging struct {
	Page    int
	PerPage int
	Offset  int
	Limit   int
}

// ResolvePaging reads ?page= & ?per_page= (or the legacy ?limit= alias) and normalizes.
func ResolvePaging(c *fiber.Ctx, defaultPerPage, maxPerPage int) Paging {
	pageStr := strings.TrimSpace(c.Query("page", "1"))

	perPageStr := strings.TrimSpace(c.Query("per_page"))
	if perPageStr == "" {
		perPageStr = strings.TrimSpace(c.Query("limit", strconv.Itoa(defaultPerPage)))
	}

	page, _ := strconv.Atoi(pageStr)
	if page < 1 {
		page = 1
	}

	perPage, _ := strconv.Atoi(perPageStr)
	if perPage <= 0 {
		perPage = defaultPerPage
	}
	if maxPerPage > 0 && perPage > maxPerPage {
		perPage = maxPerPage
	}

	offset := (page - 1) * perPage

	return Paging{
		Page:    page,
		PerPage: perPage,
		Offset:  offset,
		Limit:   perPage,
	}
}

func BuildPaginationFromPage(total int64, page, perPage int) Pagination {
	if perPage <= 0 {
		perPage = 20
	}
	if page <= 0 {
		page = 1
	}
	totalPages := int((total + int64(perPage) - 1) / int64(perPage)) // ceil
	if totalPages == 0 {
		totalPages = 1
	}
	return Pagination{
		Page:       page,
		PerPage:    perPage,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
		HasPrev:    page > 1,
	}
}

/* ===============================
   JSON envelopes
=================================*/

func JsonOK(c *fiber.Ctx, message string, data any) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"code":    fiber.StatusOK,
		"status":  "success",
		"message": message,
		"data":    data,
	})
}

func JsonCreated(c *fiber.Ctx, message string, data any) error {
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"code":    fiber.StatusCreated,
		"status":  "success",
		"message": message,
		"data":    data,
	})
}

func JsonUpdated(c *fiber.Ctx, message string, data any) error {
	return JsonOK(c, message, data)
}

func JsonDeleted(c *fiber.Ctx, message string, data any) error {
	return JsonOK(c, message, data)
}

func JsonList(c *fiber.Ctx, message string, data any, pagination any) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"code":       fiber.StatusOK,
		"status":     "success",
		"message":    message,
		"data":       data,
		"pagination": pagination,
	})
}

func JsonError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"code":    status,
		"status":  "error",
		"message": message,
	})
}

func JsonValidationError(c *fiber.Ctx, fieldErrors map[string]string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"code":    fiber.StatusBadRequest,
		"status":  "error",
		"message": "Validation failed",
		"errors":  fieldErrors,
	})
}
