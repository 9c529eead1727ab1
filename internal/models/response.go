package models

import (
	"github.com/gofiber/fiber/v2"
)

// Response is the envelope every endpoint answers with.
type Response struct {
	Success    bool            `json:"success"`
	Message    string          `json:"message,omitempty"`
	Data       any             `json:"data,omitempty"`
	Errors     any             `json:"errors,omitempty"`
	Count      *int            `json:"count,omitempty"`
	Pagination *PaginationMeta `json:"pagination,omitempty"`
}

// PaginationMeta describes the page window of a list response.
// Pages is ceil(Total / limit).
type PaginationMeta struct {
	Current int   `json:"current"`
	Pages   int   `json:"pages"`
	Total   int64 `json:"total"`
}

// Respond writes a success envelope with the given status and data.
func Respond(c *fiber.Ctx, status int, data any) error {
	return c.Status(status).JSON(Response{Success: true, Data: data})
}

// RespondMessage writes a success envelope carrying only a message.
func RespondMessage(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(Response{Success: true, Message: message})
}

// RespondList writes a success envelope with item count and pagination metadata.
func RespondList(c *fiber.Ctx, data any, count int, meta *PaginationMeta) error {
	return c.Status(fiber.StatusOK).JSON(Response{
		Success:    true,
		Data:       data,
		Count:      &count,
		Pagination: meta,
	})
}

// RespondWithError writes a failure envelope for the given status and error.
// Internal detail is logged upstream, never surfaced to the client.
func RespondWithError(c *fiber.Ctx, status int, err error) error {
	resp := Response{Success: false}
	if appErr, ok := err.(*AppError); ok {
		resp.Message = appErr.Message
		if len(appErr.Fields) > 0 {
			resp.Errors = appErr.Fields
		}
	} else {
		resp.Message = err.Error()
	}
	return c.Status(status).JSON(resp)
}
