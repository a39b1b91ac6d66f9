package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

const (
	pageContextKey = "page"
	sizeContextKey = "size"

	defaultPageSize = 20
	maxPageSize     = 100
)

// PaginationMiddleware parses the page/size query parameters into offsets.
// Pages are 1-based on the wire; size is clamped to maxPageSize so a single
// request cannot drag the whole table through the connection.
func PaginationMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			page, err := positiveIntParam(ctx, "page", 1)
			if err != nil {
				return ctx.JSON(http.StatusBadRequest, ErrorResponse{
					Code:    http.StatusBadRequest,
					Message: "page must be a positive integer",
				})
			}

			size, err := positiveIntParam(ctx, "size", defaultPageSize)
			if err != nil {
				return ctx.JSON(http.StatusBadRequest, ErrorResponse{
					Code:    http.StatusBadRequest,
					Message: "size must be a positive integer",
				})
			}
			if size > maxPageSize {
				size = maxPageSize
			}

			ctx.Set(pageContextKey, page)
			ctx.Set(sizeContextKey, size)
			return next(ctx)
		}
	}
}

func positiveIntParam(ctx echo.Context, name string, fallback int) (int, error) {
	raw := ctx.QueryParam(name)
	if raw == "" {
		return fallback, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil || value < 1 {
		return 0, echo.ErrBadRequest
	}
	return value, nil
}

// pageFrom returns the skip/size offsets stored by PaginationMiddleware.
func pageFrom(ctx echo.Context) (skip, size int) {
	page, _ := ctx.Get(pageContextKey).(int)
	size, _ = ctx.Get(sizeContextKey).(int)
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = defaultPageSize
	}
	return (page - 1) * size, size
}
