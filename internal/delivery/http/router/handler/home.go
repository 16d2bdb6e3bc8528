package handler

import (
	"net/http"

	"campsite/internal/delivery/http/response"

	"github.com/labstack/echo/v4"
)

// Home is the landing handler; it points clients at the main collections.
func Home(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{
		"campgrounds": "/campgrounds",
		"register":    "/register",
		"login":       "/login",
	}, "Welcome to Campsite")
}
