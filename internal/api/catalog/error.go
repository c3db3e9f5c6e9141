package catalog

import (
	"AutoPartsBot/pkg/response"
	"net/http"
)

var (
	ErrPartNotFound = response.NewError(http.StatusNotFound, "part not found")
	ErrEmptyQuery   = response.NewError(http.StatusBadRequest, "search query must not be empty")
)
