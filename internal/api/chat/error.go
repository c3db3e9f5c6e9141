package chat

import (
	"AutoPartsBot/pkg/response"
	"net/http"
)

var (
	ErrEmptyMessage    = response.NewError(http.StatusBadRequest, "message must not be empty")
	ErrInvalidSession  = response.NewError(http.StatusBadRequest, "invalid session id")
	ErrSessionLoad     = response.NewError(http.StatusInternalServerError, "failed to load session")
	ErrSessionSave     = response.NewError(http.StatusInternalServerError, "failed to save session")
	ErrSaveLead        = response.NewError(http.StatusInternalServerError, "failed to save lead")
	ErrSaveTranscript  = response.NewError(http.StatusInternalServerError, "failed to save transcript")
	ErrHistoryNotFound = response.NewError(http.StatusNotFound, "no history for session")
)
