package errors

import "net/http"

var (
	ErrCatalogUnavailable = New(
		"TRANSPORT_FAILURE",
		"Remote catalog request failed",
		http.StatusBadGateway,
	)

	ErrInvalidCoordinates = New(
		"INVALID_COORDINATES",
		"Invalid coordinates provided",
		http.StatusBadRequest,
	)

	ErrInvalidDistance = New(
		"INVALID_DISTANCE",
		"Invalid distance value",
		http.StatusBadRequest,
	)

	ErrInvalidBoxSize = New(
		"INVALID_BOX_SIZE",
		"Invalid search box size",
		http.StatusBadRequest,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
