package responses

import (
	"net/http"

	"qrmenu/internal/structs"
)

var (
	Success = structs.Response{
		Status:  "success",
		Code:    http.StatusOK,
		Message: "ok",
	}
	BadRequest = structs.Response{
		Status:  "bad_request",
		Code:    http.StatusBadRequest,
		Message: "invalid request",
	}
	NotFound = structs.Response{
		Status:  "not_found",
		Code:    http.StatusNotFound,
		Message: "not found",
	}
	Forbidden = structs.Response{
		Status:  "forbidden",
		Code:    http.StatusForbidden,
		Message: "action not allowed",
	}
	BadGateway = structs.Response{
		Status:  "bad_gateway",
		Code:    http.StatusBadGateway,
		Message: "upstream unavailable",
	}
	InternalErr = structs.Response{
		Status:  "internal_error",
		Code:    http.StatusInternalServerError,
		Message: "internal server error",
	}
)
