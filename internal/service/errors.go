package service

import (
	"errors"
)

const (
	BadRequest          = 400
	Unauthorized        = 401
	Forbidden           = 403
	NotFound            = 404
	Conflict            = 409
	InternalServerError = 500
	BadGateway          = 502
)

var (
	ErrParamInvalid       = errors.New("invalid parameters")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExist          = errors.New("user already exists")
	ErrPostNotFound       = errors.New("post not found")
	ErrCommentNotFound    = errors.New("comment not found")
	ErrTokenInvalid       = errors.New("token invalid or expired")
	ErrTokenMissing       = errors.New("token missing or malformed")
	ErrForbidden          = errors.New("forbidden")
	ErrPriceInvalid       = errors.New("price must be greater than zero")
	ErrPaymentUnavailable = errors.New("payment processor unavailable")
	UnExpectedError       = errors.New("unexpected error, please retry later")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:       BadRequest,
	ErrUserNotFound:       NotFound,
	ErrUserExist:          Conflict,
	ErrPostNotFound:       NotFound,
	ErrCommentNotFound:    NotFound,
	ErrTokenInvalid:       Unauthorized,
	ErrTokenMissing:       Unauthorized,
	ErrForbidden:          Forbidden,
	ErrPriceInvalid:       BadRequest,
	ErrPaymentUnavailable: BadGateway,
	UnExpectedError:       InternalServerError,
}
