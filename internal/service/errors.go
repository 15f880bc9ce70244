package service

import "errors"

var (
	// ErrLoginFailed is returned when the server answered the login
	// request without a token. The wrapped text carries the server's
	// explanation when it sent one.
	ErrLoginFailed = errors.New("вход не выполнен")

	// ErrEmptyID is returned by Update and Remove when the input has no
	// identifier to address the server record with.
	ErrEmptyID = errors.New("идентификатор записи не задан")
)
