package main

import (
	"errors"

	"wlanprofiles/internal/domain"
)

const (
	exitFailure = 1
	exitUsage   = 2
)

type exitError struct {
	code    int
	message string
	silent  bool
}

func (e exitError) Error() string {
	return e.message
}

// exitWith turns err into the final ">> " line.
func exitWith(code int, err error) error {
	return exitError{code: code, message: resultPrefix + describe(err)}
}

func describe(err error) string {
	var domainErr *domain.Error
	if errors.As(err, &domainErr) {
		return domainErr.Detail()
	}
	return err.Error()
}
