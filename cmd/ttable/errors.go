package main

import "errors"

// Sentinel errors for command operations
var (
	ErrInvalidArgumentCount = errors.New("invalid number of arguments")
	ErrInvalidOutputFormat  = errors.New("invalid output format")
	ErrInvalidColorMode     = errors.New("invalid color mode")
)

// ArgumentCountError reports a command line without exactly a variable count
// and an expression. Its message is the one users of the tool already know.
type ArgumentCountError struct {
	Got int
}

func (e *ArgumentCountError) Error() string {
	return "Invalid number of arguments."
}

func (e *ArgumentCountError) Unwrap() error {
	return ErrInvalidArgumentCount
}
