// Package result defines the uniform outcome envelope returned by every
// service operation. Expected business failures (validation, ownership,
// not-found, conflicts) are carried as data in a failure-shaped Result,
// never as Go errors; only unexpected faults travel the error return.
package result

import "net/http"

// Result is the outcome of a service operation. Exactly one of three
// shapes holds:
//   - success with data: 2xx status, Data set, Err empty
//   - success without data: 204, zero Data, Err empty
//   - failure: 4xx/5xx status, zero Data, Err set
type Result[T any] struct {
	StatusCode int
	Data       T
	Err        string
}

// Ok builds a 200 result carrying data.
func Ok[T any](data T) Result[T] {
	return Result[T]{StatusCode: http.StatusOK, Data: data}
}

// Created builds a 201 result carrying the created resource.
func Created[T any](data T) Result[T] {
	return Result[T]{StatusCode: http.StatusCreated, Data: data}
}

// NoContent builds a 204 result with no payload.
func NoContent[T any]() Result[T] {
	return Result[T]{StatusCode: http.StatusNoContent}
}

// Fail builds a failure result with the given status and message.
func Fail[T any](statusCode int, msg string) Result[T] {
	return Result[T]{StatusCode: statusCode, Err: msg}
}

// Failed reports whether the result is failure-shaped.
func (r Result[T]) Failed() bool {
	return r.Err != ""
}

// Empty is the payload type for operations that never return data.
type Empty = struct{}

// Unit is the Result specialization for data-less operations.
type Unit = Result[Empty]
