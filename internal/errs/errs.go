// Package errs defines the error types the API surface reports with.
//
// Every failure a client can observe is carried by *HTTPError so the
// global error handler can translate it into the one failure envelope the
// API uses: {"result": null, "message": "..."} plus a status code.
package errs
