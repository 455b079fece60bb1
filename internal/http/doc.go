// Package http provides the REST handlers for the scratchpad backend.
package http
