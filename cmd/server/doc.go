// Package main is the entry point for the scratchpad backend server.
//
// The server exposes a sandboxed scratch directory as a registry of
// agent-callable tools over a REST API.
//
// The server provides:
//   - Service provider registry with discovery
//   - Tool execution against the sandboxed scratch directory
//   - Prometheus metrics
//   - Rate limiting and security
//
// Configuration:
//   - Environment variables (12-factor)
//   - CLI flags (override env vars)
//   - Defaults for development
//
// Usage:
//
//	./server -port 8000 -scratch-dir ./scratchpad
//
// Signals:
//   - SIGINT, SIGTERM: Graceful shutdown
package main
