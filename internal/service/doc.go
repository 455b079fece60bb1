// Package service provides the registry that catalogs tool providers.
//
// The registry maintains a catalog of available providers and handles
// service discovery, tool execution, and relevance scoring for agent
// queries.
//
// Components:
//   - Registry: Central service catalog
//   - Provider: Interface for service implementations
//   - Service discovery with relevance scoring
//
// Example Usage:
//
//	registry := service.NewRegistry()
//	registry.Register(scratchpadProvider)
//	services := registry.Discover("create file", 5)
//	result, err := registry.Execute(ctx, "scratchpad.create_file", params, appCtx)
package service
