// Package api provides the HTTP API layer for the Memoria application.
// It wires handlers over the standard library request multiplexer and
// layers CORS, request logging and rate limiting around them.
//
// # Architecture
//
// The API package is structured as follows:
//
// - server.go: route registration and middleware assembly
// - handlers/: HTTP request handlers
// - dto/: Data Transfer Objects for requests and responses
// - middleware/: HTTP middleware for cross-cutting concerns
//
// # Middleware
//
// The API includes middleware for:
// - Request logging with unique request IDs (exposed via X-Request-ID)
// - Rate limiting per client IP
// - CORS handling
//
// # Usage Example
//
//	handler := api.NewHandler(api.Config{
//	    Logger:         logger,
//	    RateLimitRPS:   10,
//	    RateLimitBurst: 30,
//	}, api.Services{
//	    Photos: photoService,
//	    Reader: readerService,
//	})
//
//	http.ListenAndServe(":8000", handler)
//
// # Error Handling
//
// Error responses carry a single JSON field:
//
//	{"error": "photo not found: 1700000000000.jpeg"}
//
// Domain errors are mapped to appropriate HTTP status codes: not-found
// errors to 404, validation errors to 400, upstream failures to 502/503
// and storage failures to 500.
package api
