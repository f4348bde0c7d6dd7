// Package core contains the business logic for the Memoria API.
// It is designed to be framework-agnostic and can be used independently
// of any web framework or infrastructure concerns.
//
// The core package is organized into several sub-packages:
//
// - domain: Contains pure domain models (UserPhoto, Article, Place, etc.)
// - photos: Photo library management with environment strategies
// - preview: HTML preview pipeline (sanitize, strip links, truncate)
// - content: Article and place content with preview attachment
// - reader: Reader view extraction from article URLs
// - errors: Custom error types for better error handling
// - interfaces: Contracts for external dependencies (KV store, HTTP, logger)
//
// # Design Principles
//
// The core package follows clean architecture principles:
// - No external framework dependencies
// - All external dependencies are injected via interfaces
// - Business logic is testable in isolation
// - Domain models are free from persistence concerns
//
// # Usage Example
//
//	import (
//	    "memoria-app-api/core/interfaces"
//	    "memoria-app-api/core/photos"
//	)
//
//	// Create dependencies
//	deps := interfaces.Dependencies{
//	    KV:         myStore,      // implements interfaces.KeyValueStore
//	    HTTPClient: myHTTPClient, // implements interfaces.HTTPClient
//	    Logger:     myLogger,     // implements interfaces.Logger
//	}
//
//	// Create service
//	photoService := photos.NewService(deps, myStorage, myEnvironment)
//
//	// Load the photo library
//	library, err := photoService.LoadAll(ctx)
package core
