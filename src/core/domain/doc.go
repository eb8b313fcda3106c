// Package domain contains the core domain model for the application.
//
// This package defines:
//   - Entities: User, Category, BlogPost, Comment
//   - Domain Errors: business rule violation errors returned by repositories
//
// Rules for this package:
//   - No external dependencies except the standard library
//   - No infrastructure concerns (database, HTTP, etc.)
//   - Relations between entities are modeled as foreign-key ids, not
//     embedded object graphs
package domain
