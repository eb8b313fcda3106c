// Package repo contains the PostgreSQL implementations of the repository
// ports defined in src/core/ports.
//
// One repository type per entity (UserRepository, BlogPostRepository,
// CommentRepository, CategoryRepository) plus a TxManager, all sharing the
// same pool. Methods run against the pool by default; inside
// TxManager.WithinTx they join the surrounding transaction, which is
// carried through the context.
//
// Error mapping:
//   - pgx.ErrNoRows      -> domain not-found errors
//   - unique violations  -> domain conflict errors
//
// Everything else is returned as-is and treated as an unexpected fault.
package repo
