// Package domain defines the core value types of tokgen.
//
// Domain types are pure values without IO dependencies:
//
//   - TokenKind: token purposes with their prefix and entropy size
//   - KeySpec: key algorithms and their required key lengths
//   - ID: ULID correlation identifiers
//   - Errors: coded domain errors and the mapping from securerand errors
package domain
