// Package client contains the client-side building blocks of the
// tokenkeeper CLI.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface):
//     Register, Login, Refresh and Revoke.
//  2. A gRPC implementation (see GRPCClient) that keeps the current token
//     pair, injects the access token on protected calls, rotates the pair
//     once when the server rejects it, and maps status codes to sentinel
//     errors.
//  3. Local persistence bootstrap (InitDatabase, RunMigrations) wiring an
//     SQLite database with embedded goose migrations.
//
// # Error Handling
//
// Conditions are exposed as sentinel errors for errors.Is: ErrUnavailable,
// ErrUnauthorized, ErrNotFound, ErrAlreadyExists, ErrInvalidArgument and
// ErrNotLoggedIn.
package client
