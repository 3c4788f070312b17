// Package cli provides the tokenkeeper command-line client.
//
// It wires configuration, the local session store and the auth service.
// Given a command on the command line it runs that command once; without
// one it starts an interactive REPL.
//
// Commands:
//   - register / login: prompt for credentials and store the session
//   - refresh: rotate the stored token pair
//   - revoke [token]: revoke a refresh token, the stored one by default
//   - token: print the current access token
//   - status: show who is logged in
//   - logout: revoke the stored refresh token and forget the session
package cli
