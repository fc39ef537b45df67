// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides credential checks and token generation utilities.

# Admin Password

Poll results are gated by a single admin password supplied through
configuration:

	err := auth.ValidateAdminPassword(supplied, cfg.AdminPassword)

Both values are SHA-256 hashed and compared with hmac.Equal, so timing does
not reveal the configured length. An empty configured password rejects
everything.

# Voter Tokens

Voter tokens are random 24-byte (192-bit) secrets:

	token, err := auth.GenerateVoterToken()

Tokens are URL-safe base64 encoded. Each token authorizes exactly one vote
across the whole system.

ValidateTokenFormat is applied when a token is registered through this
service. Voting treats tokens as opaque and only looks them up.
*/
package auth
