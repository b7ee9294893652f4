// Package auth holds the credential and token primitives of the server:
// the password vault that produces and checks stored digests, the HS256
// token codec that carries session claims, and the failure taxonomy that
// every protected route uses to turn an authentication outcome into an
// HTTP status.
package auth
