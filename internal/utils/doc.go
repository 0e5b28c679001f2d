// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes password hashing, JWT token issuing and verification,
// HTTP response writing, HTTP client initialization and trace id generation.
package utils
