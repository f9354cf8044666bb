// Package domain contains shared domain types used across entity sub-packages.
// Entity-specific types live in sub-packages (domain/todo). This root package
// holds the sentinel errors every layer checks with errors.Is.
package domain
