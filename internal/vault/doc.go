// Package vault persists named secrets in a single file under the vault
// directory and manages the vault's initialization marker.
//
// # On-disk Layout
//
//	<vault dir>/vault_initialized.flag   presence means "initialized"
//	<vault dir>/vault.json               [{"name": "...", "password": "..."}, ...]
//
// A missing vault.json is an empty vault. Content that does not parse as
// a record collection fails with errors.ErrSerialization and is never
// repaired automatically.
//
// # Persistence
//
// Store operations load the whole collection, mutate it in memory, and
// rewrite the file through a temp file and rename. Entry names are unique
// and matched exactly.
//
// # Sealing
//
// The default JSONCodec stores plaintext. SealedCodec wraps it with a
// passphrase-derived key (scrypt + NaCl secretbox) without changing the
// Entry contract; it is only used when enabled in the configuration.
package vault
