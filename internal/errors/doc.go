// Package errors provides typed error values for walkpwd.
//
// Callers handle specific conditions with errors.Is() rather than string
// matching, and decide from the sentinel whether an outcome aborts the
// command or is only reported.
//
// # Error Categories
//
//   - Lifecycle errors: ErrInitialization, ErrVaultNotInitialized
//   - Store errors: ErrDuplicateEntry, ErrSerialization, ErrEntryNotFound
//   - Generation errors: ErrGeneration, ErrConflictingPasswordFlags
//   - Clipboard errors: ErrClipboardUnavailable
//   - Sealing errors: ErrSealed, ErrPassphraseRequired, ErrDecryptFailed
//
// ErrEntryNotFound is the one soft outcome: get and delete report it to the
// user and the process still exits successfully.
//
// # Usage
//
// Wrap errors with additional context:
//
//	return "", fmt.Errorf("adding %q: %w", name, errors.ErrDuplicateEntry)
//
// Handle errors in the CLI layer:
//
//	if errors.Is(err, kerrors.ErrDuplicateEntry) {
//	    // Show user-friendly message
//	}
package errors
