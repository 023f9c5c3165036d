package errors

import "errors"

// Lifecycle errors indicate the vault directory or marker could not be prepared.
var (
	// ErrInitialization indicates the vault directory, marker or record file could not be created.
	ErrInitialization = errors.New("vault initialization failed")

	// ErrVaultNotInitialized indicates a command ran before `walkpwd init`.
	ErrVaultNotInitialized = errors.New("vault is not initialized")
)

// Store errors indicate problems with the persisted record set.
var (
	// ErrDuplicateEntry indicates an entry with the same name already exists.
	ErrDuplicateEntry = errors.New("password entry already exists")

	// ErrSerialization indicates the vault file does not parse as a record collection.
	ErrSerialization = errors.New("vault file is malformed")

	// ErrEntryNotFound indicates no entry matched the requested name.
	// Callers treat it as an informational outcome, not a failure.
	ErrEntryNotFound = errors.New("password entry not found")
)

// Generation errors indicate a secret could not be produced.
var (
	// ErrGeneration indicates the generator policy cannot produce any character.
	ErrGeneration = errors.New("cannot generate password")

	// ErrConflictingPasswordFlags indicates an explicit password was combined with generator options.
	ErrConflictingPasswordFlags = errors.New("an explicit password cannot be combined with --length or --symbols")
)

// Clipboard errors.
var (
	// ErrClipboardUnavailable indicates every clipboard strategy failed.
	ErrClipboardUnavailable = errors.New("no clipboard method available")
)

// Sealing errors indicate failures of the optional at-rest sealing codec.
var (
	// ErrSealed indicates the vault file is sealed but the store is configured for plaintext.
	ErrSealed = errors.New("vault file is sealed")

	// ErrPassphraseRequired indicates a sealed vault was opened without a passphrase.
	ErrPassphraseRequired = errors.New("passphrase required to open sealed vault")

	// ErrDecryptFailed indicates the sealed vault could not be opened with the given passphrase.
	ErrDecryptFailed = errors.New("failed to unseal vault")
)
