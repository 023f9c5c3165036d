// Package workflows provides high-level orchestration for walkpwd commands.
//
// Workflows coordinate the vault, generator and clipboard packages to
// implement complete user-facing features. Each workflow handles a single
// command's business logic, independent of CLI concerns like flag parsing,
// spinners, and output formatting.
//
// # Design Philosophy
//
// The cmd/ package should be a thin layer that:
//   - Parses command-line flags and arguments
//   - Calls the appropriate workflow function
//   - Formats the result for display
//
// Workflows handle everything else:
//   - Resolving the vault directory from settings
//   - Validating flag combinations before any storage access
//   - Performing the core operation
//   - Delivering secrets to the clipboard
//
// # Available Workflows
//
//   - Init: Prepares the vault directory, marker and record file
//   - Add: Stores a supplied or generated password under a new name
//   - Get: Looks up a password and copies it to the clipboard
//   - List: Returns entry names in storage order
//   - Delete: Removes an entry by name
//   - Generate: Produces a password without touching the vault
//
// # Error Handling
//
// Workflows return typed errors from the internal/errors package, allowing
// the CLI layer to provide appropriate user-facing messages without string
// matching:
//
//	result, err := workflows.Add(ctx, opts)
//	if errors.Is(err, kerrors.ErrDuplicateEntry) {
//	    // Show user-friendly duplicate message
//	}
//
// A missing entry is not an error: Get and Delete report it through their
// result so the command can still exit successfully.
//
// # Context Usage
//
// All workflow functions accept a context.Context as their first parameter.
// Clipboard delivery honours its cancellation.
package workflows
