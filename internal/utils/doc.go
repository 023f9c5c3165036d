// Package utils provides terminal helpers shared by walkpwd commands.
//
//   - ReadPassphrase: reads a passphrase from the terminal without echo
//   - ResolvePassphrase: prefers an environment variable, then prompts
//   - IsTerminal: checks whether stdin is a terminal
package utils
