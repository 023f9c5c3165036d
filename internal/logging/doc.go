// Package logger provides leveled console logging for walkpwd commands.
//
// Verbosity is controlled by the root command's flags:
//
//   - --verbose: shows info and warning messages
//   - --debug: shows everything, including debug details and errors
//
// Without flags only user-facing warnings are shown.
//
// # Log Methods
//
//	Logger.Infof()          // Shown with --verbose or --debug
//	Logger.Debugf()         // Shown only with --debug
//	Logger.Warnf()          // Shown with --verbose or --debug
//	Logger.WarnfUser()      // Always shown
//	Logger.Errorf()         // Shown with --debug
//	Logger.ErrorfAndReturn() // Errorf, then returns the message as an error
//
// Info and debug lines go to stdout unless Out is set. Commands whose stdout
// carries a secret point Out at stderr so piping stays clean.
//
// Secrets are never passed to the logger.
package logger
