// Package clipboard delivers text to the user's clipboard through an
// ordered chain of strategies.
//
// No single process-level primitive reaches the clipboard everywhere, so
// the chain inspects the environment and tries, in order:
//
//  1. wl-copy, when WAYLAND_DISPLAY is set
//  2. xclip, then xsel, when DISPLAY is set outside Wayland
//  3. pbcopy, on macOS with neither display variable
//  4. github.com/atotto/clipboard
//
// A missing helper binary or a helper that fails is skipped. When every
// strategy fails, Deliver returns errors.ErrClipboardUnavailable.
package clipboard
