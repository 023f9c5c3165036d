package clipboard

import "time"

// DefaultSettle is how long a helper is given to fail after its input closes.
const DefaultSettle = 100 * time.Millisecond

// Options tunes the default chain.
type Options struct {
	Settle    time.Duration
	AwaitExit bool

	// DisableHelpers drops every helper process and keeps only the library.
	DisableHelpers bool
}

// DefaultStrategies returns the platform fallback order:
// wl-copy on Wayland; xclip then xsel on X11; pbcopy on macOS without a
// display server; the clipboard library last.
func DefaultStrategies(opts Options) []Strategy {
	library := &LibraryStrategy{}
	if opts.DisableHelpers {
		return []Strategy{library}
	}

	helper := func(when func(Env) bool, command string, args ...string) *CommandStrategy {
		return &CommandStrategy{
			Command:   command,
			Args:      args,
			When:      when,
			Settle:    opts.Settle,
			AwaitExit: opts.AwaitExit,
		}
	}

	return []Strategy{
		helper(Env.Wayland, "wl-copy"),
		helper(Env.X11, "xclip", "-selection", "clipboard"),
		helper(Env.X11, "xsel", "--clipboard", "--input"),
		helper(nativeMac, "pbcopy"),
		library,
	}
}

// DefaultChain returns DefaultStrategies bound to the process environment.
func DefaultChain(opts Options) *Chain {
	return &Chain{
		Strategies: DefaultStrategies(opts),
		Env:        SystemEnv(),
	}
}

func nativeMac(e Env) bool {
	return !e.Wayland() && !e.X11() && e.GOOS == "darwin"
}
