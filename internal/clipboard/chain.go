package clipboard

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime"

	kerrors "github.com/walkpwd/walkpwd/internal/errors"
)

const (
	// WaylandDisplayEnv signals a Wayland session.
	WaylandDisplayEnv = "WAYLAND_DISPLAY"

	// X11DisplayEnv signals an X11 session.
	X11DisplayEnv = "DISPLAY"
)

// Env is the part of the process environment strategies are selected by.
type Env struct {
	LookupEnv func(key string) (string, bool)
	GOOS      string
}

// SystemEnv returns the environment of the running process.
func SystemEnv() Env {
	return Env{LookupEnv: os.LookupEnv, GOOS: runtime.GOOS}
}

// Has reports whether key is set, even to an empty value.
func (e Env) Has(key string) bool {
	if e.LookupEnv == nil {
		return false
	}
	_, ok := e.LookupEnv(key)
	return ok
}

// Wayland reports a Wayland display.
func (e Env) Wayland() bool {
	return e.Has(WaylandDisplayEnv)
}

// X11 reports an X11 display in a session that is not Wayland.
func (e Env) X11() bool {
	return !e.Wayland() && e.Has(X11DisplayEnv)
}

// Strategy is one way of putting text on the clipboard.
type Strategy interface {
	Name() string
	Applicable(env Env) bool
	Deliver(ctx context.Context, text string) error
}

// Chain tries strategies in order and stops at the first that succeeds.
type Chain struct {
	Strategies []Strategy
	Env        Env

	// OnAttempt, if set, is called after each attempted strategy.
	OnAttempt func(name string, err error)
}

// Deliver puts text on the clipboard and returns the name of the strategy
// that did it. When every applicable strategy fails, the returned error
// wraps ErrClipboardUnavailable and each attempt's error.
func (c *Chain) Deliver(ctx context.Context, text string) (string, error) {
	var failures []error
	for _, s := range c.Strategies {
		if !s.Applicable(c.Env) {
			continue
		}
		err := s.Deliver(ctx, text)
		if c.OnAttempt != nil {
			c.OnAttempt(s.Name(), err)
		}
		if err == nil {
			return s.Name(), nil
		}
		failures = append(failures, fmt.Errorf("%s: %w", s.Name(), err))
	}
	return "", errors.Join(append([]error{kerrors.ErrClipboardUnavailable}, failures...)...)
}

// Applicable returns the names of strategies that would be attempted, in order.
func (c *Chain) Applicable() []string {
	var names []string
	for _, s := range c.Strategies {
		if s.Applicable(c.Env) {
			names = append(names, s.Name())
		}
	}
	return names
}
