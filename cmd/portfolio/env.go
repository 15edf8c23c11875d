package main

import (
	"context"
	"io"
	"os"
	"time"
)

// Environment holds injectable dependencies for testability.
type Environment struct {
	Now    func() time.Time
	Stdout io.Writer
	Stderr io.Writer

	// NotifyContext derives the context that stops "serve".
	NotifyContext func(context.Context) (context.Context, context.CancelFunc)

	// Context is the parent of NotifyContext. Nil means context.Background.
	Context context.Context
}

func (e *Environment) context() context.Context {
	if e.Context != nil {
		return e.Context
	}
	return context.Background()
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	return &Environment{
		Now:           time.Now,
		Stdout:        os.Stdout,
		Stderr:        os.Stderr,
		NotifyContext: notifyContext,
	}
}
