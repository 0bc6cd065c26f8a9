// SPDX-License-Identifier: MPL-2.0

package uroot

import (
	"context"
	"io"
	"os"

	"mvdan.cc/sh/v3/interp"

	"github.com/textutils/textutils/internal/cat"
	"github.com/textutils/textutils/internal/grep"
)

type (
	// HandlerContext carries the streams and working directory a utility
	// runs with.
	HandlerContext struct {
		Stdin  io.Reader
		Stdout io.Writer
		Stderr io.Writer
		// Dir resolves relative operands. Empty means the process directory.
		Dir string
	}

	handlerContextKey struct{}
)

// WithHandlerContext stores hc in ctx for the utility about to run.
func WithHandlerContext(ctx context.Context, hc *HandlerContext) context.Context {
	return context.WithValue(ctx, handlerContextKey{}, hc)
}

// HandlerContextFrom returns the HandlerContext stored by WithHandlerContext.
// Without one, the utility runs on the process streams in the process
// directory.
func HandlerContextFrom(ctx context.Context) *HandlerContext {
	if hc, ok := ctx.Value(handlerContextKey{}).(*HandlerContext); ok && hc != nil {
		return hc
	}
	return &HandlerContext{Stdin: os.Stdin, Stdout: os.Stdout, Stderr: os.Stderr}
}

// interpHandlerContext copies the streams and directory of the running
// interpreter, so redirections and cd apply to the utility. ctx must come
// from an interp exec handler.
func interpHandlerContext(ctx context.Context) *HandlerContext {
	ihc := interp.HandlerCtx(ctx)
	return &HandlerContext{
		Stdin:  ihc.Stdin,
		Stdout: ihc.Stdout,
		Stderr: ihc.Stderr,
		Dir:    ihc.Dir,
	}
}

func (hc *HandlerContext) grepEnv() grep.Env {
	return grep.Env{Stdout: hc.Stdout, Stderr: hc.Stderr, Dir: hc.Dir}
}

func (hc *HandlerContext) catEnv() cat.Env {
	return cat.Env{Stdout: hc.Stdout, Stderr: hc.Stderr, Dir: hc.Dir}
}
