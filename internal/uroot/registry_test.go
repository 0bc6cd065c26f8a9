// SPDX-License-Identifier: MPL-2.0

package uroot

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"
	"testing"

	"github.com/textutils/textutils/pkg/types"
)

type (
	// mockCommand is a test implementation of Command.
	mockCommand struct {
		name   string
		flags  []FlagInfo
		runFn  func(ctx context.Context, args []string) error
		called bool
		args   []string
	}

	// codedError carries an exit code the way the utilities' failure errors do.
	codedError struct {
		code types.ExitCode
	}
)

func (m *mockCommand) Name() string { return m.name }

func (m *mockCommand) SupportedFlags() []FlagInfo { return m.flags }

func (m *mockCommand) Run(ctx context.Context, args []string) error {
	m.called = true
	m.args = args
	if m.runFn != nil {
		return m.runFn(ctx, args)
	}
	return nil
}

func newMockCommand(name string) *mockCommand {
	return &mockCommand{name: name}
}

func (e *codedError) Error() string { return fmt.Sprintf("exit %d", e.code) }

func (e *codedError) ExitCode() types.ExitCode { return e.code }

func TestNewRegistry(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	if r == nil {
		t.Fatal("NewRegistry returned nil")
	}
	if len(r.commands) != 0 {
		t.Errorf("NewRegistry should create empty registry, got %d commands", len(r.commands))
	}
}

func TestRegistry_Register_PanicOnDuplicate(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	r.Register(newMockCommand("test"))

	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate registration")
		}
	}()

	r.Register(newMockCommand("test"))
}

func TestRegistry_Register_PanicOnEmptyName(t *testing.T) {
	t.Parallel()

	r := NewRegistry()

	defer func() {
		if recover() == nil {
			t.Error("expected panic on empty name registration")
		}
	}()

	r.Register(newMockCommand(""))
}

func TestRegistry_LookupAndNames(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	cmd := newMockCommand("sort")
	r.Register(newMockCommand("tr"))
	r.Register(cmd)
	r.Register(newMockCommand("head"))

	found, ok := r.Lookup("sort")
	if !ok || found != cmd {
		t.Error("Lookup should return the registered command")
	}
	if _, ok := r.Lookup("git"); ok {
		t.Error("Lookup should return false for unregistered command")
	}

	if got, want := r.Names(), []string{"head", "sort", "tr"}; !slices.Equal(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}
}

func TestRegistry_Run(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	cmd := newMockCommand("echo")
	r.Register(cmd)

	err := r.Run(t.Context(), "echo", []string{"echo", "hello", "world"})
	if err != nil {
		t.Errorf("Run returned unexpected error: %v", err)
	}
	if !cmd.called {
		t.Error("command was not called")
	}
	if !slices.Equal(cmd.args, []string{"echo", "hello", "world"}) {
		t.Errorf("command received wrong args: %v", cmd.args)
	}
}

func TestRegistry_Run_NotFound(t *testing.T) {
	t.Parallel()

	err := NewRegistry().Run(t.Context(), "nonexistent", []string{"nonexistent"})
	if err == nil {
		t.Fatal("Run should return error for unregistered command")
	}
	if !strings.Contains(err.Error(), "[uroot]") || !strings.Contains(err.Error(), "command not found") {
		t.Errorf("error = %q, want [uroot] prefix and 'command not found'", err)
	}
}

func TestRegistry_Run_CommandError(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	expectedErr := errors.New("[uroot] test: something went wrong")
	r.Register(&mockCommand{
		name: "test",
		runFn: func(context.Context, []string) error {
			return expectedErr
		},
	})

	if err := r.Run(t.Context(), "test", []string{"test"}); !errors.Is(err, expectedErr) {
		t.Errorf("Run should propagate command error, got: %v", err)
	}
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	for i := range 10 {
		r.Register(newMockCommand(fmt.Sprintf("cmd%d", i)))
	}

	done := make(chan bool)
	for range 10 {
		go func() {
			for range 100 {
				r.Lookup("cmd5")
				r.Names()
			}
			done <- true
		}()
	}

	for range 10 {
		<-done
	}
}

func TestBuildDefaultRegistry(t *testing.T) {
	t.Parallel()

	r := BuildDefaultRegistry()
	if got, want := r.Names(), []string{"cat", "grep"}; !slices.Equal(got, want) {
		t.Errorf("BuildDefaultRegistry names = %v, want %v", got, want)
	}
}

func TestHandlerContext_WithContext(t *testing.T) {
	t.Parallel()

	hc := &HandlerContext{
		Stdin:  strings.NewReader("input"),
		Stdout: &bytes.Buffer{},
		Stderr: &bytes.Buffer{},
		Dir:    "/test/dir",
	}

	retrieved := HandlerContextFrom(WithHandlerContext(t.Context(), hc))
	if retrieved != hc {
		t.Fatal("HandlerContextFrom should return the stored HandlerContext")
	}
	if env := retrieved.grepEnv(); env.Dir != "/test/dir" || env.Stdout != hc.Stdout {
		t.Errorf("grepEnv() = %+v, want handler streams and dir", env)
	}
	if env := retrieved.catEnv(); env.Dir != "/test/dir" || env.Stderr != hc.Stderr {
		t.Errorf("catEnv() = %+v, want handler streams and dir", env)
	}
}

func TestExitCodeOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want types.ExitCode
	}{
		{name: "nil", err: nil, want: types.ExitSuccess},
		{name: "plain error", err: errors.New("boom"), want: types.ExitFailure},
		{name: "coded", err: &codedError{code: 3}, want: 3},
		{name: "wrapped coded", err: wrapError("grep", &codedError{code: 2}), want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := ExitCodeOf(tt.err); got != tt.want {
				t.Errorf("ExitCodeOf() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestRegistry_ExecHandler(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	where := &mockCommand{
		name: "where",
		runFn: func(ctx context.Context, _ []string) error {
			hc := HandlerContextFrom(ctx)
			_, err := fmt.Fprintln(hc.Stdout, hc.Dir)
			return err
		},
	}
	r := NewRegistry()
	r.Register(where)
	r.Register(&mockCommand{
		name: "fail",
		runFn: func(context.Context, []string) error {
			return wrapError("fail", &codedError{code: 4})
		},
	})

	tests := []struct {
		name       string
		script     string
		wantCode   types.ExitCode
		wantStdout string
	}{
		{name: "registered command uses interpreter streams", script: "where", wantStdout: dir + "\n"},
		{name: "failure becomes exit status", script: "fail x", wantCode: 4},
		{name: "status visible to the script", script: "fail; echo $?", wantStdout: "4\n"},
		{name: "unknown command falls back", script: "git status", wantCode: 127},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var stdout bytes.Buffer
			code, err := RunScript(t.Context(), tt.script, ScriptOptions{
				Dir:      dir,
				Env:      []string{"PATH="},
				Stdout:   &stdout,
				Registry: r,
			})
			if err != nil {
				t.Fatalf("RunScript() error = %v", err)
			}
			if code != tt.wantCode {
				t.Errorf("exit code = %d, want %d", code, tt.wantCode)
			}
			if stdout.String() != tt.wantStdout {
				t.Errorf("stdout = %q, want %q", stdout.String(), tt.wantStdout)
			}
		})
	}
}

func TestHandlerContextFrom_ProcessStreams(t *testing.T) {
	t.Parallel()

	hc := HandlerContextFrom(t.Context())
	if hc.Stdin != os.Stdin || hc.Stdout != os.Stdout || hc.Stderr != os.Stderr {
		t.Errorf("HandlerContextFrom() = %+v, want the process streams", hc)
	}
	if hc.Dir != "" {
		t.Errorf("Dir = %q, want empty", hc.Dir)
	}
}

func TestRegistry_Run_WithoutHandlerContext(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	r.Register(&mockCommand{
		name: "streams",
		runFn: func(ctx context.Context, _ []string) error {
			if HandlerContextFrom(ctx).Stdout != os.Stdout {
				return errors.New("stdout is not the process stdout")
			}
			return nil
		},
	})
	if err := r.Run(t.Context(), "streams", []string{"streams"}); err != nil {
		t.Errorf("Run() error = %v", err)
	}
}
