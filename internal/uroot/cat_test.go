// SPDX-License-Identifier: MPL-2.0

package uroot

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/textutils/textutils/internal/testutil"
	"github.com/textutils/textutils/pkg/types"
)

func TestCatCommand_Name(t *testing.T) {
	t.Parallel()

	if got := newCatCommand().Name(); got != "cat" {
		t.Errorf("Name() = %q, want %q", got, "cat")
	}
}

func TestCatCommand_SupportedFlags(t *testing.T) {
	t.Parallel()

	var names string
	for _, f := range newCatCommand().SupportedFlags() {
		if f.TakesValue() {
			t.Errorf("-%s should not take a value", f.Name)
		}
		names += f.Name
	}
	if names != "bnsEeTtvA" {
		t.Errorf("flag names = %q, want %q", names, "bnsEeTtvA")
	}
}

func TestCatCommand_Run(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	testutil.MustWriteFile(t, filepath.Join(tmpDir, "a.txt"), "x\ty\n")

	var stdout, stderr bytes.Buffer
	ctx := WithHandlerContext(t.Context(), &HandlerContext{Stdout: &stdout, Stderr: &stderr, Dir: tmpDir})

	if err := newCatCommand().Run(ctx, []string{"cat", "-A", "a.txt"}); err != nil {
		t.Fatalf("Run() returned error: %v", err)
	}
	if want := "x^Iy$\n"; stdout.String() != want {
		t.Errorf("stdout = %q, want %q", stdout.String(), want)
	}
}

func TestCatCommand_Run_NoFiles(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer
	ctx := WithHandlerContext(t.Context(), &HandlerContext{Stdout: &stdout, Stderr: &stderr})

	err := newCatCommand().Run(ctx, []string{"cat"})
	if got := ExitCodeOf(err); got != types.ExitFailure {
		t.Errorf("ExitCodeOf() = %d, want %d", got, types.ExitFailure)
	}
	if want := "cat: No files specified\n"; stderr.String() != want {
		t.Errorf("stderr = %q, want %q", stderr.String(), want)
	}
}
