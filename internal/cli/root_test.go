// SPDX-License-Identifier: MPL-2.0

package cli

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/textutils/textutils/internal/testutil"
	"github.com/textutils/textutils/internal/uroot"
	"github.com/textutils/textutils/pkg/types"
)

func execGrep(t *testing.T, args ...string) (types.ExitCode, string, string) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	code := execute(t.Context(), newGrepCommand(streams{in: strings.NewReader(""), out: &stdout, err: &stderr}), args)
	return code, stdout.String(), stderr.String()
}

func execCat(t *testing.T, args ...string) (types.ExitCode, string, string) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	code := execute(t.Context(), newCatCommand(streams{in: strings.NewReader(""), out: &stdout, err: &stderr}), args)
	return code, stdout.String(), stderr.String()
}

func fixture(t *testing.T, name, content string) string {
	t.Helper()

	return testutil.MustWriteFile(t, filepath.Join(t.TempDir(), name), content)
}

func TestGrepCommand_PassesRawArguments(t *testing.T) {
	t.Parallel()

	path := fixture(t, "in.txt", "Alpha\nbeta\n")

	// -h and -i are grep flags, not cobra's help flag.
	code, stdout, stderr := execGrep(t, "-hi", "alpha", path)
	if code != types.ExitSuccess {
		t.Fatalf("exit code = %d, stderr %q", code, stderr)
	}
	if stdout != "Alpha\n" {
		t.Errorf("stdout = %q, want %q", stdout, "Alpha\n")
	}
}

func TestGrepCommand_FailureIsSilentBeyondDiagnostics(t *testing.T) {
	t.Parallel()

	code, stdout, stderr := execGrep(t, "-x", "foo", "file.txt")
	if code != types.ExitFailure {
		t.Errorf("exit code = %d, want %d", code, types.ExitFailure)
	}
	if stdout != "" {
		t.Errorf("stdout = %q, want empty", stdout)
	}
	if want := "grep: invalid option -- x\n"; stderr != want {
		t.Errorf("stderr = %q, want %q", stderr, want)
	}
}

func TestGrepCommand_OperandsNamedLikeSubcommands(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	for _, name := range []string{"completion", "man"} {
		testutil.MustWriteFile(t, filepath.Join(dir, name), "needle\n")
	}

	code, stdout, stderr := execGrep(t, "needle", filepath.Join(dir, "completion"), filepath.Join(dir, "man"))
	if code != types.ExitSuccess {
		t.Fatalf("exit code = %d, stderr %q", code, stderr)
	}
	if strings.Count(stdout, "needle") != 2 {
		t.Errorf("stdout = %q, want both files to match", stdout)
	}
}

func TestCatCommand(t *testing.T) {
	t.Parallel()

	path := fixture(t, "in.txt", "a\n\nb\n")

	code, stdout, _ := execCat(t, "-b", path)
	if code != types.ExitSuccess {
		t.Fatalf("exit code = %d", code)
	}
	if want := "     1\ta\n\n     2\tb\n"; stdout != want {
		t.Errorf("stdout = %q, want %q", stdout, want)
	}

	code, _, stderr := execCat(t, "-x", path)
	if code != types.ExitFailure {
		t.Errorf("exit code = %d, want %d", code, types.ExitFailure)
	}
	if !strings.HasPrefix(stderr, "cat: invalid option -- x\n") {
		t.Errorf("stderr = %q, want invalid option diagnostic", stderr)
	}
}

func TestHelp(t *testing.T) {
	t.Parallel()

	code, stdout, _ := execCat(t, "--help")
	if code != types.ExitSuccess {
		t.Fatalf("exit code = %d", code)
	}
	if !strings.Contains(stdout, "squeeze repeated blank lines") {
		t.Errorf("help output = %q, want the option table", stdout)
	}

	code, stdout, _ = execGrep(t, "--help")
	if code != types.ExitSuccess {
		t.Fatalf("exit code = %d", code)
	}
	for _, want := range []string{"-e PATTERN", "-f FILE", "print only the matched parts of lines"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("help output missing %q", want)
		}
	}
}

func TestExitError(t *testing.T) {
	t.Parallel()

	cause := errors.New("boom")
	err := &ExitError{Code: 2, Err: cause}
	if err.Error() != "boom" {
		t.Errorf("Error() = %q, want %q", err.Error(), "boom")
	}
	if !errors.Is(err, cause) {
		t.Error("ExitError should unwrap to its cause")
	}
	if got := uroot.ExitCodeOf(fmt.Errorf("wrapped: %w", err)); got != 2 {
		t.Errorf("ExitCodeOf() = %d, want 2", got)
	}
	if got := (&ExitError{Utility: "cat", Code: 3}).Error(); got != "cat: exit status 3" {
		t.Errorf("Error() = %q, want %q", got, "cat: exit status 3")
	}
}
