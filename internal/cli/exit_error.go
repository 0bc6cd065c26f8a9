// SPDX-License-Identifier: MPL-2.0

package cli

import (
	"fmt"

	"github.com/textutils/textutils/pkg/types"
)

// ExitError is returned by runUtility when grep or cat ends with a failure
// status. The utility has already written its own diagnostics, so fang's
// error handler stays silent and execute only reads the code back.
type ExitError struct {
	Utility string
	Code    types.ExitCode
	Err     error
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: exit status %s", e.Utility, e.Code)
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error { return e.Err }

// ExitCode implements uroot.ExitCoder.
func (e *ExitError) ExitCode() types.ExitCode { return e.Code }
