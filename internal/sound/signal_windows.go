//go:build windows

package sound

import (
	"errors"
	"os"
)

var errNoSuspend = errors.New("pausing narration is not supported on windows")

func suspend(*os.Process) error { return errNoSuspend }

func resume(*os.Process) error { return errNoSuspend }
