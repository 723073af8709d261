// internal/launch/launcher.go

package launch

import (
	"os/exec"

	"github.com/sirupsen/logrus"

	"github.com/vuul/spackle-ssh/internal/apperr"
)

// ProcessHandle identifies a spawned terminal process. The process is
// fully detached; the handle is informational only.
type ProcessHandle struct {
	Pid int
}

// Launch spawns the plan's executable as a detached process and
// returns immediately. Output is discarded and the child is released,
// so the caller carries no lifecycle responsibility beyond what the OS
// provides for detached children.
func Launch(plan Plan) (*ProcessHandle, error) {
	path, err := exec.LookPath(plan.Executable)
	if err != nil {
		return nil, apperr.New(apperr.Launch, "executable not found: "+plan.Executable, err)
	}

	cmd := exec.Command(path, plan.Args...)
	cmd.SysProcAttr = detachedSysProcAttr()

	if err := cmd.Start(); err != nil {
		return nil, apperr.New(apperr.Launch, "failed to launch "+plan.Executable, err)
	}
	handle := &ProcessHandle{Pid: cmd.Process.Pid}
	if err := cmd.Process.Release(); err != nil {
		logrus.WithError(err).Debug("release of detached child failed")
	}
	logrus.WithFields(logrus.Fields{
		"executable": path,
		"pid":        handle.Pid,
		"strategy":   plan.Strategy,
	}).Debug("terminal launched")
	return handle, nil
}
