// internal/launcher/launcher.go
package launcher

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"go-shape-canvas/internal/config"
)

// Sibling is a second instance of this program running in its own process.
type Sibling struct {
	Instance config.Instance
	cmd      *exec.Cmd
}

// Command builds the command that runs exe as inst. args are passed through
// untouched; the instance is selected through config.InstanceEnv.
func Command(exe string, args []string, inst config.Instance, env []string) *exec.Cmd {
	cmd := exec.Command(exe, args...)
	cmd.Env = withInstance(env, inst)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd
}

// Start re-executes the running binary as inst with the current arguments.
func Start(inst config.Instance) (*Sibling, error) {
	exe, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("launcher: locate executable: %w", err)
	}
	return StartExecutable(exe, os.Args[1:], inst)
}

// StartExecutable starts exe as inst.
func StartExecutable(exe string, args []string, inst config.Instance) (*Sibling, error) {
	cmd := Command(exe, args, inst, os.Environ())
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("launcher: start %s: %w", inst.AppID, err)
	}
	return &Sibling{Instance: inst, cmd: cmd}, nil
}

func (s *Sibling) Pid() int {
	return s.cmd.Process.Pid
}

// Wait blocks until the sibling exits and returns its exit status. A non-zero
// status is not an error; err is set only when the status cannot be read.
func (s *Sibling) Wait() (int, error) {
	err := s.cmd.Wait()
	var exitErr *exec.ExitError
	switch {
	case err == nil:
		return 0, nil
	case errors.As(err, &exitErr):
		return exitErr.ExitCode(), nil
	}
	return -1, fmt.Errorf("launcher: wait %s: %w", s.Instance.AppID, err)
}

func withInstance(env []string, inst config.Instance) []string {
	prefix := config.InstanceEnv + "="
	out := make([]string, 0, len(env)+1)
	for _, kv := range env {
		if !strings.HasPrefix(kv, prefix) {
			out = append(out, kv)
		}
	}
	return append(out, prefix+inst.Mode.String())
}
