package launcher

import (
	"os"
	"strconv"
	"testing"

	"go-shape-canvas/internal/config"
)

const helperEnv = "LAUNCHER_TEST_HELPER"

// TestHelperProcess is not a real test. It is the child started by the tests
// below and exits with the status they ask for.
func TestHelperProcess(t *testing.T) {
	code := os.Getenv(helperEnv)
	if code == "" {
		t.Skip("helper process only")
	}
	if got := os.Getenv(config.InstanceEnv); got != config.ShapeCircle.String() {
		os.Exit(99)
	}
	n, _ := strconv.Atoi(code)
	os.Exit(n)
}

func TestCommandSetsInstance(t *testing.T) {
	env := []string{"HOME=/home/x", config.InstanceEnv + "=rectangle", "DISPLAY=:1"}
	cmd := Command("/bin/shapes", []string{"--display", ":1"}, config.CircleInstance, env)

	if cmd.Path != "/bin/shapes" {
		t.Errorf("Path = %q", cmd.Path)
	}
	if len(cmd.Args) != 3 || cmd.Args[1] != "--display" || cmd.Args[2] != ":1" {
		t.Errorf("Args = %q, want argv passed through", cmd.Args)
	}
	want := []string{"HOME=/home/x", "DISPLAY=:1", config.InstanceEnv + "=circle"}
	if len(cmd.Env) != len(want) {
		t.Fatalf("Env = %q, want %q", cmd.Env, want)
	}
	for i := range want {
		if cmd.Env[i] != want[i] {
			t.Errorf("Env[%d] = %q, want %q", i, cmd.Env[i], want[i])
		}
	}
}

func TestCommandDoesNotTouchCallerEnv(t *testing.T) {
	env := []string{config.InstanceEnv + "=rectangle"}
	Command("/bin/shapes", nil, config.CircleInstance, env)
	if env[0] != config.InstanceEnv+"=rectangle" {
		t.Errorf("caller env modified: %q", env)
	}
}

func TestSiblingExitStatus(t *testing.T) {
	for _, code := range []int{0, 3} {
		t.Setenv(helperEnv, strconv.Itoa(code))
		s, err := StartExecutable(os.Args[0], []string{"-test.run=^TestHelperProcess$"}, config.CircleInstance)
		if err != nil {
			t.Fatal(err)
		}
		if s.Pid() <= 0 {
			t.Errorf("Pid() = %d", s.Pid())
		}
		got, err := s.Wait()
		if err != nil {
			t.Fatal(err)
		}
		if got != code {
			t.Errorf("exit status = %d, want %d", got, code)
		}
	}
}

func TestStartMissingExecutable(t *testing.T) {
	if _, err := StartExecutable("/nonexistent/shapes", nil, config.CircleInstance); err == nil {
		t.Error("want error for a missing executable")
	}
}
