package shell

import (
	"fmt"
	"os/exec"
	"runtime"
	"strings"

	"github.com/go-cmd/cmd"
)

var commandNameWithGOOS = map[string]string{
	"windows": "cmd.exe",
	"linux":   "bash",
}

var commandArgsWithGOOS = map[string][]string{
	"windows": {"/C"},
	"linux":   {"-c"},
}

func commandName(os_ string) string {
	value, ok := commandNameWithGOOS[os_]
	if !ok {
		value = "bash"
	}
	return value
}

func commandArgs(os_ string) []string {
	value, ok := commandArgsWithGOOS[os_]
	if !ok {
		value = []string{}
	}
	return value
}

// ExecV1 执行一条shell命令并等待其退出.
func ExecV1(format string, formatArgs ...any) (returnCode int, out, errOut string) {
	args := make([]string, 0)
	args = append(args, commandArgs(runtime.GOOS)...)
	args = append(args, fmt.Sprintf(format, formatArgs...))

	c := cmd.NewCmd(commandName(runtime.GOOS), args...)
	status := <-c.Start()
	returnCode = status.Exit
	if len(status.Stdout) != 0 {
		out = strings.Join(status.Stdout, "\n")
	}
	if len(status.Stderr) != 0 {
		errOut = strings.Join(status.Stderr, "\n")
	}
	return returnCode, out, errOut
}

// Available 判断指定的系统命令是否可用.
func Available(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}
