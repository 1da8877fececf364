package cmd

import (
	"errors"
	"strings"
	"testing"

	"github.com/xdg/ansilog/internal/clog"
)

func TestSeverityCmd(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"one arg", []string{"debug", "hello"}, "[Debug]\thello"},
		{"two args", []string{"info", "Net", "hello"}, "[Net]\thello"},
		{"three args", []string{"warning", "Net", "Dial", "hello"}, "[Net]\t[Dial] hello"},
		{"four args", []string{"error", "Net", "Dial", "hello", "retry"}, "[Net]\t[Dial] (retry) hello"},
		{"special", []string{"special", "hello"}, "[Special]\thello"},
		{"warn alias", []string{"warn", "hello"}, "[Warning]\thello"},
		{"err alias", []string{"err", "hello"}, "[Error]\thello"},
		{"bound system", []string{"--system", "Main", "info", "hello"}, "[Main]\thello"},
		{"bound system two args", []string{"--system", "Main", "info", "Comp", "hello"}, "[Main]\t[Comp] hello"},
		{"bound component", []string{"--component", "Worker", "info", "hello"}, "[Info]\t[Worker] hello"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)

			if err := env.run("", tt.args...); err != nil {
				t.Fatalf("run error = %v", err)
			}

			got := lines(env.stdout.String())
			if len(got) != 1 {
				t.Fatalf("got %d lines, want 1: %q", len(got), env.stdout.String())
			}
			if !linePattern.MatchString(got[0]) {
				t.Errorf("line %q does not start with a timestamp", got[0])
			}
			if !strings.HasSuffix(got[0], tt.want) {
				t.Errorf("line = %q, want suffix %q", got[0], tt.want)
			}
		})
	}
}

func TestSeverityCmd_ArgCount(t *testing.T) {
	for _, args := range [][]string{
		{"info"},
		{"info", "a", "b", "c", "d", "e"},
	} {
		t.Run(strings.Join(args, " "), func(t *testing.T) {
			env := newTestEnv(t)

			err := env.run("", args...)

			var exitErr *ExitCodeError
			if !errors.As(err, &exitErr) {
				t.Fatalf("error = %v, want ExitCodeError", err)
			}
			if exitErr.Code != exitUsage {
				t.Errorf("Code = %d, want %d", exitErr.Code, exitUsage)
			}
			if !errors.Is(err, clog.ErrArgCount) {
				t.Errorf("error = %v, want ErrArgCount", err)
			}
			if env.stdout.Len() > 0 {
				t.Errorf("stdout = %q, want empty", env.stdout.String())
			}
		})
	}
}

func TestSeverityCmd_FilteredSkipsArgCount(t *testing.T) {
	env := newTestEnv(t)

	if err := env.run("", "--level", "error", "info"); err != nil {
		t.Errorf("filtered call error = %v, want nil", err)
	}
	if env.stdout.Len() > 0 || env.stderr.Len() > 0 {
		t.Errorf("filtered call wrote stdout=%q stderr=%q", env.stdout.String(), env.stderr.String())
	}
}

func TestPipeCmd(t *testing.T) {
	env := newTestEnv(t)

	if err := env.run("first\nsecond\n", "--system", "Build", "pipe", "--severity", "warning"); err != nil {
		t.Fatalf("run error = %v", err)
	}

	got := lines(env.stdout.String())
	if len(got) != 2 {
		t.Fatalf("got %d lines, want 2: %q", len(got), env.stdout.String())
	}
	if !strings.HasSuffix(got[0], "[Build]\tfirst") || !strings.HasSuffix(got[1], "[Build]\tsecond") {
		t.Errorf("lines = %q", got)
	}
}

func TestPipeCmd_LongLine(t *testing.T) {
	env := newTestEnv(t)
	long := strings.Repeat("x", 70000)

	if err := env.run(long+"\nsecond\n", "--no-color", "pipe"); err != nil {
		t.Fatalf("run error = %v", err)
	}

	got := lines(env.stdout.String())
	if len(got) != 2 {
		t.Fatalf("got %d lines, want 2", len(got))
	}
	if !strings.HasSuffix(got[0], "[Info]\t"+long) {
		t.Errorf("first line lost content, length %d", len(got[0]))
	}
	if !strings.HasSuffix(got[1], "[Info]\tsecond") {
		t.Errorf("second line = %q", got[1])
	}
}

func TestPipeCmd_LineEndings(t *testing.T) {
	env := newTestEnv(t)

	if err := env.run("crlf\r\n\nno newline", "pipe"); err != nil {
		t.Fatalf("run error = %v", err)
	}

	got := lines(env.stdout.String())
	want := []string{"[Info]\tcrlf", "[Info]\t", "[Info]\tno newline"}
	if len(got) != len(want) {
		t.Fatalf("got %d lines, want %d: %q", len(got), len(want), env.stdout.String())
	}
	for i := range want {
		if !strings.HasSuffix(got[i], want[i]) {
			t.Errorf("line %d = %q, want suffix %q", i, got[i], want[i])
		}
	}
}

func TestPipeCmd_KeepsTextAroundControlSequences(t *testing.T) {
	env := newTestEnv(t)

	if err := env.run("\x1b[2Khello mom\nprogress\x1b[1Adone\n", "pipe"); err != nil {
		t.Fatalf("run error = %v", err)
	}

	got := lines(env.stdout.String())
	if len(got) != 2 {
		t.Fatalf("got %d lines, want 2: %q", len(got), env.stdout.String())
	}
	if !strings.HasSuffix(got[0], "[Info]\thello mom") || !strings.HasSuffix(got[1], "[Info]\tprogressdone") {
		t.Errorf("lines = %q", got)
	}
}

func TestPipeCmd_DefaultSeverity(t *testing.T) {
	env := newTestEnv(t)

	if err := env.run("line", "pipe"); err != nil {
		t.Fatalf("run error = %v", err)
	}
	if !strings.HasSuffix(env.stdout.String(), "[Info]\tline\n") {
		t.Errorf("stdout = %q", env.stdout.String())
	}
}

func TestPipeCmd_StripsWithoutColor(t *testing.T) {
	env := newTestEnv(t)

	if err := env.run("\x1b[31mred\x1b[39m text\n", "pipe"); err != nil {
		t.Fatalf("run error = %v", err)
	}
	if strings.Contains(env.stdout.String(), "\x1b") {
		t.Errorf("stdout = %q, want escapes removed", env.stdout.String())
	}
	if !strings.HasSuffix(env.stdout.String(), "[Info]\tred text\n") {
		t.Errorf("stdout = %q", env.stdout.String())
	}
}

func TestPipeCmd_Filtered(t *testing.T) {
	env := newTestEnv(t)

	if err := env.run("a\nb\n", "--level", "error", "pipe", "-s", "debug"); err != nil {
		t.Fatalf("run error = %v", err)
	}
	if env.stdout.Len() > 0 {
		t.Errorf("stdout = %q, want empty", env.stdout.String())
	}
}

func TestPipeCmd_BadSeverity(t *testing.T) {
	env := newTestEnv(t)

	err := env.run("a\n", "pipe", "--severity", "loud")

	var exitErr *ExitCodeError
	if !errors.As(err, &exitErr) || exitErr.Code != exitUsage {
		t.Fatalf("error = %v, want exit code %d", err, exitUsage)
	}
	if !errors.Is(err, clog.ErrUnknownSeverity) {
		t.Errorf("error = %v, want ErrUnknownSeverity", err)
	}
}

func TestDemoCmd(t *testing.T) {
	env := newTestEnv(t)

	if err := env.run("", "demo"); err != nil {
		t.Fatalf("run error = %v", err)
	}

	got := lines(env.stdout.String())
	want := []string{
		"[Debug]\tthis is test",
		"[Main]\tthis is test",
		"[Main]\tthis is test",
		"[Main]\tthis is test",
		"[Main]\tthis is test",
		"[Main]\tthis is test",
		"[Main2]\t[MainFunc] this is test",
		"[Main]\t[MainFunc2] this is test",
		"[Main]\t[MainFunc3] (subtest) this is test",
		"[Main]\t[MainFunc] this is warning",
	}
	if len(got) != len(want) {
		t.Fatalf("got %d lines, want %d: %q", len(got), len(want), env.stdout.String())
	}
	for i := range want {
		if !strings.HasSuffix(got[i], want[i]) {
			t.Errorf("line %d = %q, want suffix %q", i, got[i], want[i])
		}
	}
}

func TestDemoCmd_Level(t *testing.T) {
	env := newTestEnv(t)

	if err := env.run("", "--level", "warning", "demo"); err != nil {
		t.Fatalf("run error = %v", err)
	}
	if n := len(lines(env.stdout.String())); n != 4 {
		t.Errorf("got %d lines, want 4: %q", n, env.stdout.String())
	}
}
