package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"
)

type fakeExec struct {
	loggedIn bool

	calls []string
	args  []string
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Register(ctx context.Context) error {
	f.calls = append(f.calls, "register")
	return nil
}
func (f *fakeExec) Login(ctx context.Context) error {
	f.calls = append(f.calls, "login")
	f.loggedIn = true
	return nil
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.calls = append(f.calls, "logout")
	f.loggedIn = false
	return nil
}
func (f *fakeExec) Home(ctx context.Context) error { f.calls = append(f.calls, "home"); return nil }
func (f *fakeExec) ShowPost(ctx context.Context, arg string) error {
	f.calls = append(f.calls, "post")
	f.args = append(f.args, arg)
	return nil
}
func (f *fakeExec) Join(ctx context.Context, arg string) error {
	f.calls = append(f.calls, "join")
	f.args = append(f.args, arg)
	return nil
}
func (f *fakeExec) Comment(ctx context.Context, arg string) error {
	f.calls = append(f.calls, "comment")
	f.args = append(f.args, arg)
	return nil
}
func (f *fakeExec) NewPost(ctx context.Context) error {
	f.calls = append(f.calls, "newpost")
	return nil
}
func (f *fakeExec) MyPosts(ctx context.Context) error {
	f.calls = append(f.calls, "myposts")
	return nil
}
func (f *fakeExec) Notifications(ctx context.Context) error {
	f.calls = append(f.calls, "notifications")
	return nil
}
func (f *fakeExec) Accept(ctx context.Context, arg string) error {
	f.calls = append(f.calls, "accept")
	f.args = append(f.args, arg)
	return nil
}
func (f *fakeExec) Reject(ctx context.Context, arg string) error {
	f.calls = append(f.calls, "reject")
	f.args = append(f.args, arg)
	return nil
}
func (f *fakeExec) Profile(ctx context.Context) error {
	f.calls = append(f.calls, "profile")
	return nil
}
func (f *fakeExec) Teams(ctx context.Context) error { f.calls = append(f.calls, "teams"); return nil }
func (f *fakeExec) ShowTeam(ctx context.Context, arg string) error {
	f.calls = append(f.calls, "team")
	f.args = append(f.args, arg)
	return nil
}
func (f *fakeExec) Courses(ctx context.Context) error {
	f.calls = append(f.calls, "courses")
	return nil
}
func (f *fakeExec) Messages(ctx context.Context) error {
	f.calls = append(f.calls, "messages")
	return nil
}
func (f *fakeExec) Search(ctx context.Context) error {
	f.calls = append(f.calls, "search")
	return nil
}

func TestRunREPL_LoginFlowAndCommands(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	input := strings.NewReader(strings.Join([]string{
		"help",
		"home",
		"login",
		"help",
		"post 7",
		"join 7",
		"notifications",
		"accept 10",
		"teams",
		"foobar",
		"exit",
	}, "\n"))

	exec := &fakeExec{loggedIn: false}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "status" }, sc)

	wantOrder := []string{"home", "login", "post", "join", "notifications", "accept", "teams"}
	if len(exec.calls) < len(wantOrder) {
		t.Fatalf("few calls: %+v", exec.calls)
	}
	idx := 0
	for _, c := range exec.calls {
		if idx < len(wantOrder) && c == wantOrder[idx] {
			idx++
		}
	}
	if idx != len(wantOrder) {
		t.Fatalf("commands order mismatch: got %v, want subseq %v", exec.calls, wantOrder)
	}

	wantArgs := []string{"7", "7", "10"}
	for i, want := range wantArgs {
		if i >= len(exec.args) || exec.args[i] != want {
			t.Fatalf("args mismatch: got %v, want %v", exec.args, wantArgs)
		}
	}
}

func TestRunREPL_UsageAndQuit(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	input := strings.NewReader("post\naccept\nteam\nquit\n")
	exec := &fakeExec{loggedIn: true}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "s" }, sc)

	if len(exec.calls) != 0 {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
}

func TestRunREPL_EOFExits(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	exec := &fakeExec{}
	sc := bufio.NewScanner(strings.NewReader(""))

	runREPL(context.Background(), exec, func() string { return "" }, sc)

	if len(exec.calls) != 0 {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
}
