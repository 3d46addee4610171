package testutil

import (
	"context"
	"os"
	"sync"

	"github.com/arthur-debert/dotboot/pkg/runner"
)

// GitCall records one invocation made against FakeGit
type GitCall struct {
	Op  string
	URL string
	Dir string
	Key string
}

// FakeGit is a fake git client. Each operation delegates to its Func field
// when set; otherwise Clone creates dir (so later existence checks see a
// working copy) and the other operations succeed.
type FakeGit struct {
	CloneFunc          func(ctx context.Context, url, dir string) error
	SyncSubmodulesFunc func(ctx context.Context, dir string) error
	ConfigValueFunc    func(ctx context.Context, key string) (string, error)

	// Config answers ConfigValue when ConfigValueFunc is nil
	Config map[string]string

	mu    sync.Mutex
	calls []GitCall
}

// Clone records the call and runs CloneFunc or the default behaviour
func (f *FakeGit) Clone(ctx context.Context, url, dir string) error {
	f.record(GitCall{Op: "clone", URL: url, Dir: dir})
	if f.CloneFunc != nil {
		return f.CloneFunc(ctx, url, dir)
	}
	return os.MkdirAll(dir, 0755)
}

// SyncSubmodules records the call and runs SyncSubmodulesFunc if set
func (f *FakeGit) SyncSubmodules(ctx context.Context, dir string) error {
	f.record(GitCall{Op: "submodules", Dir: dir})
	if f.SyncSubmodulesFunc != nil {
		return f.SyncSubmodulesFunc(ctx, dir)
	}
	return nil
}

// ConfigValue records the call and answers from ConfigValueFunc or Config
func (f *FakeGit) ConfigValue(ctx context.Context, key string) (string, error) {
	f.record(GitCall{Op: "config", Key: key})
	if f.ConfigValueFunc != nil {
		return f.ConfigValueFunc(ctx, key)
	}
	return f.Config[key], nil
}

// Calls returns a copy of the recorded invocations in order
func (f *FakeGit) Calls() []GitCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]GitCall(nil), f.calls...)
}

// Ops returns the recorded operation names in order
func (f *FakeGit) Ops() []string {
	calls := f.Calls()
	ops := make([]string, len(calls))
	for i, c := range calls {
		ops[i] = c.Op
	}
	return ops
}

func (f *FakeGit) record(c GitCall) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, c)
}

// RecordingRunner is a runner.Runner that records commands instead of
// executing them
type RecordingRunner struct {
	RunFunc    func(cmd runner.Command) error
	OutputFunc func(cmd runner.Command) (string, error)

	Commands []runner.Command
}

// Run records cmd and returns RunFunc's result, or nil
func (r *RecordingRunner) Run(_ context.Context, cmd runner.Command) error {
	r.Commands = append(r.Commands, cmd)
	if r.RunFunc != nil {
		return r.RunFunc(cmd)
	}
	return nil
}

// Output records cmd and returns OutputFunc's result, or ""
func (r *RecordingRunner) Output(_ context.Context, cmd runner.Command) (string, error) {
	r.Commands = append(r.Commands, cmd)
	if r.OutputFunc != nil {
		return r.OutputFunc(cmd)
	}
	return "", nil
}

// StubPrompter returns Answer (or Err) and counts how often it was asked
type StubPrompter struct {
	Answer string
	Err    error

	Asked    int
	Messages []string
}

// Prompt implements the prompter contract used by git.ResolveUser
func (p *StubPrompter) Prompt(message string) (string, error) {
	p.Asked++
	p.Messages = append(p.Messages, message)
	return p.Answer, p.Err
}
