// Package testutil provides utilities for testing dotboot components.
//
// Key components:
//   - FakeGit: records git invocations and can fail on demand
//   - RecordingRunner: records external commands instead of running them
//   - StubPrompter: canned answers for interactive prompts
//   - filesystem helpers: populate a temporary home and working copy, assert
//     on symlinks and snapshot a directory tree
//
// Usage guidelines:
//   - Link installation is tested on the real filesystem under t.TempDir(),
//     symlink behaviour cannot be faked faithfully
//   - git is always faked; no test touches the network
package testutil
