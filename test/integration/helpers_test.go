package integration

import (
	"bufio"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// fixtureRecord is one line of fixtures/versions/records.txt.
type fixtureRecord struct {
	stored     string
	normalized string
	dotted     string
}

// loadRecordFixtures reads the tab separated record fixtures.
func loadRecordFixtures(t *testing.T) []fixtureRecord {
	t.Helper()

	path, err := filepath.Abs(filepath.Join("../fixtures/versions", "records.txt"))
	if err != nil {
		t.Fatalf("failed to get fixture path: %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("failed to open fixture: %v", err)
	}
	defer f.Close()

	var records []fixtureRecord
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) != 3 {
			t.Fatalf("malformed fixture line %q", line)
		}
		records = append(records, fixtureRecord{stored: fields[0], normalized: fields[1], dotted: fields[2]})
	}
	if err := scanner.Err(); err != nil {
		t.Fatalf("failed to read fixture: %v", err)
	}
	return records
}

// gitRepo is a scratch git repository driven through the real git binary.
type gitRepo struct {
	t   *testing.T
	dir string
}

// newGitRepo initializes a repository in a temp directory, skipping the
// test when git is not installed.
func newGitRepo(t *testing.T) *gitRepo {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}

	// keep the user's configuration out of the repository
	t.Setenv("GIT_CONFIG_GLOBAL", os.DevNull)
	t.Setenv("GIT_CONFIG_NOSYSTEM", "1")
	t.Setenv("GIT_AUTHOR_NAME", "scmver")
	t.Setenv("GIT_AUTHOR_EMAIL", "scmver@example.com")
	t.Setenv("GIT_COMMITTER_NAME", "scmver")
	t.Setenv("GIT_COMMITTER_EMAIL", "scmver@example.com")

	r := &gitRepo{t: t, dir: t.TempDir()}
	r.git("init", "-q")
	return r
}

func (r *gitRepo) git(args ...string) string {
	r.t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = r.dir
	out, err := cmd.CombinedOutput()
	if err != nil {
		r.t.Fatalf("git %s: %v\n%s", strings.Join(args, " "), err, out)
	}
	return strings.TrimSpace(string(out))
}

// commit writes name with content and commits it.
func (r *gitRepo) commit(name, content string) {
	r.t.Helper()
	r.write(name, content)
	r.git("add", name)
	r.git("commit", "-q", "-m", "update "+name)
}

func (r *gitRepo) write(name, content string) {
	r.t.Helper()
	path := filepath.Join(r.dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		r.t.Fatalf("failed to create directory: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		r.t.Fatalf("failed to write %s: %v", name, err)
	}
}
