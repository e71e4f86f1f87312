package cnf_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"mycnftune/pkg/cnf"
	"mycnftune/pkg/tuner"
)

var testParams = []tuner.Parameter{
	{Key: "max_connections", Value: "100"},
	{Key: "innodb_buffer_pool_size", Value: "8G"},
	{Key: "skip-name-resolve", Value: ""},
	{Key: "character-set-server", Value: "utf8mb4"},
}

func TestApplyCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mysql", "my.cnf")

	changed, err := cnf.Apply(path, "mysqld", testParams)
	if err != nil {
		t.Fatalf("apply to missing file: want no error, got: %v", err)
	}
	if len(changed) != len(testParams) {
		t.Errorf("changed keys on create: want: %d, got: %d", len(testParams), len(changed))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read created file: %v", err)
	}
	content := string(data)

	wantLines := []string{
		"[mysqld]",
		"max_connections = 100",
		"innodb_buffer_pool_size = 8G",
		"skip-name-resolve",
		"character-set-server = utf8mb4",
	}
	last := -1
	for _, want := range wantLines {
		i := indexOfLine(content, want)
		if i < 0 {
			t.Fatalf("created file line %q: want present, got absent\n%s", want, content)
		}
		if i <= last {
			t.Errorf("created file line %q: want after previous managed line, got index %d", want, i)
		}
		last = i
	}
}

func TestApplyBackup(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "my.cnf")
	original := "[mysqld]\nmax_connections = 10\n# operator note\n"
	if err := os.WriteFile(path, []byte(original), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := cnf.Apply(path, "mysqld", testParams)
	if err != nil {
		t.Fatalf("apply: want no error, got: %v", err)
	}

	backups, err := filepath.Glob(path + ".*.bak")
	if err != nil || len(backups) != 1 {
		t.Fatalf("backup files: want: 1, got: %d (%v)", len(backups), err)
	}

	data, err := os.ReadFile(backups[0])
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != original {
		t.Errorf("backup content: want: %q, got: %q", original, string(data))
	}
}

func TestApplyPreservesUnrelatedLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "my.cnf")
	content := strings.Join([]string{
		"# hand-written header",
		"[client]",
		"port = 3306",
		"",
		"[mysqld]",
		"max_connections = 10",
		"custom_setting = keepme",
		"",
	}, "\n")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	changed, err := cnf.Apply(path, "mysqld", testParams)
	if err != nil {
		t.Fatalf("apply: want no error, got: %v", err)
	}
	if len(changed) != len(testParams) {
		t.Errorf("changed keys: want: %d, got: %d", len(testParams), len(changed))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	got := string(data)

	for _, want := range []string{"# hand-written header", "[client]", "port = 3306", "custom_setting = keepme"} {
		if indexOfLine(got, want) < 0 {
			t.Errorf("unrelated line %q: want preserved, got absent\n%s", want, got)
		}
	}

	if indexOfLine(got, "max_connections = 100") < 0 {
		t.Errorf("replaced key line: want present, got absent\n%s", got)
	}
	if indexOfLine(got, "max_connections = 10") >= 0 {
		t.Errorf("stale key line: want absent, got present\n%s", got)
	}
	if strings.Count(got, "max_connections") != 1 {
		t.Errorf("max_connections occurrences: want: 1, got: %d", strings.Count(got, "max_connections"))
	}
}

func TestApplyIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "my.cnf")

	_, err := cnf.Apply(path, "mysqld", testParams)
	if err != nil {
		t.Fatalf("first apply: want no error, got: %v", err)
	}
	first, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	changed, err := cnf.Apply(path, "mysqld", testParams)
	if err != nil {
		t.Fatalf("second apply: want no error, got: %v", err)
	}
	if len(changed) != 0 {
		t.Errorf("changed keys on second apply: want: 0, got: %d (%v)", len(changed), changed)
	}

	second, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(first) != string(second) {
		t.Errorf("file after second apply: want unchanged\nfirst:\n%s\nsecond:\n%s", first, second)
	}
}

func TestApplyAppendsSectionWhenMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "my.cnf")
	if err := os.WriteFile(path, []byte("[client]\nport = 3306\n"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := cnf.Apply(path, "mysqld", testParams)
	if err != nil {
		t.Fatalf("apply: want no error, got: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	got := string(data)

	section := indexOfLine(got, "[mysqld]")
	if section < 0 {
		t.Fatalf("section header: want appended, got absent\n%s", got)
	}
	if section <= indexOfLine(got, "port = 3306") {
		t.Errorf("section header index: want after existing content, got: %d", section)
	}
	if indexOfLine(got, "max_connections = 100") != section+1 {
		t.Errorf("first managed line: want right after section header, got index %d", indexOfLine(got, "max_connections = 100"))
	}
}

func indexOfLine(content, line string) int {
	for i, l := range strings.Split(strings.TrimSuffix(content, "\n"), "\n") {
		if l == line {
			return i
		}
	}
	return -1
}
