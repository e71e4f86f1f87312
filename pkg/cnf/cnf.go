package cnf

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"mycnftune/pkg/tuner"
)

const (
	headerComment    = "# Managed by mycnftune, unmanaged lines are preserved."
	backupTimeLayout = "20060102_150405"

	defaultFileMode = os.FileMode(0644)
	defaultDirMode  = os.FileMode(0755)
)

// Apply upserts params into the configuration file at path under
// the named section, creating the file (and parent directories)
// when missing and backing it up first when present. The rewrite
// goes through a temp file and rename so a failure mid-edit never
// leaves a half-written file behind. Returns the keys whose lines
// were added or changed.
func Apply(path, section string, params []tuner.Parameter) ([]string, error) {
	data, err := os.ReadFile(path)
	exists := err == nil
	if err != nil && !os.IsNotExist(err) {
		return nil, wrapPermission(err, "read "+path)
	}

	mode := defaultFileMode
	var lines []string
	if exists {
		if info, statErr := os.Stat(path); statErr == nil {
			mode = info.Mode()
		}

		err = writeBackup(path, data, mode)
		if err != nil {
			return nil, err
		}

		lines = strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
	} else {
		err = os.MkdirAll(filepath.Dir(path), defaultDirMode)
		if err != nil {
			return nil, wrapPermission(err, "create directory "+filepath.Dir(path))
		}

		lines = []string{headerComment, "", "[" + section + "]"}
	}

	lines, changed := upsertAll(lines, section, params)

	err = writeAtomic(path, strings.Join(lines, "\n")+"\n", mode)
	if err != nil {
		return nil, err
	}

	return changed, nil
}

// upsertAll applies every parameter to the line set in order:
// an existing key line is replaced in place wherever it is, a
// missing key is inserted inside the target section, and the
// section itself is appended to the end when absent.
func upsertAll(lines []string, section string, params []tuner.Parameter) ([]string, []string) {
	changed := make([]string, 0, len(params))
	insertAt := -1

	for _, p := range params {
		line := renderLine(p)

		i := findKey(lines, p.Key)
		if i >= 0 {
			if lines[i] != line {
				lines[i] = line
				changed = append(changed, p.Key)
			}
			continue
		}

		if insertAt < 0 {
			h := findSection(lines, section)
			if h < 0 {
				lines = append(lines, "", "["+section+"]")
				h = len(lines) - 1
			}
			insertAt = h + 1
		}

		lines = append(lines, "")
		copy(lines[insertAt+1:], lines[insertAt:])
		lines[insertAt] = line
		insertAt++
		changed = append(changed, p.Key)
	}

	return lines, changed
}

func renderLine(p tuner.Parameter) string {
	if p.Value == "" {
		return p.Key
	}
	return p.Key + " = " + p.Value
}

func findKey(lines []string, key string) int {
	pattern := regexp.MustCompile(`^` + regexp.QuoteMeta(key) + `\s*(=|$)`)
	for i, line := range lines {
		if pattern.MatchString(line) {
			return i
		}
	}
	return -1
}

func findSection(lines []string, section string) int {
	header := "[" + section + "]"
	for i, line := range lines {
		if strings.TrimSpace(line) == header {
			return i
		}
	}
	return -1
}

// writeBackup copies the file's prior content verbatim to a
// timestamped sibling before any mutation
func writeBackup(path string, data []byte, mode os.FileMode) error {
	backupPath := fmt.Sprintf("%s.%s.bak", path, time.Now().Format(backupTimeLayout))
	err := os.WriteFile(backupPath, data, mode)
	if err != nil {
		return wrapPermission(err, "create backup "+backupPath)
	}
	return nil
}

func writeAtomic(path, content string, mode os.FileMode) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp")
	if err != nil {
		return wrapPermission(err, "create "+path)
	}

	_, err = tmp.WriteString(content)
	if err == nil {
		err = tmp.Chmod(mode)
	}
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(tmp.Name())
		return wrapPermission(err, "write "+path)
	}

	err = os.Rename(tmp.Name(), path)
	if err != nil {
		os.Remove(tmp.Name())
		return wrapPermission(err, "replace "+path)
	}

	return nil
}

func wrapPermission(err error, action string) error {
	if os.IsPermission(err) {
		return fmt.Errorf("%s: %v, re-run as root or a user with write access", action, err)
	}
	return fmt.Errorf("%s: %v", action, err)
}
