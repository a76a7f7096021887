package services

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/renato0307/chronopick/internal/domain"
	"github.com/renato0307/chronopick/internal/logging"
)

// ParseTaskSpecifiers resolves task specifiers into a TaskSet. Each specifier
// is, in order of precedence: a path to a newline-delimited task file ('#'
// starts a comment line), a comma-separated list, or a literal task ID.
func ParseTaskSpecifiers(specs []string) (domain.TaskSet, error) {
	tasks := domain.NewTaskSet()

	for _, spec := range specs {
		if info, err := os.Stat(spec); err == nil && info.Mode().IsRegular() {
			fileTasks, err := readTaskFile(spec)
			if err != nil {
				return nil, err
			}
			tasks.Merge(fileTasks)
			continue
		}

		if strings.Contains(spec, ",") {
			for _, part := range strings.Split(spec, ",") {
				tasks.Add(strings.TrimSpace(part))
			}
			continue
		}

		tasks.Add(strings.TrimSpace(spec))
	}

	logging.Logger.Debug("Task specifiers resolved", "specifiers", len(specs), "tasks", tasks.Len())
	return tasks, nil
}

func readTaskFile(path string) (domain.TaskSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read task file %s: %w", path, err)
	}
	defer f.Close()

	tasks := domain.NewTaskSet()
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		tasks.Add(line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read task file %s: %w", path, err)
	}

	logging.Logger.Info("Task file loaded", "path", path, "tasks", tasks.Len())
	return tasks, nil
}

// WriteTaskFile writes tasks as a newline-delimited task file, readable
// back by ParseTaskSpecifiers. header, if set, becomes a leading comment.
func WriteTaskFile(path, header string, tasks domain.TaskSet) error {
	var b strings.Builder
	if header != "" {
		fmt.Fprintf(&b, "# %s\n", header)
	}
	for _, id := range tasks.Sorted() {
		b.WriteString(id)
		b.WriteByte('\n')
	}

	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("failed to write task file %s: %w", path, err)
	}
	logging.Logger.Info("Task file written", "path", path, "tasks", tasks.Len())
	return nil
}
