package logtail

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap/zapcore"
)

// Read returns at most maxLines records from the end of the zap log at path,
// keeping only records at or above minLevel. Lines without a level (stack
// traces, wrapped output) follow the record before them. A missing file is
// not an error.
func Read(path string, maxLines int, minLevel zapcore.Level) ([]string, error) {
	if maxLines <= 0 {
		return nil, nil
	}
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	ring := make([]string, maxLines)
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	count := 0
	idx := 0
	keep := true
	for scanner.Scan() {
		line := scanner.Text()
		if lvl, ok := LineLevel(line); ok {
			keep = lvl >= minLevel
		}
		if !keep || strings.TrimSpace(line) == "" {
			continue
		}
		ring[idx] = line
		idx = (idx + 1) % maxLines
		if count < maxLines {
			count++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}

	lines := make([]string, count)
	if count == maxLines {
		for i := 0; i < count; i++ {
			lines[i] = ring[(idx+i)%maxLines]
		}
	} else {
		copy(lines, ring[:count])
	}
	return lines, nil
}

// LineLevel extracts the level of a record written by the console or json
// zap encoder.
func LineLevel(line string) (zapcore.Level, bool) {
	trimmed := strings.TrimSpace(line)
	var text string
	if strings.HasPrefix(trimmed, "{") {
		var rec struct {
			Level string `json:"level"`
		}
		if err := json.Unmarshal([]byte(trimmed), &rec); err != nil {
			return 0, false
		}
		text = rec.Level
	} else {
		// time \t level \t caller \t msg
		fields := strings.Split(line, "\t")
		if len(fields) < 3 {
			return 0, false
		}
		text = fields[1]
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, false
	}
	lvl, err := zapcore.ParseLevel(text)
	if err != nil {
		return 0, false
	}
	return lvl, true
}
