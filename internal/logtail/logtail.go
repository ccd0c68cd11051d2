package logtail

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"
)

// Read returns at most maxLines from the end of the file at path. A missing
// file yields no lines.
func Read(path string, maxLines int) ([]string, error) {
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
	for scanner.Scan() {
		ring[idx] = scanner.Text()
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

// Entry is a decoded zerolog JSON line.
type Entry struct {
	Time    time.Time
	Level   string
	Message string
	Error   string
	Fields  map[string]string
}

// skipFields are rendered elsewhere in the line or are noise in a pane.
var skipFields = map[string]bool{
	"time": true, "level": true, "message": true, "error": true, "app": true,
}

// Parse decodes one JSON log line. ok is false for lines that are not JSON
// objects, which callers show verbatim.
func Parse(line string) (Entry, bool) {
	var raw map[string]any
	if err := json.Unmarshal([]byte(line), &raw); err != nil {
		return Entry{}, false
	}

	entry := Entry{Fields: make(map[string]string)}
	for key, value := range raw {
		str := fmt.Sprint(value)
		switch key {
		case "time":
			entry.Time, _ = time.Parse(time.RFC3339, str)
		case "level":
			entry.Level = str
		case "message":
			entry.Message = str
		case "error":
			entry.Error = str
		}
		if !skipFields[key] {
			entry.Fields[key] = str
		}
	}
	return entry, true
}

// Format renders a log line as "15:04:05 INF message key=value error=...".
func Format(line string) string {
	entry, ok := Parse(line)
	if !ok {
		return line
	}

	parts := make([]string, 0, 3+len(entry.Fields))
	if !entry.Time.IsZero() {
		parts = append(parts, entry.Time.Local().Format("15:04:05"))
	}
	parts = append(parts, levelTag(entry.Level))
	if entry.Message != "" {
		parts = append(parts, entry.Message)
	}

	keys := make([]string, 0, len(entry.Fields))
	for k := range entry.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		parts = append(parts, k+"="+entry.Fields[k])
	}
	if entry.Error != "" {
		parts = append(parts, "error="+entry.Error)
	}
	return strings.Join(parts, " ")
}

// FormatLines applies Format to each line.
func FormatLines(lines []string) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = Format(line)
	}
	return out
}

func levelTag(level string) string {
	switch level {
	case "trace":
		return "TRC"
	case "debug":
		return "DBG"
	case "info":
		return "INF"
	case "warn":
		return "WRN"
	case "error":
		return "ERR"
	case "fatal":
		return "FTL"
	case "panic":
		return "PNC"
	default:
		return "???"
	}
}
