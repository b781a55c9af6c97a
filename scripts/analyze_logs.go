package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"time"
)

// storeLine matches the layout written by utils.LogStore and the ignored-status debug line.
var storeLine = regexp.MustCompile(`Store: (\S+) (\S+) (\S+) - `)

type LogStats struct {
	TotalErrors     int
	Operations      map[string]int // "<OP> <entity>" -> count
	NotFound        int
	Conflicts       int
	IgnoredStatuses int
	FailedRequests  int
	ErrorPatterns   map[string]int
}

func newLogStats() *LogStats {
	return &LogStats{
		Operations:    make(map[string]int),
		ErrorPatterns: make(map[string]int),
	}
}

func main() {
	logDir := flag.String("dir", "./logs", "directory holding the dated log files")
	day := flag.String("date", time.Now().Format("2006-01-02"), "log date to analyze (YYYY-MM-DD)")
	flag.Parse()

	stats := newLogStats()
	for _, level := range []string{"info", "debug", "error"} {
		path := filepath.Join(*logDir, fmt.Sprintf("%s-%s.log", level, *day))
		file, err := os.Open(path)
		if err != nil {
			fmt.Printf("Error opening log file %s: %v\n", path, err)
			continue
		}
		if level == "error" {
			analyzeErrorLog(file, stats)
		} else {
			analyzeStoreLog(file, stats)
		}
		file.Close()
	}

	printReport(os.Stdout, stats)
}

func analyzeStoreLog(r io.Reader, stats *LogStats) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()

		if strings.Contains(line, "Request: ") && !strings.Contains(line, "Status: 2") {
			stats.FailedRequests++
		}

		m := storeLine.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		op, entity := m[1], m[2]
		switch op {
		case "NOT_FOUND":
			stats.NotFound++
		case "CONFLICT":
			stats.Conflicts++
		case "IGNORED":
			stats.IgnoredStatuses++
		}
		stats.Operations[op+" "+entity]++
	}
}

func analyzeErrorLog(r io.Reader, stats *LogStats) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		stats.TotalErrors++
		extractErrorPattern(line, stats)
	}
}

// extractErrorPattern keys an error line by its message with record ids removed.
func extractErrorPattern(line string, stats *LogStats) {
	// "ERROR: 2024/01/01 10:00:00 file.go:12: Failed to create refund_session rf_1: cause"
	parts := strings.SplitN(line, ": ", 4)
	if len(parts) < 3 {
		return
	}
	msg := parts[2]
	if i := strings.Index(msg, " for "); i > 0 {
		msg = msg[:i]
	}
	fields := strings.Fields(msg)
	if len(fields) > 4 {
		fields = fields[:4]
	}
	stats.ErrorPatterns[strings.Join(fields, " ")]++
}

func printReport(w io.Writer, stats *LogStats) {
	fmt.Fprintln(w, "\n=== Log Analysis Report ===")
	fmt.Fprintln(w, "Generated:", time.Now().Format("2006-01-02 15:04:05"))

	fmt.Fprintln(w, "\n1. Store Operations:")
	printTop(w, stats.Operations, 10, "operations")

	fmt.Fprintln(w, "\n2. Outcomes:")
	fmt.Fprintf(w, "   Not found: %d\n", stats.NotFound)
	fmt.Fprintf(w, "   Conflicts: %d\n", stats.Conflicts)
	fmt.Fprintf(w, "   Ignored status updates: %d\n", stats.IgnoredStatuses)
	fmt.Fprintf(w, "   Non-2xx requests: %d\n", stats.FailedRequests)

	fmt.Fprintln(w, "\n3. Error Statistics:")
	fmt.Fprintf(w, "   Total Errors: %d\n", stats.TotalErrors)

	fmt.Fprintln(w, "\n4. Most Common Errors:")
	printTop(w, stats.ErrorPatterns, 5, "occurrences")
}

func printTop(w io.Writer, counts map[string]int, limit int, unit string) {
	type entry struct {
		key   string
		count int
	}

	var entries []entry
	for k, c := range counts {
		entries = append(entries, entry{k, c})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].count == entries[j].count {
			return entries[i].key < entries[j].key
		}
		return entries[i].count > entries[j].count
	})

	for i, e := range entries {
		if i >= limit {
			break
		}
		fmt.Fprintf(w, "   %s: %d %s\n", e.key, e.count, unit)
	}
}
