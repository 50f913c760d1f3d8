package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

func (g *Generator) generateTextReport(outputDir string, hours int) error {
	stats, err := g.src.GetStats(hours)
	if err != nil {
		return err
	}
	recent, err := g.src.GetRecent(hours)
	if err != nil {
		return err
	}

	filename := filepath.Join(outputDir, "summary.txt")
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	fmt.Fprintf(file, "Network Ping Report\n")
	fmt.Fprintf(file, "Generated: %s\n", g.now().Format("2006-01-02 15:04:05"))
	fmt.Fprintf(file, "Period: Last %d hours\n\n", hours)
	fmt.Fprintln(file, strings.Repeat("=", 60))

	fmt.Fprintln(file, "\nPER-TARGET STATISTICS")

	if len(stats) == 0 {
		fmt.Fprintln(file, "No outcomes recorded.")
	}

	for _, s := range stats {
		fmt.Fprintf(file, "Target: %s\n", s.Target)
		fmt.Fprintf(file, "  Pings: %d\n", s.Total)
		fmt.Fprintf(file, "  Successful: %d\n", s.Successful)
		fmt.Fprintf(file, "  Failure Rate: %.2f%%\n", s.FailureRate)

		if s.AvgRTT > 0 {
			fmt.Fprintf(file, "  Average RTT: %.2f ms\n", s.AvgRTT)
			fmt.Fprintf(file, "  Min RTT: %.2f ms\n", s.MinRTT)
			fmt.Fprintf(file, "  Max RTT: %.2f ms\n", s.MaxRTT)
		}
		fmt.Fprintln(file)
	}

	fmt.Fprintln(file, strings.Repeat("=", 60))
	fmt.Fprintln(file, "\nRECENT FAILURES")

	failures := 0
	for _, r := range recent {
		if r.Success {
			continue
		}
		fmt.Fprintf(file, "%s  %-15s  [%s] %s\n",
			r.Timestamp.Local().Format("2006-01-02 15:04:05"), r.Target, r.ErrorKind, firstLine(r.Text))
		failures++
	}

	if failures == 0 {
		fmt.Fprintln(file, "No failures recorded.")
	}

	return nil
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(strings.TrimSpace(s), "\n")
	return line
}
