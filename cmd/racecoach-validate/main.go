package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/claude/racecoach/internal/athlete"
	"github.com/claude/racecoach/internal/coach"
	"github.com/claude/racecoach/internal/conflict"
	"github.com/claude/racecoach/internal/history"
	"github.com/claude/racecoach/internal/plan"
	"github.com/claude/racecoach/internal/validate"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	planPath := flag.String("plan", "", "path to plan JSON file (raw generator output is fine)")
	athletePath := flag.String("athlete", "", "path to athlete constraints YAML file")
	applyFix := flag.Bool("fix", false, "apply auto-fixes and write the repaired plan next to the input")
	jsonOut := flag.Bool("json", false, "print the full validation result as JSON")
	showHistory := flag.Bool("history", false, "print recent runs for this plan file and exit")
	version := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *version {
		fmt.Println("racecoach-validate", Version)
		return
	}

	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	if *planPath == "" || *athletePath == "" {
		fmt.Fprintf(os.Stderr, "Usage: racecoach-validate -plan <plan.json> -athlete <athlete.yaml> [-fix] [-json] [-history]\n\n")
		flag.PrintDefaults()
		os.Exit(1)
	}

	store := openHistory(log)
	if store != nil {
		defer store.Close()
	}

	if *showHistory {
		printHistory(store, *planPath)
		return
	}

	cons, err := loadConstraints(*athletePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Pre-generation conflict gate runs offline too: a plan for an athlete
	// with a blocking conflict should fail before any plan checks do.
	conflicts := conflict.Detect(cons)
	summary := conflict.Summarize(conflicts)
	if len(conflicts) > 0 {
		fmt.Println(summary.Text)
		fmt.Println()
	}
	if !summary.CanProceed {
		fmt.Println("RESULT: blocked by athlete conflicts")
		os.Exit(2)
	}

	raw, err := os.ReadFile(*planPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: reading plan: %v\n", err)
		os.Exit(1)
	}

	p, err := plan.Parse(string(raw))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	attempt := coach.ValidateAndFix(p, cons, log)
	recordRun(store, *planPath, p.WeekNumber, attempt, log)

	if *jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(attempt); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	} else {
		printReport(attempt)
	}

	if *applyFix && attempt.FixApplied {
		out := fixedPath(*planPath)
		if err := writePlan(out, attempt.Plan); err != nil {
			fmt.Fprintf(os.Stderr, "Error: writing fixed plan: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("\nRepaired plan written to %s\n", out)
	}

	if !attempt.Success {
		os.Exit(2)
	}
}

func loadConstraints(path string) (athlete.Constraints, error) {
	var cons athlete.Constraints
	raw, err := os.ReadFile(path)
	if err != nil {
		return cons, fmt.Errorf("reading athlete file: %w", err)
	}
	if err := yaml.Unmarshal(raw, &cons); err != nil {
		return cons, fmt.Errorf("parsing athlete file: %w", err)
	}
	if !cons.Experience.Valid() && cons.Experience != "" {
		return cons, fmt.Errorf("unknown experience level %q", cons.Experience)
	}
	return cons, nil
}

// openHistory opens the run history store under ~/.racecoach. History is
// best-effort: a missing home directory degrades to no recording, not a
// failed validation.
func openHistory(log *slog.Logger) *history.Store {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Warn("no home directory, run history disabled", "error", err)
		return nil
	}
	store, err := history.Open(filepath.Join(homeDir, ".racecoach"))
	if err != nil {
		log.Warn("failed to open run history", "error", err)
		return nil
	}
	return store
}

func recordRun(store *history.Store, planPath string, week int, a coach.Attempt, log *slog.Logger) {
	if store == nil {
		return
	}
	hash, err := history.HashFile(planPath)
	if err != nil {
		log.Warn("failed to hash plan file", "error", err)
	}
	err = store.Record(history.Run{
		PlanPath:   planPath,
		PlanHash:   hash,
		WeekNumber: week,
		Valid:      a.Success,
		Score:      a.Result.Score,
		Errors:     a.Result.Errors,
		Warnings:   a.Result.Warnings,
		FixApplied: a.FixApplied,
	})
	if err != nil {
		log.Warn("failed to record run", "error", err)
	}
}

func printHistory(store *history.Store, planPath string) {
	if store == nil {
		fmt.Fprintln(os.Stderr, "Run history unavailable")
		os.Exit(1)
	}
	runs, err := store.Recent(planPath, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if len(runs) == 0 {
		fmt.Printf("No recorded runs for %s\n", planPath)
		return
	}
	fmt.Printf("Recent runs for %s:\n", planPath)
	for _, r := range runs {
		status := "INVALID"
		if r.Valid {
			status = "valid"
		}
		fmt.Printf("  %s  week %d  %s  score %d  (%d errors, %d warnings, fix=%v)\n",
			r.RunAt.Format("2006-01-02 15:04"), r.WeekNumber, status, r.Score, r.Errors, r.Warnings, r.FixApplied)
	}
}

func printReport(a coach.Attempt) {
	fmt.Println("=== Validation Report ===")
	fmt.Printf("  Week:      %d\n", a.Plan.WeekNumber)
	fmt.Printf("  Valid:     %v\n", a.Result.Valid)
	fmt.Printf("  Score:     %d/100\n", a.Result.Score)
	fmt.Printf("  Errors:    %d\n", a.Result.Errors)
	fmt.Printf("  Warnings:  %d\n", a.Result.Warnings)
	if a.FixApplied {
		fmt.Println("  Auto-fix:  applied")
	}
	fmt.Printf("  Running:   %.1f km\n", a.Result.Volumes.RunningKm)

	if len(a.Result.Issues) > 0 {
		fmt.Println()
		for _, is := range a.Result.Issues {
			tag := "WARN "
			if is.Type == validate.TypeError {
				tag = "ERROR"
			}
			fmt.Printf("  [%s] %s: %s\n", tag, is.Category, is.Message)
		}
	}

	if a.RegenerationFeedback != "" {
		fmt.Println()
		fmt.Println("Regeneration feedback:")
		fmt.Println(a.RegenerationFeedback)
	}
}

func fixedPath(planPath string) string {
	ext := filepath.Ext(planPath)
	return planPath[:len(planPath)-len(ext)] + ".fixed" + ext
}

func writePlan(path string, p *plan.Plan) error {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
