// Command ops inspects a storage-layer snapshot offline: the habits due
// today, the achievement catalog state, and the wellness score.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/banghuazhao/longevity-master-sub000/internal/achievement"
	"github.com/banghuazhao/longevity-master-sub000/internal/config"
	"github.com/banghuazhao/longevity-master-sub000/internal/engine"
	"github.com/banghuazhao/longevity-master-sub000/internal/snapshot"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(2)
	}

	// Optional local overrides; a missing .env is fine.
	_ = godotenv.Load()

	switch os.Args[1] {
	case "report":
		if err := cmdReport(os.Args[2:]); err != nil {
			fmt.Fprintln(os.Stderr, "report failed:", err)
			os.Exit(1)
		}
	case "score":
		if err := cmdScore(os.Args[2:]); err != nil {
			fmt.Fprintln(os.Stderr, "score failed:", err)
			os.Exit(1)
		}
	case "achievements":
		if err := cmdAchievements(os.Args[2:]); err != nil {
			fmt.Fprintln(os.Stderr, "achievements failed:", err)
			os.Exit(1)
		}
	default:
		printUsage()
		os.Exit(2)
	}
}

func cmdReport(args []string) error {
	fs := flag.NewFlagSet("report", flag.ContinueOnError)
	snap := fs.String("snapshot", "snapshot.yaml", "path to snapshot file")
	date := fs.String("date", "", "reference date (2006-01-02, default today)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	e, s, err := loadEngine(*snap)
	if err != nil {
		return err
	}
	ref, err := refDate(*date)
	if err != nil {
		return err
	}

	today, err := e.ResolveTodayHabits(s.ModelHabits(), s.CheckIns, ref)
	if err != nil {
		return err
	}

	fmt.Printf("due on %s:\n", ref.Format("2006-01-02"))
	for _, th := range today {
		status := " "
		if th.Completed {
			status = "x"
		}
		line := fmt.Sprintf("  [%s] %s", status, th.Habit.Name)
		if th.StreakLabel != "" {
			line += "  (" + th.StreakLabel + ")"
		}
		if th.QuotaLabel != "" {
			line += "  [" + th.QuotaLabel + "]"
		}
		fmt.Println(line)
	}
	if len(today) == 0 {
		fmt.Println("  nothing due")
	}
	return nil
}

func cmdScore(args []string) error {
	fs := flag.NewFlagSet("score", flag.ContinueOnError)
	snap := fs.String("snapshot", "snapshot.yaml", "path to snapshot file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	e, s, err := loadEngine(*snap)
	if err != nil {
		return err
	}

	b := e.ComputeScore(s.ModelHabits(), s.Achievements, s.CheckIns)
	fmt.Printf("active habits   %4d\n", b.ActiveHabitsScore)
	fmt.Printf("anti-aging      %4d\n", b.AntiAgingScore)
	fmt.Printf("achievements    %4d\n", b.AchievementsScore)
	fmt.Printf("check-ins       %4d\n", b.TotalCheckInsScore)
	fmt.Printf("longest streak  %4d\n", b.LongestStreakScore)
	fmt.Printf("total           %4d  rating %s", b.Total, b.Rating)
	if b.ToNextRating > 0 {
		fmt.Printf("  (%d to next)", b.ToNextRating)
	}
	fmt.Println()
	return nil
}

func cmdAchievements(args []string) error {
	fs := flag.NewFlagSet("achievements", flag.ContinueOnError)
	snap := fs.String("snapshot", "snapshot.yaml", "path to snapshot file")
	catalog := fs.String("catalog", "", "optional achievement catalog YAML (defaults to built-in seed)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	s, err := snapshot.Load(*snap)
	if err != nil {
		return err
	}
	achievements := s.Achievements
	if len(achievements) == 0 {
		achievements = achievement.Seed()
	}
	if *catalog != "" {
		achievements, err = achievement.LoadCatalog(*catalog)
		if err != nil {
			return err
		}
	}

	for _, a := range achievements {
		mark := " "
		if a.Unlocked {
			mark = "x"
		}
		fmt.Printf("  [%s] %-24s %s\n", mark, a.ID, a.Name)
	}
	return nil
}

func loadEngine(snapPath string) (*engine.Engine, *snapshot.Snapshot, error) {
	log, err := zap.NewProduction()
	if err != nil {
		return nil, nil, err
	}

	cfg := config.FromEnv()
	s, err := snapshot.Load(snapPath)
	if err != nil {
		return nil, nil, err
	}
	return engine.New(cfg, log), s, nil
}

func refDate(s string) (time.Time, error) {
	if s == "" {
		return time.Now(), nil
	}
	t, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("bad -date: %w", err)
	}
	return t, nil
}

func printUsage() {
	fmt.Fprintln(os.Stderr, `usage:
  ops report        [-snapshot file] [-date 2006-01-02]
  ops score         [-snapshot file]
  ops achievements  [-snapshot file] [-catalog file]`)
}
