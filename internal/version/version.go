package version

import (
	"fmt"
	"runtime/debug"
	"time"
)

// Заполняются через -ldflags "-X apple-chase/internal/version.BuildDate=..."
var (
	BuildDate   string // YYYY-MM-DD (UTC)
	BuildCommit string
	BuildBranch string
)

// Номер сборки - число дней от начала проекта
var projectEpoch = time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)

// BuildInfo - метаданные сборки для /version
type BuildInfo struct {
	Build      int    `json:"build"`
	Date       string `json:"date,omitempty"`
	Commit     string `json:"commit,omitempty"`
	Branch     string `json:"branch,omitempty"`
	GoVersion  string `json:"goVersion"`
	Calculated bool   `json:"calculated"`
	Error      string `json:"error,omitempty"`
}

// BuildNumber считает номер сборки по BuildDate
func BuildNumber(date string) (int, error) {
	if date == "" {
		return 0, fmt.Errorf("build date is empty")
	}

	t, err := time.ParseInLocation("2006-01-02", date, time.UTC)
	if err != nil {
		return 0, fmt.Errorf("invalid build date %q: %w", date, err)
	}
	if t.Before(projectEpoch) {
		return 0, fmt.Errorf("build date %s is before %s", date, projectEpoch.Format("2006-01-02"))
	}

	return int(t.Sub(projectEpoch).Hours() / 24), nil
}

// Info собирает метаданные. Коммит без ldflags берется из VCS-информации Go.
func Info() BuildInfo {
	info := BuildInfo{
		Date:   BuildDate,
		Commit: BuildCommit,
		Branch: BuildBranch,
	}

	if bi, ok := debug.ReadBuildInfo(); ok {
		info.GoVersion = bi.GoVersion
		if info.Commit == "" {
			for _, s := range bi.Settings {
				if s.Key == "vcs.revision" {
					info.Commit = s.Value
				}
			}
		}
	}

	n, err := BuildNumber(BuildDate)
	if err != nil {
		info.Error = err.Error()
		return info
	}
	info.Build = n
	info.Calculated = true
	return info
}

// String - строка для лога при старте
func String() string {
	info := Info()
	if !info.Calculated {
		return fmt.Sprintf("build unknown (%s)", info.Error)
	}
	commit := info.Commit
	if commit == "" {
		commit = "unknown"
	}
	return fmt.Sprintf("build %d (%s) commit[%s]", info.Build, info.Date, commit)
}
