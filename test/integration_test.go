// ABOUTME: Integration tests for the fitplan CLI.
// ABOUTME: Builds the binary and runs a full plan, log, and progress workflow.
package test

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

func TestFullWorkflow(t *testing.T) {
	projectRoot, _ := filepath.Abs("..")
	binary := filepath.Join(t.TempDir(), "fitplan")

	buildCmd := exec.Command("go", "build", "-o", binary, "./cmd/fitplan")
	buildCmd.Dir = projectRoot
	if output, err := buildCmd.CombinedOutput(); err != nil {
		t.Fatalf("Failed to build: %v\n%s", err, output)
	}

	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")
	env := append(os.Environ(),
		"XDG_CONFIG_HOME="+filepath.Join(tmpDir, "config"),
		"XDG_DATA_HOME="+filepath.Join(tmpDir, "data"),
		"FITPLAN_BACKEND=",
		"NO_COLOR=1",
	)

	run := func(args ...string) string {
		t.Helper()
		cmd := exec.Command(binary, append([]string{"--db", dbPath}, args...)...)
		cmd.Dir = tmpDir
		cmd.Env = env
		output, err := cmd.CombinedOutput()
		if err != nil {
			t.Fatalf("fitplan %s: %v\n%s", strings.Join(args, " "), err, output)
		}
		return string(output)
	}

	expect := func(output string, wants ...string) {
		t.Helper()
		for _, want := range wants {
			if !strings.Contains(output, want) {
				t.Errorf("Expected %q in output, got: %s", want, output)
			}
		}
	}

	expect(run("plan", "create", "--weight", "80", "--height", "180", "--goal", "lose_weight", "--prefs", "cardio,hiit,strength"),
		"Created", "(LoseWeight)", "cardio", "hiit", "strength")

	expect(run("plan", "rescale", "5", "--field", "sessions"), "Rescaled weekly sessions to 5")
	expect(run("schedule"), "5 workout days")

	expect(run("weight", "79.5"), "Logged weight")
	expect(run("log", "cardio", "--duration", "30"), "Logged cardio", "318 kcal")

	expect(run("activities"), "cardio")
	expect(run("progress"), "Sessions", "Minutes", "Calories")
	expect(run("recommend", "--day", "rest"), "Rest day")

	exportPath := filepath.Join(tmpDir, "backup.json")
	expect(run("export", "json", "-o", exportPath), "Exported to")
	data, err := os.ReadFile(exportPath)
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	expect(string(data), `"tool": "fitplan"`, `"LoseWeight"`)
}
