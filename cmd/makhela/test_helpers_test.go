package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type cliTestEnv struct {
	baseDir    string
	configPath string
	dataDir    string
	lyricsPath string
	whisperxJS string
}

func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()

	base := t.TempDir()
	homeDir := filepath.Join(base, "home")
	if err := os.MkdirAll(homeDir, 0o755); err != nil {
		t.Fatalf("mkdir home: %v", err)
	}
	t.Setenv("HOME", homeDir)

	dataDir := filepath.Join(base, "data")
	logDir := filepath.Join(base, "logs")
	for _, dir := range []string{dataDir, logDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", dir, err)
		}
	}

	configPath := filepath.Join(homeDir, ".config", "makhela", "config.toml")
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		t.Fatalf("mkdir config dir: %v", err)
	}
	writeTestConfig(t, configPath, dataDir, logDir)

	lyricsPath := filepath.Join(base, "shalom aleichem.txt")
	writeFile(t, lyricsPath, "שלום עליכם\nמלאכי השרת\n\nברכוני לשלום\nמלאכי השלום\n")

	whisperxPath := filepath.Join(base, "shalom aleichem.json")
	writeFile(t, whisperxPath, `{
  "language": "he",
  "segments": [
    {
      "text": "שלום עליכם",
      "start": 0.0,
      "end": 2.0,
      "words": [
        {"word": "שלום", "start": 0.0, "end": 1.0},
        {"word": "עליכם", "start": 1.0, "end": 2.0}
      ]
    },
    {
      "text": "מלאכי השרת",
      "start": 2.0,
      "end": 4.0,
      "words": [
        {"word": "מלאכי", "start": 2.0, "end": 3.0},
        {"word": "השרת", "start": 3.0, "end": 4.0}
      ]
    },
    {
      "text": "ברכוני לשלום",
      "start": 5.0,
      "end": 7.0,
      "words": [
        {"word": "ברכוני", "start": 5.0, "end": 6.0},
        {"word": "לשלום", "start": 6.0, "end": 7.0}
      ]
    },
    {
      "text": "מלאכי השלום",
      "start": 7.0,
      "end": 9.0,
      "words": [
        {"word": "מלאכי", "start": 7.0, "end": 8.0},
        {"word": "השלום", "start": 8.0, "end": 9.0}
      ]
    }
  ]
}`)

	return &cliTestEnv{
		baseDir:    base,
		configPath: configPath,
		dataDir:    dataDir,
		lyricsPath: lyricsPath,
		whisperxJS: whisperxPath,
	}
}

func runCLI(t *testing.T, args []string, configPath string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	var flags []string
	if configPath != "" {
		flags = append(flags, "--config", configPath)
	}
	cmd.SetArgs(append(flags, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeTestConfig(t *testing.T, path, dataDir, logDir string) {
	t.Helper()
	content := fmt.Sprintf(
		"[paths]\ndata_dir = %q\nlog_dir = %q\n\n[logging]\nformat = \"console\"\nlevel = \"warn\"\n",
		dataDir,
		logDir,
	)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

func writeTestConfigWithTranscriptDir(t *testing.T, path, dataDir, transcriptDir string) {
	t.Helper()
	content := fmt.Sprintf(
		"[paths]\ndata_dir = %q\ntranscript_dir = %q\n\n[logging]\nformat = \"console\"\nlevel = \"warn\"\n",
		dataDir,
		transcriptDir,
	)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}
