package config

const (
	defaultDataDir       = "~/.local/share/makhela"
	defaultLogDir        = "~/.local/share/makhela/logs"
	defaultLyricsDir     = "~/makhela/lyrics"
	defaultTranscriptDir = "~/.local/share/makhela/transcripts"

	defaultTranscriberModel    = "large-v3"
	defaultTranscriberLanguage = "he"

	defaultLogFormat = "console"
	defaultLogLevel  = "info"
)

// Default returns a Config populated with repository defaults. The alignment
// section is left at zero so the engine's own calibrated defaults apply.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir:       defaultDataDir,
			LogDir:        defaultLogDir,
			LyricsDir:     defaultLyricsDir,
			TranscriptDir: defaultTranscriptDir,
		},
		Transcriber: Transcriber{
			Model:    defaultTranscriberModel,
			Language: defaultTranscriberLanguage,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
