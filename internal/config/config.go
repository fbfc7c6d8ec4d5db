package config

import "github.com/spf13/viper"

// Configuration provides type-safe access to tool paths and pipeline
// defaults. Values come from built-in defaults overridden by YTCLIP_*
// environment variables; command-line flags override both.
type Configuration struct {
	viper *viper.Viper
}

// New returns a Configuration backed by defaults and the environment.
func New() *Configuration {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("YTCLIP")
	v.AutomaticEnv()
	_ = v.BindEnv("tools.ytdlp", "YTCLIP_YTDLP_PATH")
	_ = v.BindEnv("tools.ffmpeg", "YTCLIP_FFMPEG_PATH")
	_ = v.BindEnv("tools.ffprobe", "YTCLIP_FFPROBE_PATH")
	_ = v.BindEnv("scratch.root", "YTCLIP_SCRATCH_ROOT")
	_ = v.BindEnv("clip.lang", "YTCLIP_LANG")
	_ = v.BindEnv("clip.format", "YTCLIP_FORMAT")

	return &Configuration{viper: v}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("tools.ytdlp", "yt-dlp")
	v.SetDefault("tools.ffmpeg", "ffmpeg")
	v.SetDefault("tools.ffprobe", "ffprobe")
	v.SetDefault("scratch.root", ".ytclip_tmp")
	v.SetDefault("clip.lang", "en")
	v.SetDefault("clip.before", 5.0)
	v.SetDefault("clip.after", 5.0)
	v.SetDefault("clip.max_window", 4)
	v.SetDefault("clip.format", "")
}

// YtdlpPath returns the configured yt-dlp binary name or path.
func (c *Configuration) YtdlpPath() string { return c.viper.GetString("tools.ytdlp") }

// FFmpegPath returns the configured ffmpeg binary name or path.
func (c *Configuration) FFmpegPath() string { return c.viper.GetString("tools.ffmpeg") }

// FFprobePath returns the configured ffprobe binary name or path.
func (c *Configuration) FFprobePath() string { return c.viper.GetString("tools.ffprobe") }

// ScratchRoot returns the directory under which per-run scratch
// directories are created.
func (c *Configuration) ScratchRoot() string { return c.viper.GetString("scratch.root") }

// Language returns the default subtitle language code.
func (c *Configuration) Language() string { return c.viper.GetString("clip.lang") }

// BeforePadding returns the default seconds of padding before a match.
func (c *Configuration) BeforePadding() float64 { return c.viper.GetFloat64("clip.before") }

// AfterPadding returns the default seconds of padding after a match.
func (c *Configuration) AfterPadding() float64 { return c.viper.GetFloat64("clip.after") }

// MaxWindow returns the default maximum match window width in segments.
func (c *Configuration) MaxWindow() int { return c.viper.GetInt("clip.max_window") }

// Format returns the default fetch-service format selector.
func (c *Configuration) Format() string { return c.viper.GetString("clip.format") }
