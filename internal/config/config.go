package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type Config struct {
	LogLevel string       `mapstructure:"log_level"`
	Paths    PathsConfig  `mapstructure:"paths"`
	TTS      TTSConfig    `mapstructure:"tts"`
	Export   ExportConfig `mapstructure:"export"`
}

type PathsConfig struct {
	OutputDir string `mapstructure:"output_dir"`
}

type TTSConfig struct {
	CLIPath        string   `mapstructure:"cli_path"`
	Lang           string   `mapstructure:"lang"`
	Format         string   `mapstructure:"format"`
	MaxChunkChars  int      `mapstructure:"max_chunk_chars"`
	ExtraArgs      []string `mapstructure:"extra_args"`
	TimeoutSeconds int      `mapstructure:"timeout_seconds"`
}

type ExportConfig struct {
	Overwrite   bool   `mapstructure:"overwrite"`
	AlbumArtist string `mapstructure:"album_artist"`
}

type LoadOptions struct {
	Cmd        flagBinder
	ConfigFile string
	Defaults   Config
}

type flagBinder interface {
	Flags() *pflag.FlagSet
}

func DefaultConfig() Config {
	return Config{
		LogLevel: "info",
		Paths: PathsConfig{
			OutputDir: defaultOutputDir(),
		},
		TTS: TTSConfig{
			CLIPath:        "gtts-cli",
			Lang:           "en",
			Format:         "mp3",
			MaxChunkChars:  100,
			ExtraArgs:      nil,
			TimeoutSeconds: 0,
		},
		Export: ExportConfig{
			Overwrite:   false,
			AlbumArtist: "bibtts",
		},
	}
}

// defaultOutputDir is the user's music folder, or the current directory
// when the home directory cannot be resolved.
func defaultOutputDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, "Music")
}

func RegisterFlags(fs *pflag.FlagSet, defaults Config) {
	fs.String("log-level", defaults.LogLevel, "Log level (debug|info|warn|error)")
	fs.String("paths-output-dir", defaults.Paths.OutputDir, "Directory for exported audio files")
	fs.String("tts-cli-path", defaults.TTS.CLIPath, "Path to the text-to-speech executable")
	fs.String("tts-lang", defaults.TTS.Lang, "Language code passed to the TTS command")
	fs.String("tts-format", defaults.TTS.Format, "Audio output format (mp3|wav)")
	fs.Int("tts-max-chunk-chars", defaults.TTS.MaxChunkChars, "Maximum characters per synthesis chunk")
	fs.StringSlice("tts-extra-args", defaults.TTS.ExtraArgs, "Extra TTS flags in key=value form")
	fs.Int("tts-timeout-seconds", defaults.TTS.TimeoutSeconds, "Per-record synthesis timeout in seconds (0 disables)")
	fs.Bool("export-overwrite", defaults.Export.Overwrite, "Overwrite existing audio files")
	fs.String("export-album-artist", defaults.Export.AlbumArtist, "Album artist written to ID3 tags")
}

func Load(opts LoadOptions) (Config, error) {
	v := viper.New()

	setDefaults(v, opts.Defaults)
	if opts.Cmd != nil {
		if err := v.BindPFlags(opts.Cmd.Flags()); err != nil {
			return Config{}, fmt.Errorf("bind flags: %w", err)
		}
	}
	registerAliases(v)

	v.SetEnvPrefix("BIBTTS")
	replacer := strings.NewReplacer("-", "_", ".", "_", "__", "_")
	v.SetEnvKeyReplacer(replacer)
	v.AutomaticEnv()

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	} else {
		v.SetConfigName("bibtts")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return Config{}, fmt.Errorf("read config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper, c Config) {
	v.SetDefault("log_level", c.LogLevel)
	v.SetDefault("paths.output_dir", c.Paths.OutputDir)
	v.SetDefault("tts.cli_path", c.TTS.CLIPath)
	v.SetDefault("tts.lang", c.TTS.Lang)
	v.SetDefault("tts.format", c.TTS.Format)
	v.SetDefault("tts.max_chunk_chars", c.TTS.MaxChunkChars)
	v.SetDefault("tts.extra_args", c.TTS.ExtraArgs)
	v.SetDefault("tts.timeout_seconds", c.TTS.TimeoutSeconds)
	v.SetDefault("export.overwrite", c.Export.Overwrite)
	v.SetDefault("export.album_artist", c.Export.AlbumArtist)
}

func registerAliases(v *viper.Viper) {
	v.RegisterAlias("log_level", "log-level")
	v.RegisterAlias("paths.output_dir", "paths-output-dir")
	v.RegisterAlias("tts.cli_path", "tts-cli-path")
	v.RegisterAlias("tts.lang", "tts-lang")
	v.RegisterAlias("tts.format", "tts-format")
	v.RegisterAlias("tts.max_chunk_chars", "tts-max-chunk-chars")
	v.RegisterAlias("tts.extra_args", "tts-extra-args")
	v.RegisterAlias("tts.timeout_seconds", "tts-timeout-seconds")
	v.RegisterAlias("export.overwrite", "export-overwrite")
	v.RegisterAlias("export.album_artist", "export-album-artist")
}
