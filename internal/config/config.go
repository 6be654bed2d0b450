package config

import "fmt"

type Config struct {
	Analyzer    AnalyzerConfig    `yaml:"analyzer"`
	FFmpeg      FFmpegConfig      `yaml:"ffmpeg"`
	Paths       PathsConfig       `yaml:"paths"`
	Logging     LoggingConfig     `yaml:"logging"`
	Performance PerformanceConfig `yaml:"performance"`
	Align       AlignConfig       `yaml:"align"`
	Gemini      GeminiConfig      `yaml:"gemini"`
}

// AnalyzerConfig points at the speech-recognition binary that returns word
// timestamps as JSON.
type AnalyzerConfig struct {
	BinaryPath string `yaml:"binary_path"`
	ModelPath  string `yaml:"model_path"`
	Language   string `yaml:"language"`
	Threads    int    `yaml:"threads"`
}

type FFmpegConfig struct {
	BinaryPath string `yaml:"binary_path"`
	ProbePath  string `yaml:"probe_path"`
	SampleRate int    `yaml:"sample_rate"`
}

type PathsConfig struct {
	Input    string `yaml:"input"`
	Output   string `yaml:"output"`
	Archived string `yaml:"archived"`
	Temp     string `yaml:"temp"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type PerformanceConfig struct {
	MaxConcurrent int `yaml:"max_concurrent"`
}

// AlignConfig bounds the aligner's candidate list; the nearest-match search is
// O(tokens × candidates). Zero means no bound.
type AlignConfig struct {
	MaxCandidates int `yaml:"max_candidates"`
}

type GeminiConfig struct {
	Model  string `yaml:"model"`
	APIKey string `yaml:"-"` // from GEMINI_API_KEY, never from the file
}

func (c *Config) Validate() error {
	if c.Analyzer.BinaryPath == "" {
		return fmt.Errorf("analyzer.binary_path is required")
	}
	if c.Analyzer.ModelPath == "" {
		return fmt.Errorf("analyzer.model_path is required")
	}
	if c.Paths.Input == "" {
		return fmt.Errorf("paths.input is required")
	}
	if c.Paths.Output == "" {
		return fmt.Errorf("paths.output is required")
	}

	if c.Analyzer.Language == "" {
		c.Analyzer.Language = "es"
	}
	if c.Analyzer.Threads == 0 {
		c.Analyzer.Threads = 4
	}
	if c.FFmpeg.BinaryPath == "" {
		c.FFmpeg.BinaryPath = "ffmpeg"
	}
	if c.FFmpeg.ProbePath == "" {
		c.FFmpeg.ProbePath = "ffprobe"
	}
	if c.FFmpeg.SampleRate == 0 {
		c.FFmpeg.SampleRate = 24000
	}
	if c.Paths.Archived == "" {
		c.Paths.Archived = "data/archived"
	}
	if c.Paths.Temp == "" {
		c.Paths.Temp = "data/temp"
	}
	if c.Performance.MaxConcurrent == 0 {
		c.Performance.MaxConcurrent = 2
	}
	if c.Gemini.Model == "" {
		c.Gemini.Model = "gemini-2.5-flash"
	}

	return nil
}
