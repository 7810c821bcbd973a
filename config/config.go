package config

import (
	"errors"
	"log/slog"
	"os"
	"path"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Env             string         `mapstructure:"env"`
	LogLevel        string         `mapstructure:"log_level"`
	LogType         string         `mapstructure:"log_type"`
	Version         string         `mapstructure:"version"`
	Language        string         `mapstructure:"language"`
	LlmsTxtFormat   string         `mapstructure:"llms_txt_format"`
	Site            *SiteConfig    `mapstructure:"site"`
	CrawlerSettings *CrawlerConfig `mapstructure:"crawler"`
	ScoringSettings *ScoringConfig `mapstructure:"scoring"`
	OutputSettings  *OutputConfig  `mapstructure:"output"`
	DeploySettings  *DeployConfig  `mapstructure:"deploy"`
	ServeSettings   *ServeConfig   `mapstructure:"serve"`
}

// SiteConfig is the portfolio content every generator consumes.
type SiteConfig struct {
	Name        string       `mapstructure:"name"`
	Author      string       `mapstructure:"author"`
	JobTitle    string       `mapstructure:"job_title"`
	Description string       `mapstructure:"description"`
	BaseURL     string       `mapstructure:"base_url"`
	Email       string       `mapstructure:"email"`
	Location    string       `mapstructure:"location"`
	Skills      []string     `mapstructure:"skills"`
	Social      []SocialLink `mapstructure:"social"`
	Projects    []Project    `mapstructure:"projects"`
	Experience  []Experience `mapstructure:"experience"`
	FAQ         []FAQEntry   `mapstructure:"faq"`
	Pages       []Page       `mapstructure:"pages"`
}

type SocialLink struct {
	Platform string `mapstructure:"platform"`
	URL      string `mapstructure:"url"`
}

type Project struct {
	Title       string   `mapstructure:"title"`
	Description string   `mapstructure:"description"`
	URL         string   `mapstructure:"url"`
	Tech        []string `mapstructure:"tech"`
	Year        int      `mapstructure:"year"`
}

type Experience struct {
	Role        string `mapstructure:"role"`
	Company     string `mapstructure:"company"`
	Description string `mapstructure:"description"`
	Start       string `mapstructure:"start"`
	End         string `mapstructure:"end"`
}

type FAQEntry struct {
	Question string `mapstructure:"question"`
	Answer   string `mapstructure:"answer"`
}

type Page struct {
	Path     string  `mapstructure:"path"`
	Title    string  `mapstructure:"title"`
	Priority float64 `mapstructure:"priority"`
}

type CrawlerConfig struct {
	NavigationTimeout time.Duration `mapstructure:"navigation_timeout"`
	Screenshots       bool          `mapstructure:"screenshots"`
	ChromeBin         string        `mapstructure:"chrome_bin"`
	RobotsCacheTTL    time.Duration `mapstructure:"robots_cache_ttl"`
}

// ScoringConfig keeps the rubric constants adjustable. The defaults reproduce
// the historical point values exactly.
type ScoringConfig struct {
	MinTitleLength        int           `mapstructure:"min_title_length"`
	TitlePenalty          int           `mapstructure:"title_penalty"`
	MinMetaLength         int           `mapstructure:"min_meta_length"`
	MetaPenalty           int           `mapstructure:"meta_penalty"`
	MissingH1Penalty      int           `mapstructure:"missing_h1_penalty"`
	MultipleH1Penalty     int           `mapstructure:"multiple_h1_penalty"`
	MinParagraphs         int           `mapstructure:"min_paragraphs"`
	ParagraphPenalty      int           `mapstructure:"paragraph_penalty"`
	StructuredDataPenalty int           `mapstructure:"structured_data_penalty"`
	AltPenaltyPerImage    int           `mapstructure:"alt_penalty_per_image"`
	AltPenaltyCap         int           `mapstructure:"alt_penalty_cap"`
	SlowLoadThreshold     time.Duration `mapstructure:"slow_load_threshold"`
	SlowLoadPenalty       int           `mapstructure:"slow_load_penalty"`
	CommonIssueThreshold  int           `mapstructure:"common_issue_threshold"`
	PassThreshold         int           `mapstructure:"pass_threshold"`
}

type OutputConfig struct {
	PublicDir     string `mapstructure:"public_dir"`
	DataDir       string `mapstructure:"data_dir"`
	ReportDir     string `mapstructure:"report_dir"`
	ScreenshotDir string `mapstructure:"screenshot_dir"`
}

type DeployConfig struct {
	Platform string    `mapstructure:"platform"`
	S3       *S3Config `mapstructure:"s3"`
}

type S3Config struct {
	AwsAccessKey    string `mapstructure:"aws_access_key"`
	AwsSecretKey    string `mapstructure:"aws_secret_key"`
	AwsBaseEndpoint string `mapstructure:"aws_base_endpoint"`
	Region          string `mapstructure:"region"`
	BucketName      string `mapstructure:"bucket_name"`
	KeyPrefix       string `mapstructure:"key_prefix"`
}

type ServeConfig struct {
	Port string `mapstructure:"port"`
}

// MustLoad reads foliokit.yaml from the working directory. A missing file is
// not an error: the compiled-in defaults keep the crawler commands usable
// outside a scaffolded project. An unreadable or malformed file is fatal.
func MustLoad() *Config {
	viper.AddConfigPath(path.Join("."))
	viper.SetConfigName("foliokit")
	viper.SetConfigType("yaml")
	viper.AutomaticEnv()

	err := viper.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return Default()
		}
		slog.Error("can't initialize config file.", slog.String("err", err.Error()))
		os.Exit(1)
	}

	cfg := Default()
	if err := viper.Unmarshal(cfg); err != nil {
		slog.Error("error unmarshalling viper config.", slog.String("err", err.Error()))
		os.Exit(1)
	}

	return cfg
}

// Default returns the configuration used when no project file exists.
func Default() *Config {
	return &Config{
		Env:           "local",
		LogLevel:      "info",
		LogType:       "text",
		Version:       "1.0.0",
		Language:      "en",
		LlmsTxtFormat: "markdown",
		Site: &SiteConfig{
			Pages: []Page{{Path: "/", Title: "Home", Priority: 1.0}},
		},
		CrawlerSettings: &CrawlerConfig{
			NavigationTimeout: 30 * time.Second,
			RobotsCacheTTL:    30 * time.Minute,
		},
		ScoringSettings: DefaultScoring(),
		OutputSettings: &OutputConfig{
			PublicDir:     "public",
			DataDir:       "src/data",
			ReportDir:     "crawler-reports",
			ScreenshotDir: "crawler-reports/screenshots",
		},
		DeploySettings: &DeployConfig{Platform: "vercel"},
		ServeSettings:  &ServeConfig{Port: "4173"},
	}
}

// DefaultScoring reproduces the historical rubric point values.
func DefaultScoring() *ScoringConfig {
	return &ScoringConfig{
		MinTitleLength:        10,
		TitlePenalty:          15,
		MinMetaLength:         50,
		MetaPenalty:           10,
		MissingH1Penalty:      15,
		MultipleH1Penalty:     5,
		MinParagraphs:         3,
		ParagraphPenalty:      10,
		StructuredDataPenalty: 8,
		AltPenaltyPerImage:    2,
		AltPenaltyCap:         10,
		SlowLoadThreshold:     3 * time.Second,
		SlowLoadPenalty:       5,
		CommonIssueThreshold:  2,
		PassThreshold:         80,
	}
}
