package config

type Config struct {
	ImportScope      string   `yaml:"import-scope"`
	MarkerFile       string   `yaml:"marker-file"`
	SourceExtensions []string `yaml:"source-extensions"`
	Search           Search   `yaml:"search"`
}

type Search struct {
	Backend string `yaml:"backend"`
}

type Repository interface {
	Read(path string) (*Config, error)
	Write(path string, cfg *Config) error
}

// GetMarkerFile はエントリポイントを示すマーカーファイル名を返します。未設定の場合はデフォルト値を返します。
func (c *Config) GetMarkerFile() string {
	if c.MarkerFile == "" {
		return "index.ts"
	}
	return c.MarkerFile
}

// GetSourceExtensions は検索対象とするソースファイルの拡張子を返します。未設定の場合はデフォルト値を返します。
func (c *Config) GetSourceExtensions() []string {
	if len(c.SourceExtensions) == 0 {
		return []string{".ts"}
	}
	return c.SourceExtensions
}
