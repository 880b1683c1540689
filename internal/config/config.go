package config

import (
	"github.com/spf13/viper"
)

type (
	Config struct {
		Storage
		Display
		Export
	}

	Storage struct {
		Backend      string // "json" (default) or "sqlite"
		LibraryFile  string
		DatabasePath string
	}
	Display struct {
		Style string // "list" or "table"
	}
	Export struct {
		Dir string // Default output directory for markdown export
	}
)

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("storage_backend", BackendJSON)
	v.SetDefault("library_file", DefaultLibraryFile)
	v.SetDefault("database_path", DefaultDatabasePath)
	v.SetDefault("display_style", "list")
	v.SetDefault("export_dir", "")

	return &Config{
		Storage: Storage{
			Backend:      v.GetString("STORAGE_BACKEND"),
			LibraryFile:  v.GetString("LIBRARY_FILE"),
			DatabasePath: v.GetString("DATABASE_PATH"),
		},
		Display: Display{
			Style: v.GetString("DISPLAY_STYLE"),
		},
		Export: Export{
			Dir: v.GetString("EXPORT_DIR"),
		},
	}
}
