package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	storagemanager "github.com/fatih-iver/Storage-Manager"
	"github.com/fatih-iver/Storage-Manager/records"
	"github.com/joho/godotenv"
)

const defaultEnvFile = ".env"

type Config struct {
	DataDir         string
	CatalogFile     string
	MaxPagesPerFile int
	InputFile       string
	OutputFile      string
}

// LoadConfig reads .env, then the environment, then the command line flags;
// later sources win. args are the command line without the program name.
func LoadConfig(args []string) (Config, error) {
	return Load(defaultEnvFile, args)
}

func Load(envFile string, args []string) (Config, error) {
	// a missing env file is fine, existing variables are never overridden
	_ = godotenv.Load(envFile)

	cfg := Config{
		DataDir:         getEnv("STORAGE_DIR", "."),
		CatalogFile:     getEnv("STORAGE_CATALOG_FILE", storagemanager.DefaultCatalogFileName),
		MaxPagesPerFile: records.DefaultMaxPagesPerFile,
	}
	if v := os.Getenv("STORAGE_MAX_PAGES_PER_FILE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("STORAGE_MAX_PAGES_PER_FILE: %w", err)
		}
		cfg.MaxPagesPerFile = n
	}

	fs := flag.NewFlagSet("storagemanager", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&cfg.DataDir, "dir", cfg.DataDir, "data directory")
	fs.StringVar(&cfg.CatalogFile, "catalog", cfg.CatalogFile, "catalog file name")
	fs.IntVar(&cfg.MaxPagesPerFile, "max-pages", cfg.MaxPagesPerFile, "pages per record file")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if cfg.MaxPagesPerFile <= 0 {
		return Config{}, fmt.Errorf("max pages per file must be positive, got %d", cfg.MaxPagesPerFile)
	}
	if fs.NArg() != 2 {
		return Config{}, errors.New("usage: storagemanager [flags] <input file> <output file>")
	}
	cfg.InputFile, cfg.OutputFile = fs.Arg(0), fs.Arg(1)
	return cfg, nil
}

func (c Config) Options() []storagemanager.Option {
	return []storagemanager.Option{
		storagemanager.WithCatalogFileName(c.CatalogFile),
		storagemanager.WithMaxPagesPerFile(c.MaxPagesPerFile),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
