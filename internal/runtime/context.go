// Package runtime provides application runtime context for NotePal.
package runtime

import (
	"os"

	"github.com/notepal/notepal/internal/output"
	"github.com/notepal/notepal/internal/repository"
	"github.com/notepal/notepal/internal/storage"
)

// Context holds the application runtime context.
type Context struct {
	DB        *storage.DB
	Docs      *storage.DocumentStore
	Repo      *repository.Repository
	Formatter *output.Formatter

	// Key-value repositories
	WebhookRepo *storage.WebhookRepo
	CacheRepo   *storage.CacheRepo

	// Debug mode
	Debug bool
}

// Options configures the runtime context.
type Options struct {
	DBPath    string
	InMemory  bool
	Format    output.Format
	ColorMode output.ColorMode
	Debug     bool
}

// DefaultOptions returns default runtime options.
func DefaultOptions() Options {
	return Options{
		DBPath:    storage.DefaultPath(),
		InMemory:  false,
		Format:    output.FormatCLI,
		ColorMode: output.ColorAuto,
		Debug:     false,
	}
}

// New creates a new runtime context.
func New(opts Options) (*Context, error) {
	// Check for environment variable override
	if envPath := os.Getenv("NOTEPAL_DATABASE"); envPath != "" {
		if envPath == ":memory:" {
			opts.InMemory = true
		} else {
			opts.DBPath = envPath
		}
	}

	// Open database
	db, err := storage.Open(storage.Options{
		Path:     opts.DBPath,
		InMemory: opts.InMemory,
	})
	if err != nil {
		return nil, err
	}

	// Load the document and build the repository over it
	docs := storage.NewDocumentStore(db)
	repo, err := repository.New(docs)
	if err != nil {
		db.Close()
		return nil, err
	}

	// Create formatter
	formatter := output.NewFormatter()
	formatter.Format = opts.Format
	formatter.ColorMode = opts.ColorMode

	return &Context{
		DB:          db,
		Docs:        docs,
		Repo:        repo,
		Formatter:   formatter,
		WebhookRepo: storage.NewWebhookRepo(db),
		CacheRepo:   storage.NewCacheRepo(db),
		Debug:       opts.Debug,
	}, nil
}

// Close closes the runtime context. Safe to call more than once.
func (c *Context) Close() error {
	if c.DB == nil {
		return nil
	}
	err := c.DB.Close()
	c.DB = nil
	return err
}

// CLIFormatter returns a CLI formatter.
func (c *Context) CLIFormatter() *output.CLIFormatter {
	return output.NewCLIFormatter(c.Formatter)
}

// JSONFormatter returns a JSON formatter.
func (c *Context) JSONFormatter() *output.JSONFormatter {
	return output.NewJSONFormatter(c.Formatter)
}

// IsJSON returns true if output format is JSON.
func (c *Context) IsJSON() bool {
	return c.Formatter.Format == output.FormatJSON
}

// IsCLI returns true if output format is CLI.
func (c *Context) IsCLI() bool {
	return c.Formatter.Format == output.FormatCLI
}

// Debugf prints debug output if debug mode is enabled.
func (c *Context) Debugf(format string, args ...interface{}) {
	if c.Debug {
		c.Formatter.Printf("[DEBUG] "+format+"\n", args...)
	}
}
