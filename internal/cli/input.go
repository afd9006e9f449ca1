package cli

import (
	"time"

	"github.com/katalvlaran/orienteer/internal/config"
)

// Input holds the flag values of every command.
type Input struct {
	configPath string
	logLevel   string
	logFormat  string
	storePath  string

	mapPath   string
	storedMap string
	budget    int64
	parallel  bool
	workers   int
	timeout   time.Duration
	dotPath   string
	record    bool

	shape     string
	size      int
	spawnRate float64
	seed      int64
	outPath   string
	saveAs    string

	format string
	limit  int

	cfg *config.Config
}
