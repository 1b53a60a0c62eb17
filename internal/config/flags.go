package config

import (
	"flag"
	"os"
	"time"

	"github.com/devmoodys/cls-node-final/internal/flagx"
)

// configFlags are the flag names consumed by this package, config-file flags
// included. Everything else in os.Args belongs to the subcommands.
var configFlags = []string{"-c", "-config", "-d", "-e", "-k", "-w", "-b", "-t"}

// StripCLIFlags returns args without the configuration flags, leaving the
// subcommand and its arguments for the caller to dispatch.
func StripCLIFlags(args []string) []string {
	return flagx.StripArgs(args, configFlags)
}

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-d string   PostgreSQL DSN
//	-e string   company directory base URL
//	-k string   company directory API key
//	-w int      directory request timeout, seconds
//	-b int      bcrypt work factor
//	-t int      temporary password validity, minutes
//
// Notes:
//   - The function first filters os.Args to only the flags it recognizes
//     using flagx.FilterArgs, avoiding collisions with subcommand flags.
//   - Duration flags are accepted as integers and converted to
//     time.Duration values.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-e", "-k", "-w", "-b", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.DirectoryBaseURL, "e", config.DirectoryBaseURL, "company directory base URL")
	fs.StringVar(&config.DirectoryAPIKey, "k", config.DirectoryAPIKey, "company directory API key")
	fs.IntVar(&config.BcryptCost, "b", config.BcryptCost, "bcrypt work factor")

	directoryTimeout := fs.Int("w", int(config.DirectoryTimeout.Seconds()), "directory request timeout (in seconds)")
	tempPasswordValidity := fs.Int("t", int(config.TempPasswordValidity.Minutes()), "temporary password validity (in minutes)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.DirectoryTimeout = time.Duration(*directoryTimeout) * time.Second
	config.TempPasswordValidity = time.Duration(*tempPasswordValidity) * time.Minute
}
