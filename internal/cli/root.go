// Package cli implements the hanzi CLI commands.
package cli

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/wjiaha0/hanzi/internal/store"
)

var (
	dbPath     string
	formatFlag string

	logger = log.New(os.Stderr, "hanzi: ", 0)
)

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "hanzi",
	Short: "Track Chinese character study and review",
	Long:  "A local-first tracker for learning Chinese characters. Study items, review weak ones, keep a streak. SQLite-backed, single binary.",
}

func init() {
	cobra.OnInitialize(loadEnv)

	RootCmd.PersistentFlags().StringVarP(&dbPath, "db", "d", "", "Database path (default: $HANZI_DB or ~/.hanzi/hanzi.db)")
	RootCmd.PersistentFlags().StringVarP(&formatFlag, "format", "f", "", "Output format: json or text (default: $HANZI_FORMAT or json)")
}

// loadEnv reads .env from the working directory. A missing file is fine.
func loadEnv() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logger.Printf("load .env: %v", err)
	}
}

func getDBPath() string {
	if dbPath != "" {
		return dbPath
	}
	if env := os.Getenv("HANZI_DB"); env != "" {
		return env
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".hanzi", "hanzi.db")
}

func openStore() (*store.SQLiteStore, error) {
	return store.NewSQLiteStore(getDBPath())
}

func textOutput() bool {
	f := formatFlag
	if f == "" {
		f = os.Getenv("HANZI_FORMAT")
	}
	return f == "text"
}

func printJSON(v any) {
	b, _ := json.MarshalIndent(v, "", "  ")
	fmt.Println(string(b))
}

func exitErr(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	os.Exit(1)
}

// warn reports a failure that does not undo the command's effect.
func warn(msg string, err error) {
	fmt.Fprintf(os.Stderr, "warning: %s: %v\n", msg, err)
}
