// sqldrill is an interactive terminal SQL trainer: it cycles through
// randomized exercises against a practice dataset, highlights the query as
// you type, runs it, and reveals a reference solution.
//
// Configuration (env vars, optionally from a .env file):
//
//	SQLDRILL_ENGINE=sqlite|postgres|mysql  (optional, defaults to sqlite)
//	DATABASE_URL=<dsn>                     (optional, bundled dataset if absent)
//
// Usage:
//
//	go run ./cmd/sqldrill
package main

import (
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"net/url"
	"os"
	"os/user"
	"strings"
	"time"

	"github.com/ergochat/readline"
	"github.com/joho/godotenv"

	"github.com/bawdo/sqldrill/editor"
	"github.com/bawdo/sqldrill/exercise"
	"github.com/bawdo/sqldrill/trainer"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Best-effort: a missing .env simply means plain environment variables.
	_ = godotenv.Load()

	rl, err := readline.NewFromConfig(&readline.Config{
		Prompt:          "[Config] ",
		InterruptPrompt: "^C",
		EOFPrompt:       "quit",
	})
	if err != nil {
		return fmt.Errorf("readline init: %w", err)
	}
	defer func() { _ = rl.Close() }()

	engine := loadEngine(rl)
	conn, err := openDataset(rl, engine)
	if err != nil {
		return fmt.Errorf("cannot open dataset: %w", err)
	}
	defer func() { _ = conn.close() }()

	fmt.Println()
	fmt.Println("sqldrill — practice SQL against a music-store dataset")
	if tables := conn.tables(); len(tables) > 0 {
		fmt.Printf("Dataset tables: %s\n", strings.Join(tables, ", "))
	}
	fmt.Println("In the editor: Alt+Enter or Ctrl+D runs the query, Ctrl+C quits,")
	fmt.Println("and typing 'hint', 'schema' or 'quit' on its own works too.")

	repo := exercise.NewStaticRepository(exercise.Catalog())
	rng := rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), uint64(os.Getpid())))
	machine, err := trainer.New(repo, conn, newComposer(), newPresenter(os.Stdout), &nextPrompter{rl: rl}, rng)
	if err != nil {
		return err
	}

	if err := machine.Run(); err != nil {
		return err
	}
	fmt.Println("\nGood session. See you next time.")
	return nil
}

// openDataset connects per configuration: an explicit DATABASE_URL wins,
// otherwise sqlite without a DSN gets the bundled in-memory dataset, and the
// other engines prompt for connection details.
func openDataset(rl *readline.Instance, engine string) (*dbConn, error) {
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		fmt.Printf("[Config] Connecting via DATABASE_URL (%s)...\n", sanitizeDSN(dsn))
		return connect(engine, dsn)
	}
	switch engine {
	case "sqlite":
		path := prompt(rl, "SQLite path (empty for the bundled dataset)", "")
		if path == "" {
			fmt.Println("[Config] Using the bundled practice dataset")
			return openPractice()
		}
		return connect(engine, path)
	case "mysql":
		return connect(engine, buildMySQLDSN(rl))
	default:
		return connect(engine, buildPostgresDSN(rl))
	}
}

func loadEngine(rl *readline.Instance) string {
	engine := strings.TrimSpace(strings.ToLower(os.Getenv("SQLDRILL_ENGINE")))
	if engine != "" {
		if !isValidEngine(engine) {
			fmt.Fprintf(os.Stderr, "Warning: invalid SQLDRILL_ENGINE=%q, defaulting to sqlite\n", engine)
			return "sqlite"
		}
		fmt.Printf("[Config] Engine: %s (from SQLDRILL_ENGINE)\n", engine)
		return engine
	}

	choice := prompt(rl, "Select engine (sqlite, postgres, mysql)", "sqlite")
	choice = strings.TrimSpace(strings.ToLower(choice))
	if !isValidEngine(choice) {
		fmt.Fprintf(os.Stderr, "Warning: unknown engine %q, defaulting to sqlite\n", choice)
		return "sqlite"
	}
	fmt.Printf("[Config] Engine: %s\n", choice)
	return choice
}

// prompt prints a label with an optional default and returns the user's
// input (or the default if they press enter).
func prompt(rl *readline.Instance, label, defaultVal string) string {
	if rl == nil {
		return defaultVal
	}
	if defaultVal != "" {
		rl.SetPrompt(fmt.Sprintf("[Config]   %s [%s]: ", label, defaultVal))
	} else {
		rl.SetPrompt(fmt.Sprintf("[Config]   %s: ", label))
	}
	defer rl.SetPrompt("[Config] ")
	line, err := rl.ReadLine()
	if err != nil {
		return defaultVal
	}
	val := strings.TrimSpace(line)
	if val == "" {
		return defaultVal
	}
	return val
}

func buildPostgresDSN(rl *readline.Instance) string {
	fmt.Println("[Config] PostgreSQL connection setup:")

	defaultUser := "postgres"
	if u, err := user.Current(); err == nil && u.Username != "" {
		defaultUser = u.Username
	}

	dbUser := prompt(rl, "User", defaultUser)
	dbPass := prompt(rl, "Password", "")
	host := prompt(rl, "Host", "localhost")
	port := prompt(rl, "Port", "5432")
	dbName := prompt(rl, "Database", dbUser)
	sslMode := prompt(rl, "SSL mode (disable/require/verify-full)", "disable")

	var userInfo *url.Userinfo
	if dbPass != "" {
		userInfo = url.UserPassword(dbUser, dbPass)
	} else {
		userInfo = url.User(dbUser)
	}
	u := &url.URL{
		Scheme:   "postgres",
		User:     userInfo,
		Host:     host + ":" + port,
		Path:     "/" + dbName,
		RawQuery: "sslmode=" + sslMode,
	}
	return u.String()
}

func buildMySQLDSN(rl *readline.Instance) string {
	fmt.Println("[Config] MySQL connection setup:")

	dbUser := prompt(rl, "User", "root")
	dbPass := prompt(rl, "Password", "")
	host := prompt(rl, "Host", "localhost")
	port := prompt(rl, "Port", "3306")
	dbName := prompt(rl, "Database", "")

	// Format: user:pass@tcp(host:port)/dbname
	var auth string
	if dbPass != "" {
		auth = dbUser + ":" + dbPass
	} else {
		auth = dbUser
	}
	return fmt.Sprintf("%s@tcp(%s:%s)/%s", auth, host, port, dbName)
}

func isValidEngine(engine string) bool {
	switch engine {
	case "postgres", "mysql", "sqlite":
		return true
	}
	return false
}

// composer adapts the tcell editor screen to the trainer's Composer
// interface, building the in-editor header from the exercise record.
type composer struct {
	screen *editor.Screen
}

func newComposer() *composer {
	return &composer{screen: editor.NewScreen(nil)}
}

func (c *composer) Compose(rec exercise.Record, seed string) (editor.Result, error) {
	header := wrapText(rec.Prompt, 76)
	header = append(header,
		fmt.Sprintf("[%s] tables: %s", rec.Difficulty, strings.Join(rec.Tables, ", ")))
	return c.screen.Compose(header, seed)
}

// wrapText breaks s into lines of at most width characters on word
// boundaries.
func wrapText(s string, width int) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return []string{""}
	}
	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		if len(line)+1+len(w) > width {
			lines = append(lines, line)
			line = w
			continue
		}
		line += " " + w
	}
	return append(lines, line)
}

// nextPrompter asks whether to continue after a completed exercise. EOF and
// interrupts count as quitting.
type nextPrompter struct {
	rl *readline.Instance
}

func (p *nextPrompter) Continue() (bool, error) {
	p.rl.SetPrompt("Press Enter for the next exercise, or type 'quit': ")
	defer p.rl.SetPrompt("[Config] ")
	line, err := p.rl.ReadLine()
	if errors.Is(err, readline.ErrInterrupt) || errors.Is(err, io.EOF) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "quit", "exit", "q", "n", "no":
		return false, nil
	}
	return true, nil
}
