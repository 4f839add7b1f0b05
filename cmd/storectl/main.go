// Command storectl is a command line front end for the store client.
//
//	storectl login --email admin@mail.com --password admin123
//	storectl products list --limit 10 --offset 0
//	storectl products update 3 --title "New Product 2.0"
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/mystore/store-client/internal/app"
	"github.com/mystore/store-client/internal/infrastructure/config"
	"github.com/mystore/store-client/pkg/logger"
)

const usage = `usage: storectl <command> [flags]

commands:
  login --email E --password P   log in and keep the session token
  logout                         forget the session token
  profile                        show the logged in account
  products list [--limit N --offset N] [--simple] [--category ID]
  products get <id>
  products create --title T --price P --description D --category ID --image URL...
  products update <id> [--title T] [--price P] [--description D] [--category ID] [--image URL...]
  products delete <id>
  position                       read the current position and print the map centre
`

var errUsage = errors.New("invalid usage")

func main() {
	os.Exit(execute(os.Args[1:]))
}

// execute runs one command and returns the process exit code. Deferred
// cleanup runs before main exits.
func execute(args []string) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	log := logger.Init(logger.Options{
		Level:     cfg.LogLevel,
		Pretty:    cfg.IsDevelopment(),
		Component: "storectl",
	})

	client, err := app.NewClient(ctx, cfg, log)
	if err != nil {
		log.Error().Err(err).Msg("failed to build client")
		return 1
	}
	defer client.Close()

	return exitCode(run(ctx, client, args, os.Stdout), os.Stderr)
}

func exitCode(err error, stderr io.Writer) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errUsage):
		fmt.Fprint(stderr, usage)
		return 2
	default:
		fmt.Fprintln(stderr, "error:", err)
		return 1
	}
}

func printJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
