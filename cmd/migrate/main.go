package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/Abros3006/business-tracker/internal/infra/persistence/migrations"

	"github.com/pkg/errors"
)

// Supported subcommands:
// - up:      Apply every pending migration
// - down:    Roll back N migrations
// - version: Print the current schema version

const defaultMigrationsPath = "./migrations"

func main() {
	upCmd := flag.NewFlagSet("up", flag.ExitOnError)
	downCmd := flag.NewFlagSet("down", flag.ExitOnError)
	versionCmd := flag.NewFlagSet("version", flag.ExitOnError)

	upPath := upCmd.String("path", "", "Directory holding the .sql migrations (default migrations.path or ./migrations)")
	downPath := downCmd.String("path", "", "Directory holding the .sql migrations (default migrations.path or ./migrations)")
	downSteps := downCmd.Int("steps", 1, "Number of migrations to roll back")
	versionPath := versionCmd.String("path", "", "Directory holding the .sql migrations (default migrations.path or ./migrations)")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	flags := migrateFlags{
		Up:      pathFlags{cmd: upCmd, path: upPath},
		Down:    downFlags{cmd: downCmd, path: downPath, steps: downSteps},
		Version: pathFlags{cmd: versionCmd, path: versionPath},
	}

	if err := runSubcommand(&flags); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type migrateFlags struct {
	Up      pathFlags
	Down    downFlags
	Version pathFlags
}

type pathFlags struct {
	cmd  *flag.FlagSet
	path *string
}

type downFlags struct {
	cmd   *flag.FlagSet
	path  *string
	steps *int
}

func runSubcommand(flags *migrateFlags) error {
	switch os.Args[1] {
	case "up":
		return handleUp(flags)
	case "down":
		return handleDown(flags)
	case "version":
		return handleVersion(flags)
	default:
		printUsage()

		return errors.New("unknown subcommand")
	}
}

func handleUp(flags *migrateFlags) error {
	if err := flags.Up.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse up flags")
	}

	return withDB(*flags.Up.path, func(db *database) error {
		if err := migrations.Run(db.sql, db.path); err != nil {
			return err
		}
		fmt.Println("Migrations applied")

		return nil
	})
}

func handleDown(flags *migrateFlags) error {
	if err := flags.Down.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse down flags")
	}

	if *flags.Down.steps < 1 {
		return errors.New("--steps must be at least 1")
	}

	return withDB(*flags.Down.path, func(db *database) error {
		if err := migrations.Down(db.sql, db.path, *flags.Down.steps); err != nil {
			return err
		}
		fmt.Printf("Rolled back %d migration(s)\n", *flags.Down.steps)

		return nil
	})
}

func handleVersion(flags *migrateFlags) error {
	if err := flags.Version.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse version flags")
	}

	return withDB(*flags.Version.path, func(db *database) error {
		version, dirty, err := migrations.Version(db.sql, db.path)
		if err != nil {
			return err
		}
		fmt.Printf("version=%d dirty=%t\n", version, dirty)

		return nil
	})
}

func printUsage() {
	fmt.Println("Usage: migrate <command> [options]")
	fmt.Println("")
	fmt.Println("Commands:")
	fmt.Println("  up         Apply every pending migration")
	fmt.Println("  down       Roll back migrations (-steps N)")
	fmt.Println("  version    Print the current schema version")
	fmt.Println("")
	fmt.Println("Use 'migrate <command> -h' for more information about a command.")
}
