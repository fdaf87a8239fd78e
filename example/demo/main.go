// Command demo wires a Person with journaled renames to a Postgres-backed
// journal store and runs a short rename/undo session, printing the journal
// entries it produced.
//
// It expects the Postgres instance from example/config to be running, or a
// YAML config file passed via -config with a "dsn" (and optional
// "table_name") entry.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mwolters/before-advice-go/example/config"
	"github.com/mwolters/before-advice-go/journal"
	"github.com/mwolters/before-advice-go/journal/postgresengine"
	"github.com/mwolters/before-advice-go/person"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML journal config (optional)")
	verbose := flag.Bool("verbose", false, "log journal store operations")
	flag.Parse()

	ctx := context.Background()

	pgxPool, storeOptions, err := connectFromFlags(ctx, *configPath, *verbose)
	if err != nil {
		log.Fatalf("Failed to set up the journal store: %v", err)
	}
	defer pgxPool.Close()

	journalStore, err := postgresengine.NewJournalStoreFromPGXPool(pgxPool, storeOptions...)
	if err != nil {
		log.Fatalf("Failed to create the journal store: %v", err)
	}

	p := person.BuildPerson("barak", "obama", person.JournalRenames(ctx, journalStore))
	fmt.Printf("initial:       %s\n", p.FullName())

	if _, err = p.Rename("Barak", "Obama"); err != nil {
		log.Fatalf("Rename failed: %v", err)
	}
	fmt.Printf("after rename:  %s\n", p.FullName())

	if _, err = p.Rename("Barack", "Obama"); err != nil {
		log.Fatalf("Rename failed: %v", err)
	}
	fmt.Printf("after rename:  %s\n", p.FullName())

	if _, err = p.Undo(); err != nil {
		log.Fatalf("Undo failed: %v", err)
	}
	fmt.Printf("after undo:    %s\n", p.FullName())

	printJournaledRenames(ctx, journalStore, p)
}

func connectFromFlags(ctx context.Context, configPath string, verbose bool) (
	*pgxpool.Pool,
	[]postgresengine.Option,
	error,
) {
	var storeOptions []postgresengine.Option
	if verbose {
		storeOptions = append(storeOptions, postgresengine.WithLogger(slog.New(slog.NewTextHandler(os.Stderr, nil))))
	}

	if configPath == "" {
		pgxPool, err := pgxpool.NewWithConfig(ctx, config.PostgresPGXPoolTestConfig())
		if err != nil {
			return nil, nil, err
		}

		return pgxPool, storeOptions, nil
	}

	journalConfig, err := config.LoadJournalConfig(configPath)
	if err != nil {
		return nil, nil, err
	}

	if journalConfig.TableName != "" {
		storeOptions = append(storeOptions, postgresengine.WithTableName(journalConfig.TableName))
	}

	pgxPool, err := pgxpool.New(ctx, journalConfig.DSN)
	if err != nil {
		return nil, nil, err
	}

	return pgxPool, storeOptions, nil
}

func printJournaledRenames(ctx context.Context, journalStore postgresengine.JournalStore, p *person.Person) {
	filter := journal.BuildEntryFilter().
		Matching().
		AnySubjectTypeOf(person.SubjectType).
		AnySubjectIDOf(p.ID().String()).
		AnyOperationOf(person.OperationRename).
		Finalize()

	entries, err := journalStore.Query(ctx, filter)
	if err != nil {
		log.Fatalf("Querying the journal failed: %v", err)
	}

	fmt.Printf("\njournaled renames for %s:\n", p.ID())
	for _, entry := range entries {
		fmt.Printf("  %s  %s  before=%s  args=%s\n",
			entry.RecordedAt.Format("2006-01-02 15:04:05.000"),
			entry.Operation,
			string(entry.BeforeJSON),
			string(entry.ArgsJSON),
		)
	}
}
