package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"go-bakery-backend/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

// Maintenance tool for the database file. The server should be stopped while
// this runs; SQLite in WAL mode does not take kindly to two writers copying
// the file out from under each other.
//
// Usage:
//
//	backup -db bakery.db backup [dest-dir]
//	backup -db bakery.db restore <archive>
//	backup -db bakery.db dump <table>
//	backup -db bakery.db tables
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	defaultPath := os.Getenv("BAKERY_DB_PATH")
	if defaultPath == "" {
		defaultPath = "bakery.db"
	}
	dbPath := flag.String("db", defaultPath, "path to the database file")
	flag.Parse()

	if flag.NArg() < 1 {
		usage()
	}

	var err error
	switch flag.Arg(0) {
	case "backup":
		destDir := "."
		if flag.NArg() > 1 {
			destDir = flag.Arg(1)
		}
		err = runBackup(*dbPath, destDir)
	case "restore":
		if flag.NArg() < 2 {
			usage()
		}
		err = runRestore(*dbPath, flag.Arg(1))
	case "dump":
		if flag.NArg() < 2 {
			usage()
		}
		err = runDump(*dbPath, flag.Arg(1))
	case "tables":
		for _, t := range database.Tables() {
			fmt.Println(t)
		}
	default:
		usage()
	}
	if err != nil {
		log.Fatal(err)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: backup [-db path] backup [dest-dir] | restore <archive> | dump <table> | tables")
	os.Exit(2)
}

// runBackup opens the database (migrating it if needed, so we never archive a
// half-migrated file), closes the handle to flush the WAL, then copies the
// file to a uniquely named archive.
func runBackup(dbPath, destDir string) error {
	store, err := database.Open(dbPath)
	if err != nil {
		return err
	}
	if err := store.Close(); err != nil {
		return err
	}

	archive := filepath.Join(destDir, fmt.Sprintf("bakery-%s.db", uuid.New().String()))
	if err := copyFile(store.Path(), archive); err != nil {
		return err
	}
	log.Println("Backup written to", archive)
	return nil
}

// runRestore replaces the database file with the archive and then opens it,
// which migrates an older archive forward and verifies the file is usable.
func runRestore(dbPath, archive string) error {
	if _, err := os.Stat(archive); err != nil {
		return fmt.Errorf("archive not readable: %w", err)
	}
	if err := copyFile(archive, dbPath); err != nil {
		return err
	}
	store, err := database.Open(dbPath)
	if err != nil {
		return fmt.Errorf("restored file failed to open: %w", err)
	}
	defer store.Close()
	log.Println("Restored", dbPath, "from", archive)
	return nil
}

func runDump(dbPath, table string) error {
	store, err := database.Open(dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	rows, err := store.QueryTable(table)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(rows)
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
