package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"nutriscan/internal"
	"nutriscan/internal/config"
	"nutriscan/internal/ingest"
	"nutriscan/internal/pipeline"
	"nutriscan/internal/render"
	"nutriscan/internal/storage"
	"nutriscan/internal/watcher"
)

func main() {
	cfg, err := config.Load()
	must(err)

	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	cmd := os.Args[1]

	if cmd == "run" {
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		input := fs.String("input", "", "pdf file or directory of pdf files")
		output := fs.String("output", "", "output xlsx path")
		_ = fs.Parse(os.Args[2:])
		if *input == "" || *output == "" {
			must(fmt.Errorf("--input and --output are required"))
		}
		paths, err := collectPDFs(*input)
		must(err)
		if len(paths) == 0 {
			must(fmt.Errorf("no pdf files found under %s", *input))
		}

		result := pipeline.ProcessBatch(paths, render.NewPDFRenderer())
		for _, failure := range result.Failures {
			fmt.Fprintf(os.Stderr, "skipped %s: %v\n", failure.Path, failure.Err)
		}
		if len(result.Records) == 0 {
			must(fmt.Errorf("no documents could be processed"))
		}
		must(pipeline.ExportRecordsToXLSX(result.Records, cfg.ExportSheet, *output))
		fmt.Printf("run done documents=%d skipped=%d output=%s\n", len(result.Records), len(result.Failures), *output)
		return
	}

	db, err := storage.Open(cfg.DBPath)
	must(err)
	defer db.Close()

	switch cmd {
	case "docs:scan":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		dir := fs.String("dir", cfg.InputDir, "directory with pdf reports")
		_ = fs.Parse(os.Args[2:])
		scanner := ingest.NewScanService(db)
		result, err := scanner.ScanDir(*dir)
		must(err)
		fmt.Printf("scan done dir=%s found=%d registered=%d\n", *dir, result.Found, result.Registered)
	case "docs:process":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		path := fs.String("path", "", "specific document path")
		batch := fs.Int("batch", 20, "batch size")
		_ = fs.Parse(os.Args[2:])
		processor := pipeline.NewProcessingService(db, render.NewPDFRenderer())
		if strings.TrimSpace(*path) != "" {
			res, err := processor.ProcessByPath(*path)
			must(err)
			if res.Failed {
				fmt.Printf("document id=%d failed, see stored error\n", res.DocumentID)
				return
			}
			fmt.Printf("processed document id=%d fields=%d\n", res.DocumentID, res.Extracted)
			return
		}
		processed, failed, err := processor.ProcessPending(*batch)
		must(err)
		fmt.Printf("processed pending documents=%d failed=%d\n", processed, failed)
	case "export:xlsx":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		out := fs.String("out", "", "output xlsx path")
		_ = fs.Parse(os.Args[2:])
		if strings.TrimSpace(*out) == "" {
			must(fmt.Errorf("--out is required"))
		}
		_, records, err := db.ListRecords(string(internal.StatusProcessed), string(internal.StatusExported))
		must(err)
		if len(records) == 0 {
			must(fmt.Errorf("no processed documents to export"))
		}
		must(pipeline.ExportRecordsToXLSX(records, cfg.ExportSheet, *out))
		fmt.Printf("exported %d documents to %s\n", len(records), *out)
	case "watch":
		s := watcher.NewService(db, cfg)
		must(s.Run(context.Background()))
	default:
		usage()
		os.Exit(1)
	}
}

func collectPDFs(input string) ([]string, error) {
	info, err := os.Stat(input)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []string{input}, nil
	}

	entries, err := os.ReadDir(input)
	if err != nil {
		return nil, err
	}
	paths := []string{}
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".pdf") {
			continue
		}
		paths = append(paths, filepath.Join(input, entry.Name()))
	}
	sort.Strings(paths)
	return paths, nil
}

func usage() {
	fmt.Println("usage: nutriscan <command>")
	fmt.Println("commands:")
	fmt.Println("  docs:scan --dir=./reports")
	fmt.Println("  docs:process [--path=./reports/a.pdf] [--batch=20]")
	fmt.Println("  export:xlsx --out=./out/result.xlsx")
	fmt.Println("  run --input=<pdf|dir> --output=./out/result.xlsx")
	fmt.Println("  watch")
}

func must(err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
