package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"pkg.jsn.cam/recordgen/internal/csvexport"
	"pkg.jsn.cam/recordgen/pkg/recordgen"
)

var (
	exportFlags       datasetFlags
	exportPages       int
	exportOut         string
	exportConcurrency int

	exportCmd = &cobra.Command{
		Use:     "export",
		Short:   "Write pages 1..N of a dataset to a CSV file",
		Example: `  recordgen export --region pl --errors 0.5 --seed 42 --pages 50 --out people.csv`,
		RunE:    runExport,
	}
)

func init() {
	exportFlags.register(exportCmd)
	exportCmd.Flags().IntVarP(&exportPages, "pages", "n", 1, "Number of pages to export")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "generated_data.csv", "Output file; - for stdout")
	exportCmd.Flags().IntVar(&exportConcurrency, "concurrency", 4, "Pages fetched in parallel")
}

func runExport(cmd *cobra.Command, args []string) error {
	var (
		w    io.Writer = os.Stdout
		file *os.File
	)
	if exportOut != "-" {
		// Rows go to a temp file in the target directory, renamed into place
		// only after every page was generated.
		f, err := os.CreateTemp(filepath.Dir(exportOut), ".recordgen-export-*.csv")
		if err != nil {
			return err
		}
		defer func() {
			f.Close()
			os.Remove(f.Name())
		}()
		file = f
		w = f
	}
	counter := &countingWriter{w: w}
	buf := bufio.NewWriter(counter)

	bar := progressbar.NewOptions(exportPages,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetDescription("generating pages"),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)

	start := time.Now()
	rows, err := csvexport.Export(cmd.Context(), exportFlags.source(), csvexport.Job{
		Region:      exportFlags.region,
		Errors:      exportFlags.errors,
		Seed:        exportFlags.seed,
		Pages:       exportPages,
		Concurrency: exportConcurrency,
	}, buf, func() { _ = bar.Add(1) })
	if err != nil {
		return err
	}
	if err := buf.Flush(); err != nil {
		return err
	}
	_ = bar.Finish()

	if file != nil {
		if err := file.Close(); err != nil {
			return err
		}
		if err := os.Rename(file.Name(), exportOut); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "wrote %s records (%s) to %s in %s\n",
			humanize.Comma(int64(rows)),
			humanize.Bytes(uint64(counter.n)),
			exportOut,
			time.Since(start).Round(time.Millisecond),
		)
	}

	logger.Debug("export finished", "rows", rows, "pages", exportPages, "page_size", recordgen.PageSize)
	return nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
