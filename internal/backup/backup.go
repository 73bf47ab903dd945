// ABOUTME: Export and import of the whole wiki as a zstd-compressed JSON lines stream
// ABOUTME: Import either follows the new-article policy (skipping duplicates) or overwrites

package backup

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/goccy/go-json"
	"github.com/klauspost/compress/zstd"

	"github.com/2389/coven-wiki/internal/store"
	"github.com/2389/coven-wiki/internal/wiki"
)

// Record is one article in a backup stream.
type Record struct {
	Name string `json:"name"`
	Body string `json:"body"`
}

// Report summarizes an import.
type Report struct {
	Imported int
	Skipped  int // records whose name already existed, ignoring case
}

// Export writes every entry in s to w, in list order, and returns how many were written.
func Export(ctx context.Context, s store.Store, w io.Writer) (int, error) {
	names, err := s.ListEntries(ctx)
	if err != nil {
		return 0, fmt.Errorf("listing entries: %w", err)
	}

	zw, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return 0, fmt.Errorf("creating zstd writer: %w", err)
	}
	enc := json.NewEncoder(zw)

	count := 0
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			_ = zw.Close()
			return count, err
		}
		body, found, err := s.GetEntry(ctx, name)
		if err != nil {
			_ = zw.Close()
			return count, fmt.Errorf("reading entry %q: %w", name, err)
		}
		if !found {
			// removed between list and read
			continue
		}
		if err := enc.Encode(Record{Name: name, Body: body}); err != nil {
			_ = zw.Close()
			return count, fmt.Errorf("writing entry %q: %w", name, err)
		}
		count++
	}

	if err := zw.Close(); err != nil {
		return count, fmt.Errorf("flushing backup: %w", err)
	}
	return count, nil
}

// Import reads records from r into svc. Without overwrite each record is
// created through the new-article policy and existing names are skipped;
// with overwrite every record is saved under its exact name.
func Import(ctx context.Context, svc *wiki.Service, r io.Reader, overwrite bool) (Report, error) {
	var report Report

	zr, err := zstd.NewReader(r)
	if err != nil {
		return report, fmt.Errorf("creating zstd reader: %w", err)
	}
	defer zr.Close()

	dec := json.NewDecoder(zr)
	for n := 1; ; n++ {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		var rec Record
		if err := dec.Decode(&rec); err != nil {
			if errors.Is(err, io.EOF) {
				return report, nil
			}
			return report, fmt.Errorf("decoding record %d: %w", n, err)
		}

		if overwrite {
			err = svc.Store().SaveEntry(ctx, rec.Name, rec.Body)
		} else {
			err = svc.Create(ctx, rec.Name, rec.Body)
		}
		switch {
		case err == nil:
			report.Imported++
		case errors.Is(err, wiki.ErrDuplicateName):
			report.Skipped++
		default:
			return report, fmt.Errorf("importing record %d (%q): %w", n, rec.Name, err)
		}
	}
}
