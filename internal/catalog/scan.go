package catalog

import (
	"context"
	"fmt"
	"runtime"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"vcfmeta/internal/vcf"
)

// ScanFiles parses the headers of the given files concurrently and returns
// the scans in input order. workers <= 0 means one per CPU. Each file is
// parsed into its own store, so no locking is needed; per-file header
// warnings are routed to the shared logger.
func ScanFiles(ctx context.Context, paths []string, workers int, logger *zap.Logger) ([]FileScan, error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	scans := make([]FileScan, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			scan, err := scanFile(path, logger)
			if err != nil {
				return fmt.Errorf("scan %s: %w", path, err)
			}
			scans[i] = scan
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return scans, nil
}

func scanFile(path string, logger *zap.Logger) (FileScan, error) {
	fp, err := StatFile(path)
	if err != nil {
		return FileScan{}, err
	}

	f, err := vcf.Open(path, vcf.WithLogger(logger.With(zap.String("file", path))))
	if err != nil {
		return FileScan{}, err
	}
	defer f.Close()

	return FileScan{Fingerprint: fp, Meta: f.Meta(), Samples: f.SampleNames()}, nil
}

// IndexFiles scans the given files and upserts them into the catalog. Files
// whose fingerprints already match are skipped unless force is set. Writes
// stay on one goroutine; only the parsing fans out. Returns the number of
// files written.
func (s *Store) IndexFiles(ctx context.Context, paths []string, workers int, force bool, logger *zap.Logger) (int, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	pending := make([]string, 0, len(paths))
	for _, path := range paths {
		fp, err := StatFile(path)
		if err != nil {
			return 0, fmt.Errorf("stat %s: %w", path, err)
		}
		if !force {
			needs, err := s.NeedsIndex(fp)
			if err != nil {
				return 0, err
			}
			if !needs {
				logger.Debug("fingerprint unchanged, skipping", zap.String("file", path))
				continue
			}
		}
		pending = append(pending, path)
	}

	scans, err := ScanFiles(ctx, pending, workers, logger)
	if err != nil {
		return 0, err
	}
	for _, scan := range scans {
		if err := s.WriteFileScan(scan); err != nil {
			return 0, fmt.Errorf("write %s: %w", scan.Fingerprint.Path, err)
		}
		logger.Info("indexed file",
			zap.String("file", scan.Fingerprint.Path),
			zap.Int("records", scan.Meta.Len()))
	}
	return len(scans), nil
}
