package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sync/atomic"
	"syscall"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/sells-group/agreement-cli/internal/generate"
	"github.com/sells-group/agreement-cli/internal/model"
)

var (
	batchInput  string
	batchOutDir string
	batchLimit  int
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Generate service agreements for a JSON array of agreements",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		data, err := readInput(cmd.InOrStdin(), batchInput)
		if err != nil {
			return err
		}
		agreements, err := readAgreements(data)
		if err != nil {
			return err
		}

		env, err := initGenerator()
		if err != nil {
			return err
		}
		defer env.Close()

		if err := os.MkdirAll(batchOutDir, 0755); err != nil {
			return eris.Wrapf(err, "create output dir %s", batchOutDir)
		}

		ext := env.outputExt()
		sum, err := processBatch(ctx, agreements, batchLimit, cfg.Batch.MaxConcurrent, env.Generator.Generate,
			func(i int, res *generate.Result) error {
				path := filepath.Join(batchOutDir, outputName(i, res, ext))
				return eris.Wrapf(os.WriteFile(path, res.Output, 0644), "write %s", path)
			})
		if err != nil {
			return err
		}
		if sum.Failed > 0 {
			return eris.Errorf("batch: %d of %d agreements failed", sum.Failed, sum.Failed+sum.Succeeded)
		}
		return nil
	},
}

func init() {
	batchCmd.Flags().StringVarP(&batchInput, "input", "i", "-", "JSON file with an array of agreements, - for stdin")
	batchCmd.Flags().StringVarP(&batchOutDir, "out-dir", "o", "agreements", "directory for generated documents")
	batchCmd.Flags().IntVar(&batchLimit, "limit", 0, "max number of agreements to process (0 = all)")
	rootCmd.AddCommand(batchCmd)
}

// generateFunc is the callback signature for generating one agreement.
type generateFunc func(ctx context.Context, a model.Agreement) (*generate.Result, error)

// batchSummary counts batch outcomes.
type batchSummary struct {
	Succeeded int64
	Failed    int64
}

// outputName is unique per input position, so agreements that compose to the
// same document never share a file.
func outputName(i int, res *generate.Result, ext string) string {
	return fmt.Sprintf("%04d-%s-%s%s", i+1, res.Policy.BranchCode, res.Document.ID, ext)
}

// processBatch applies limit, then generates agreements concurrently. An
// individual failure is logged and counted without aborting the batch.
func processBatch(ctx context.Context, agreements []model.Agreement, limit, concurrency int, gen generateFunc, write func(int, *generate.Result) error) (batchSummary, error) {
	if len(agreements) == 0 {
		zap.L().Info("no agreements to process")
		return batchSummary{}, nil
	}

	if limit > 0 && len(agreements) > limit {
		agreements = agreements[:limit]
	}
	if concurrency < 1 {
		concurrency = 1
	}

	zap.L().Info("processing batch",
		zap.Int("agreements", len(agreements)),
		zap.Int("concurrency", concurrency),
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	var succeeded, failed atomic.Int64

	for i, a := range agreements {
		g.Go(func() error {
			log := zap.L().With(
				zap.Int("index", i),
				zap.String("branch_code", a.BranchCode.String()),
			)

			if err := gctx.Err(); err != nil {
				return err
			}

			res, err := gen(gctx, a)
			if err == nil {
				err = write(i, res)
			}
			if err != nil {
				failed.Add(1)
				log.Error("agreement generation failed", zap.Error(err))
				return nil // don't abort batch on individual failure
			}

			succeeded.Add(1)
			log.Info("agreement generated",
				zap.String("document_id", res.Document.ID),
				zap.Int("bytes", len(res.Output)),
			)
			return nil
		})
	}

	sum := func() batchSummary {
		return batchSummary{Succeeded: succeeded.Load(), Failed: failed.Load()}
	}
	if err := g.Wait(); err != nil {
		return sum(), err
	}

	s := sum()
	zap.L().Info("batch complete",
		zap.Int64("succeeded", s.Succeeded),
		zap.Int64("failed", s.Failed),
	)
	return s, nil
}
