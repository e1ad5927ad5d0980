package main

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/agreement-cli/internal/generate"
	"github.com/sells-group/agreement-cli/internal/model"
)

func batchAgreements(codes ...string) []model.Agreement {
	out := make([]model.Agreement, len(codes))
	for i, c := range codes {
		out[i] = model.Agreement{BranchCode: model.Text(c)}
	}
	return out
}

func fakeGenerate(_ context.Context, a model.Agreement) (*generate.Result, error) {
	if a.BranchCode == "broken" {
		return nil, errors.New("compose failed")
	}
	return &generate.Result{
		Policy:   model.ResolvedPolicy{BranchCode: a.BranchCode.String()},
		Document: &model.Document{ID: "doc-" + a.BranchCode.String(), BranchCode: a.BranchCode.String()},
		Output:   []byte("<html>"),
	}, nil
}

func TestProcessBatch_Empty(t *testing.T) {
	sum, err := processBatch(context.Background(), nil, 0, 4, fakeGenerate, func(int, *generate.Result) error {
		t.Fatal("write should not be called")
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, batchSummary{}, sum)
}

func TestProcessBatch_CountsFailures(t *testing.T) {
	var mu sync.Mutex
	var written []string

	sum, err := processBatch(context.Background(), batchAgreements("bahomecare", "broken", "gbhomecare"), 0, 2, fakeGenerate,
		func(_ int, res *generate.Result) error {
			mu.Lock()
			defer mu.Unlock()
			written = append(written, res.Document.ID)
			return nil
		})
	require.NoError(t, err)
	assert.Equal(t, int64(2), sum.Succeeded)
	assert.Equal(t, int64(1), sum.Failed)
	assert.ElementsMatch(t, []string{"doc-bahomecare", "doc-gbhomecare"}, written)
}

func TestProcessBatch_WriteFailureCounted(t *testing.T) {
	sum, err := processBatch(context.Background(), batchAgreements("bahomecare", "gbhomecare"), 0, 1, fakeGenerate,
		func(_ int, res *generate.Result) error {
			if res.Document.BranchCode == "gbhomecare" {
				return errors.New("disk full")
			}
			return nil
		})
	require.NoError(t, err)
	assert.Equal(t, int64(1), sum.Succeeded)
	assert.Equal(t, int64(1), sum.Failed)
}

func TestProcessBatch_Limit(t *testing.T) {
	var calls atomic.Int64
	gen := func(ctx context.Context, a model.Agreement) (*generate.Result, error) {
		calls.Add(1)
		return fakeGenerate(ctx, a)
	}

	sum, err := processBatch(context.Background(), batchAgreements("a", "b", "c", "d"), 2, 0, gen,
		func(int, *generate.Result) error { return nil })
	require.NoError(t, err)
	assert.Equal(t, int64(2), calls.Load())
	assert.Equal(t, int64(2), sum.Succeeded)
}

func TestProcessBatch_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := processBatch(ctx, batchAgreements("bahomecare"), 0, 1, fakeGenerate,
		func(int, *generate.Result) error { return nil })
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestProcessBatch_SameDocumentDistinctFiles(t *testing.T) {
	dir := t.TempDir()
	sameID := func(_ context.Context, a model.Agreement) (*generate.Result, error) {
		return &generate.Result{
			Policy:   model.ResolvedPolicy{BranchCode: "nvahomecare"},
			Document: &model.Document{ID: "c30428b1", BranchCode: "nvahomecare"},
			Output:   []byte("rate " + a.HourlyRate.String()),
		}, nil
	}

	agreements := []model.Agreement{
		{BranchCode: "nvahomecare", HourlyRate: "30"},
		{BranchCode: "nvahomecare", HourlyRate: "45"},
	}
	sum, err := processBatch(context.Background(), agreements, 0, 2, sameID,
		func(i int, res *generate.Result) error {
			return os.WriteFile(filepath.Join(dir, outputName(i, res, ".html")), res.Output, 0644)
		})
	require.NoError(t, err)
	assert.Equal(t, int64(2), sum.Succeeded)

	first, err := os.ReadFile(filepath.Join(dir, "0001-nvahomecare-c30428b1.html"))
	require.NoError(t, err)
	assert.Equal(t, "rate 30", string(first))

	second, err := os.ReadFile(filepath.Join(dir, "0002-nvahomecare-c30428b1.html"))
	require.NoError(t, err)
	assert.Equal(t, "rate 45", string(second))
}
