package main

import (
	"go.uber.org/zap"

	"github.com/sells-group/agreement-cli/internal/branch"
	"github.com/sells-group/agreement-cli/internal/compose"
	"github.com/sells-group/agreement-cli/internal/generate"
	"github.com/sells-group/agreement-cli/internal/layout"
)

// generatorEnv holds the resolver, engine and generator used by the compose
// and batch commands.
type generatorEnv struct {
	Resolver  *branch.Resolver
	Engine    layout.Engine
	Generator *generate.Generator
}

// Close releases the layout engine's resources.
func (ge *generatorEnv) Close() {
	if c, ok := ge.Engine.(layout.Closer); ok {
		if err := c.Close(); err != nil {
			zap.L().Warn("close layout engine", zap.Error(err))
		}
	}
}

// outputExt is the file extension for the configured engine's output.
func (ge *generatorEnv) outputExt() string {
	if _, ok := ge.Engine.(*layout.ChromeEngine); ok {
		return ".pdf"
	}
	return ".html"
}

// initResolver builds a resolver over the compiled-in table, overlaid with
// branches.table_path when set.
func initResolver() (*branch.Resolver, error) {
	if cfg.Branches.TablePath == "" {
		return branch.NewResolver(nil), nil
	}
	t, err := branch.LoadTable(cfg.Branches.TablePath)
	if err != nil {
		return nil, err
	}
	zap.L().Debug("branch table loaded",
		zap.String("path", cfg.Branches.TablePath),
		zap.Int("branches", len(t.Branches)),
	)
	return branch.NewResolver(t), nil
}

// initGenerator validates config and wires the pipeline. Callers should
// defer env.Close().
func initGenerator() (*generatorEnv, error) {
	if err := cfg.Validate("compose"); err != nil {
		return nil, err
	}

	r, err := initResolver()
	if err != nil {
		return nil, err
	}
	c, err := compose.New(cfg.Compose)
	if err != nil {
		return nil, err
	}
	e, err := layout.New(cfg.Layout)
	if err != nil {
		return nil, err
	}

	return &generatorEnv{
		Resolver:  r,
		Engine:    e,
		Generator: generate.New(r, c, e),
	}, nil
}
