// Package generate runs the resolve, compose and render pipeline for one
// agreement.
package generate

import (
	"context"
	"fmt"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/agreement-cli/internal/branch"
	"github.com/sells-group/agreement-cli/internal/compose"
	"github.com/sells-group/agreement-cli/internal/layout"
	"github.com/sells-group/agreement-cli/internal/model"
)

// RenderError wraps a layout engine failure. Renders are not retried.
type RenderError struct {
	DocumentID string
	BranchCode string
	Err        error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("generate: render document %s for %s: %v", e.DocumentID, e.BranchCode, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

// Result is one generated agreement.
type Result struct {
	Policy   model.ResolvedPolicy
	Document *model.Document
	Output   []byte
}

// Generator ties a resolver, a composer and a layout engine together.
type Generator struct {
	resolver *branch.Resolver
	composer *compose.Composer
	engine   layout.Engine
}

// New creates a Generator.
func New(r *branch.Resolver, c *compose.Composer, e layout.Engine) *Generator {
	return &Generator{resolver: r, composer: c, engine: e}
}

// Generate produces the rendered document for a. The branch comes from
// a.BranchCode and the state from a.StateCode, falling back to the branch's
// nominal state when the agreement carries none.
func (g *Generator) Generate(ctx context.Context, a model.Agreement) (*Result, error) {
	code := a.BranchCode.String()
	state := a.StateCode.String()
	if state == "" {
		if rec, ok := g.resolver.Branch(code); ok {
			state = rec.State
		}
	}

	var opts []branch.Option
	if a.CareState.Provided() {
		opts = append(opts, branch.WithCareRecipientState(a.CareState.String()))
	}
	policy := g.resolver.Resolve(code, state, opts...)

	doc, err := g.composer.Compose(a, policy)
	if err != nil {
		return nil, eris.Wrap(err, "generate: compose")
	}

	out, err := g.engine.Render(ctx, doc)
	if err != nil {
		return nil, &RenderError{DocumentID: doc.ID, BranchCode: policy.BranchCode, Err: err}
	}

	zap.L().Info("generate: agreement rendered",
		zap.String("document_id", doc.ID),
		zap.String("branch_code", policy.BranchCode),
		zap.String("state_code", policy.StateCode),
		zap.Int("sections", len(doc.Sections)),
		zap.Int("bytes", len(out)),
	)
	return &Result{Policy: policy, Document: doc, Output: out}, nil
}
