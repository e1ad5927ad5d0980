// Package layout renders composed documents into their final form.
package layout

import (
	"context"

	"github.com/rotisserie/eris"

	"github.com/sells-group/agreement-cli/internal/config"
	"github.com/sells-group/agreement-cli/internal/model"
)

// Engine turns a composed document into bytes ready for delivery.
type Engine interface {
	Render(ctx context.Context, doc *model.Document) ([]byte, error)
}

// Closer is implemented by engines that hold external resources.
type Closer interface {
	Close() error
}

// New returns the engine selected by cfg.Engine.
func New(cfg config.LayoutConfig) (Engine, error) {
	switch cfg.Engine {
	case "", "html":
		return NewHTMLEngine(), nil
	case "chrome":
		return NewChromeEngine(cfg.Chrome), nil
	default:
		return nil, eris.Errorf("layout: unknown engine %q", cfg.Engine)
	}
}
