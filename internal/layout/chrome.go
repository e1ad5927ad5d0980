package layout

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/agreement-cli/internal/config"
	"github.com/sells-group/agreement-cli/internal/model"
	"github.com/sells-group/agreement-cli/internal/resilience"
)

const (
	letterWidth  = 8.5
	letterHeight = 11.0
)

// ChromeEngine prints the HTML engine's markup to PDF through headless
// Chrome. The browser is started or attached lazily and reused; each render
// uses its own page.
type ChromeEngine struct {
	html *HTMLEngine
	cfg  config.ChromeConfig

	// lifetime bounds the browser connection and any launched process. It is
	// cancelled by Close.
	lifetime context.Context
	stop     context.CancelFunc

	mu       sync.Mutex
	browser  *rod.Browser
	launcher *launcher.Launcher
}

// NewChromeEngine creates a ChromeEngine. Nothing is started until the
// first Render. The engine cannot be used after Close.
func NewChromeEngine(cfg config.ChromeConfig) *ChromeEngine {
	lifetime, stop := context.WithCancel(context.Background())
	return &ChromeEngine{html: NewHTMLEngine(), cfg: cfg, lifetime: lifetime, stop: stop}
}

// Render prints doc to PDF. Renders are serialized.
func (e *ChromeEngine) Render(ctx context.Context, doc *model.Document) ([]byte, error) {
	markup, err := e.html.Render(ctx, doc)
	if err != nil {
		return nil, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	browser, err := e.connectLocked(ctx)
	if err != nil {
		return nil, err
	}

	page, err := browser.Page(proto.TargetCreateTarget{URL: "about:blank"})
	if err != nil {
		return nil, eris.Wrap(err, "layout: open page")
	}
	defer page.Close() //nolint:errcheck

	p := page.Context(ctx).Timeout(e.timeout())
	if err := p.SetDocumentContent(string(markup)); err != nil {
		return nil, eris.Wrap(err, "layout: load markup")
	}
	if err := p.WaitLoad(); err != nil {
		return nil, eris.Wrap(err, "layout: wait for load")
	}

	m := doc.Margins
	r, err := p.PDF(&proto.PagePrintToPDF{
		PrintBackground:   true,
		PreferCSSPageSize: true,
		PaperWidth:        ptr(letterWidth),
		PaperHeight:       ptr(letterHeight),
		MarginTop:         ptr(m.Top),
		MarginBottom:      ptr(m.Bottom),
		MarginLeft:        ptr(m.Left),
		MarginRight:       ptr(m.Right),
	})
	if err != nil {
		return nil, eris.Wrap(err, "layout: print pdf")
	}
	out, err := io.ReadAll(r)
	if err != nil {
		return nil, eris.Wrap(err, "layout: read pdf stream")
	}

	zap.L().Debug("layout: pdf rendered",
		zap.String("document_id", doc.ID),
		zap.Int("bytes", len(out)),
	)
	return out, nil
}

// Close shuts down the browser if this engine started it.
func (e *ChromeEngine) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	var err error
	if e.browser != nil {
		err = e.browser.Close()
		e.browser = nil
	}
	if e.launcher != nil {
		e.launcher.Kill()
		e.launcher = nil
	}
	e.stop()
	return eris.Wrap(err, "layout: close browser")
}

func (e *ChromeEngine) connectLocked(ctx context.Context) (*rod.Browser, error) {
	if e.browser != nil {
		return e.browser, nil
	}

	b := resilience.DefaultBackoff()
	if e.cfg.ConnectAttempts > 0 {
		b.Attempts = e.cfg.ConnectAttempts
	}
	b.OnRetry = resilience.LogRetry("layout: connect to chrome")

	browser, err := resilience.DoVal(ctx, b, e.attach)
	if err != nil {
		return nil, err
	}
	e.browser = browser
	return browser, nil
}

// attach launches Chrome when no control URL is configured, then connects.
// It returns as soon as ctx is done, even if the connect is still pending.
func (e *ChromeEngine) attach(ctx context.Context) (*rod.Browser, error) {
	if err := ctx.Err(); err != nil {
		return nil, eris.Wrap(err, "layout: connect to chrome")
	}

	controlURL := e.cfg.ControlURL
	if controlURL == "" {
		l := launcher.New().Context(e.lifetime).Headless(true)
		if e.cfg.Bin != "" {
			l = l.Bin(e.cfg.Bin)
		}
		u, err := l.Launch()
		if err != nil {
			return nil, eris.Wrap(err, "layout: launch chrome")
		}
		e.launcher = l
		controlURL = u
	}

	b := rod.New().Context(e.lifetime).ControlURL(controlURL)
	connected := make(chan error, 1)
	go func() { connected <- b.Connect() }()

	var err error
	select {
	case err = <-connected:
	case <-ctx.Done():
		err = ctx.Err()
		go func() {
			if <-connected == nil {
				_ = b.Close()
			}
		}()
	}
	if err != nil {
		if e.launcher != nil {
			e.launcher.Kill()
			e.launcher = nil
		}
		return nil, eris.Wrap(err, "layout: connect to chrome")
	}

	zap.L().Info("layout: chrome connected", zap.String("control_url", controlURL))
	return b, nil
}

func (e *ChromeEngine) timeout() time.Duration {
	if e.cfg.TimeoutSecs <= 0 {
		return 30 * time.Second
	}
	return time.Duration(e.cfg.TimeoutSecs) * time.Second
}

func ptr(v float64) *float64 { return &v }
