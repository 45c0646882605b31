// Command fontctl drives a fontctx.Manager from the command line.
//
// It looks up the named engine in the fontctx registry, initializes a manager
// around it, applies a number of toggles and reports the state after each one.
// A custom -font or -lang builds an isolated native pool instead, using the
// engine name as its parser backend:
//
//	fontctl -engine gotext -toggles 3 -text "Hello" -v
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/fontctx"
	"github.com/gogpu/fontctx/native"
)

func main() {
	var (
		engine  = flag.String("engine", "ximage", "registered engine name (ximage, gotext)")
		font    = flag.String("font", "", "TTF/OTF font file (default: Go Regular)")
		lang    = flag.String("lang", "en", "BCP 47 language tag")
		toggles = flag.Int("toggles", 2, "number of toggles to apply after initialization")
		shared  = flag.Bool("shared", false, "do not claim the resource pool")
		text    = flag.String("text", "The quick brown fox", "text to measure while enabled")
		size    = flag.Float64("size", 16, "font size in pixels per em")
		verbose = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		fontctx.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	pool, err := openPool(*engine, *font, *lang)
	if err != nil {
		log.Fatalf("fontctl: %v", err)
	}
	if err := run(pool, *toggles, *shared, *text, *size); err != nil {
		log.Fatalf("fontctl: %v", err)
	}
}

// openPool resolves name through the engine registry when the font and
// language are left at their defaults, since registered factories take no
// configuration.
func openPool(name, font, lang string) (*native.Pool, error) {
	if font == "" && lang == "en" {
		e, err := fontctx.NewEngine(name)
		if err != nil {
			return nil, fmt.Errorf("%w (registered: %v)", err, fontctx.Engines())
		}
		pool, ok := e.(*native.Pool)
		if !ok {
			return nil, fmt.Errorf("engine %q is %T, want a native pool", name, e)
		}
		return pool, nil
	}

	opts := []native.PoolOption{
		native.WithParser(name),
		native.WithLanguage(lang),
	}
	if font != "" {
		opts = append(opts, native.WithFontFile(font))
	}
	return native.NewPool(opts...)
}

func run(pool *native.Pool, toggles int, shared bool, text string, size float64) error {

	var mopts []fontctx.Option
	if shared {
		mopts = append(mopts, fontctx.WithSharedPool())
	}
	m, err := fontctx.NewManager(pool, mopts...)
	if err != nil {
		return err
	}
	defer func() {
		if err := m.Close(); err != nil {
			log.Printf("fontctl: close: %v", err)
		}
	}()

	if err := m.Initialize(); err != nil {
		return err
	}
	report(m, pool, 0, text, size)

	for i := 1; i <= toggles; i++ {
		if err := m.Toggle(); err != nil {
			return fmt.Errorf("toggle %d: %w", i, err)
		}
		report(m, pool, i, text, size)
	}
	return nil
}

func report(m *fontctx.Manager, pool *native.Pool, step int, text string, size float64) {
	ctx, ok := m.Context()
	if !ok {
		fmt.Printf("%d: %s (outstanding=%d releases=%d)\n",
			step, m.State(), pool.Outstanding(), pool.Releases())
		return
	}

	fc := ctx.(*native.FontContext)
	fmt.Printf("%d: %s context=%d family=%q lang=%s width(%q@%g)=%.2f\n",
		step, m.State(), fc.ID(), fc.Family(), fc.Language(), text, size, fc.Measure(text, size))
}
