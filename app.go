package main

import (
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"

	"paymentdeck/config"
	"paymentdeck/deck"
	"paymentdeck/export"
)

// ErrTextMismatch is returned by verification when the file on disk does
// not carry the text of the deck that was built.
var ErrTextMismatch = errors.New("written deck text differs from built deck")

// App builds the payment-path deck and writes it with its companion files
type App struct {
	cfg       *config.Config
	logger    func(string)
	out       io.Writer
	ppt       *export.PPTWriter
	checklist *export.ChecklistWriter
	sheet     *export.BusinessSheetWriter
}

// NewApp creates an App. logger may be nil; out receives verify output.
func NewApp(cfg *config.Config, logger func(string), out io.Writer) *App {
	return &App{
		cfg:       cfg,
		logger:    logger,
		out:       out,
		ppt:       export.NewPPTWriter(logger),
		checklist: export.NewChecklistWriter(),
		sheet:     export.NewBusinessSheetWriter(),
	}
}

// Name returns the service name used in logs
func (a *App) Name() string {
	return "paydeck"
}

func (a *App) log(msg string) {
	if a.logger != nil {
		a.logger("[" + a.Name() + "] " + msg)
	}
}

// Run builds the deck, saves it and returns the path of the .pptx file
func (a *App) Run() (string, error) {
	d := deck.Build(a.cfg.Content())
	a.log(fmt.Sprintf("built deck %q: %d slides", d.Title, len(d.Slides)))

	path := a.cfg.Output.Path
	if err := a.ppt.Save(d, path); err != nil {
		return "", WrapError("deck", "save", err)
	}

	if p := a.cfg.Output.Checklist; p != "" {
		if err := a.checklist.Save(d, p); err != nil {
			return "", WrapError("checklist", "save", err)
		}
		a.log("wrote capture checklist " + p)
	}

	if p := a.cfg.Output.BusinessSheet; p != "" {
		title := a.cfg.Deck.Title + " 사업자 정보"
		if err := a.sheet.Save(title, a.cfg.Business, p); err != nil {
			return "", WrapError("business_sheet", "save", err)
		}
		a.log("wrote business sheet " + p)
	}

	if a.cfg.Verify {
		if err := a.verify(d, path); err != nil {
			return "", WrapError("deck", "verify", err)
		}
	}
	return path, nil
}

// verify reads path back and checks it carries the text of d
func (a *App) verify(d *deck.Deck, path string) error {
	got, err := export.ReadSlideTexts(path)
	if err != nil {
		return err
	}
	for i, texts := range got {
		fmt.Fprintf(a.out, "%2d. %s\n", i+1, strings.Join(texts, " | "))
	}

	want := d.Texts()
	if len(got) != len(want) {
		return fmt.Errorf("%w: %d slides on disk, %d built", ErrTextMismatch, len(got), len(want))
	}
	for i := range want {
		if !reflect.DeepEqual(normalizeEmpty(got[i]), normalizeEmpty(want[i])) {
			return fmt.Errorf("%w: slide %d", ErrTextMismatch, i+1)
		}
	}
	a.log(fmt.Sprintf("verified %d slides in %s", len(got), path))
	return nil
}

func normalizeEmpty(s []string) []string {
	if len(s) == 0 {
		return nil
	}
	return s
}
