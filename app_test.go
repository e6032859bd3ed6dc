package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"paymentdeck/config"
	"paymentdeck/deck"
	"paymentdeck/export"
)

func TestRun_WritesDeckAndConfirms(t *testing.T) {
	path := filepath.Join(t.TempDir(), "결제경로.pptx")
	var stdout, stderr bytes.Buffer

	code := run([]string{"--output", path}, &stdout, &stderr)

	require.Equal(t, 0, code, stderr.String())
	assert.Equal(t, "PPT 파일 생성 완료: "+path+"\n", stdout.String())
	assert.Empty(t, stderr.String())

	texts, err := export.ReadSlideTexts(path)
	require.NoError(t, err)
	assert.Len(t, texts, 11)
}

func TestRun_MissingDirectoryFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "deck.pptx")
	var stdout, stderr bytes.Buffer

	code := run([]string{"-o", path}, &stdout, &stderr)

	assert.Equal(t, 1, code)
	assert.Empty(t, stdout.String())
	assert.Contains(t, stderr.String(), "[deck.save]")
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestRun_VerifyAndCompanions(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "deck.pptx")
	checklist := filepath.Join(dir, "capture.xlsx")
	sheet := filepath.Join(dir, "business.docx")
	var stdout, stderr bytes.Buffer

	code := run([]string{
		"--output", path,
		"--checklist", checklist,
		"--business-sheet", sheet,
		"--log-dir", dir,
		"--verify",
	}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())

	lines := strings.Split(strings.TrimRight(stdout.String(), "\n"), "\n")
	require.Len(t, lines, 12)
	assert.True(t, strings.HasPrefix(lines[0], " 1. 선박조종연구소"))
	assert.Contains(t, lines[1], "(1) 상호명")
	assert.Equal(t, "PPT 파일 생성 완료: "+path, lines[11])

	for _, p := range []string{checklist, sheet} {
		info, err := os.Stat(p)
		require.NoError(t, err)
		assert.Greater(t, info.Size(), int64(0))
	}

	logs, err := filepath.Glob(filepath.Join(dir, "paydeck_*.log"))
	require.NoError(t, err)
	assert.Len(t, logs, 1)
}

func TestRun_BadFlag(t *testing.T) {
	var stdout, stderr bytes.Buffer
	assert.Equal(t, 2, run([]string{"--no-such-flag"}, &stdout, &stderr))
}

func TestRun_BadConfigFile(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"--config", filepath.Join(t.TempDir(), "absent.yaml")}, &stdout, &stderr)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "failed to load config")
}

func TestApp_Run(t *testing.T) {
	cfg, err := config.Load("", nil)
	require.NoError(t, err)
	cfg.Output.Path = filepath.Join(t.TempDir(), "deck.pptx")
	cfg.Verify = true

	var logs []string
	var out bytes.Buffer
	app := NewApp(cfg, func(msg string) { logs = append(logs, msg) }, &out)

	path, err := app.Run()
	require.NoError(t, err)
	assert.Equal(t, cfg.Output.Path, path)
	require.NotEmpty(t, logs)
	assert.True(t, strings.HasPrefix(logs[0], "[paydeck] built deck"))
	assert.Equal(t, 11, strings.Count(out.String(), "\n"))
}

func TestWrapError(t *testing.T) {
	assert.Nil(t, WrapError("deck", "save", nil))

	base := errors.New("disk full")
	err := WrapError("deck", "save", base)
	assert.Equal(t, "[deck.save] disk full", err.Error())
	assert.ErrorIs(t, err, base)

	var se *ServiceError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "deck", se.Service)
	assert.Equal(t, "save", se.Operation)
}

func TestWrapOperationError(t *testing.T) {
	assert.Nil(t, WrapOperationError("load config", nil))

	base := errors.New("bad yaml")
	err := WrapOperationError("load config", base)
	assert.Equal(t, "failed to load config: bad yaml", err.Error())
	assert.ErrorIs(t, err, base)
}

func TestVerify_Mismatch(t *testing.T) {
	cfg, err := config.Load("", nil)
	require.NoError(t, err)
	cfg.Output.Path = filepath.Join(t.TempDir(), "deck.pptx")

	app := NewApp(cfg, nil, &bytes.Buffer{})
	_, err = app.Run()
	require.NoError(t, err)

	cfg.Deck.Title = "다른 제목"
	changed := NewApp(cfg, nil, &bytes.Buffer{})
	err = changed.verify(deck.Build(cfg.Content()), cfg.Output.Path)
	assert.ErrorIs(t, err, ErrTextMismatch)
}
