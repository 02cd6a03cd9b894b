//go:build integration

package steps

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	appextract "audio-extractor/application/extract"
	"audio-extractor/cmd"
	"audio-extractor/domain/audio"
	"audio-extractor/infrastructure/filesystem"

	"github.com/cucumber/godog"
)

// batchContext holds test state for batch scenarios
type batchContext struct {
	baseDir   string
	inputs    []string
	extractor *mockExtractor
	prober    *mockProber
	output    *bytes.Buffer
	err       error
}

// SharedBatchContext is reset before each scenario via Before hook
var SharedBatchContext *batchContext

func getBatchContext() *batchContext {
	return SharedBatchContext
}

func InitializeBatchScenario(ctx *godog.ScenarioContext) {
	ctx.Before(func(c context.Context, sc *godog.Scenario) (context.Context, error) {
		dir, err := os.MkdirTemp("", "batch-scenario-")
		if err != nil {
			return c, err
		}
		SharedBatchContext = &batchContext{
			baseDir:   dir,
			extractor: &mockExtractor{},
			prober:    &mockProber{},
			output:    &bytes.Buffer{},
		}
		return c, nil
	})

	ctx.After(func(c context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		if SharedBatchContext != nil {
			os.RemoveAll(SharedBatchContext.baseDir)
		}
		SharedBatchContext = nil
		return c, nil
	})

	ctx.Step(`^a recordings directory containing:$`, aRecordingsDirectoryContaining)
	ctx.Step(`^I batch extract the recordings as "([^"]*)"$`, iBatchExtractTheRecordingsAs)
	ctx.Step(`^the batch run succeeds$`, theBatchRunSucceeds)
	ctx.Step(`^the batch summary reports (\d+) succeeded and (\d+) failed$`, theBatchSummaryReports)
	ctx.Step(`^the batch output lists "([^"]*)" as produced$`, theBatchOutputListsAsProduced)
	ctx.Step(`^the batch output reports "([^"]*)" as failed$`, theBatchOutputReportsAsFailed)
}

func aRecordingsDirectoryContaining(table *godog.Table) error {
	c := getBatchContext()
	for _, row := range table.Rows {
		name := strings.TrimSpace(row.Cells[0].Value)
		path := filepath.Join(c.baseDir, "recordings", name)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return err
		}
		if err := os.WriteFile(path, []byte("fake video data"), 0644); err != nil {
			return err
		}
		c.inputs = append(c.inputs, path)
	}
	return nil
}

func iBatchExtractTheRecordingsAs(formatName string) error {
	c := getBatchContext()

	format, err := audio.ParseFormat(formatName)
	if err != nil {
		return err
	}

	c.err = cmd.RunBatchWithDependencies(
		context.Background(),
		c.extractor,
		c.prober,
		filesystem.NewChecker(),
		appextract.BatchInput{
			InputPaths: c.inputs,
			OutputDir:  filepath.Join(c.baseDir, "out"),
			Format:     format,
			Quality:    audio.DefaultQuality,
		},
		c.output,
	)
	return nil
}

func theBatchRunSucceeds() error {
	if err := getBatchContext().err; err != nil {
		return fmt.Errorf("expected success, got error: %v", err)
	}
	return nil
}

func theBatchSummaryReports(succeeded, failed int) error {
	c := getBatchContext()
	want := fmt.Sprintf("%d succeeded, %d failed", succeeded, failed)
	if !strings.Contains(c.output.String(), want) {
		return fmt.Errorf("output does not contain %q:\n%s", want, c.output.String())
	}

	// A failing batch surfaces a non-nil error without aborting early.
	if failed > 0 && c.err == nil {
		return fmt.Errorf("expected a batch error with %d failure(s)", failed)
	}
	return nil
}

func theBatchOutputListsAsProduced(name string) error {
	c := getBatchContext()
	for _, line := range strings.Split(c.output.String(), "\n") {
		if strings.HasPrefix(line, "ok") && strings.Contains(line, name) {
			return nil
		}
	}
	return fmt.Errorf("no ok line mentions %q:\n%s", name, c.output.String())
}

func theBatchOutputReportsAsFailed(name string) error {
	c := getBatchContext()
	for _, line := range strings.Split(c.output.String(), "\n") {
		if strings.HasPrefix(line, "FAIL") && strings.Contains(line, name) {
			return nil
		}
	}
	return fmt.Errorf("no FAIL line mentions %q:\n%s", name, c.output.String())
}
