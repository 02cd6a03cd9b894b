//go:build integration

package steps

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"audio-extractor/cmd"
	"audio-extractor/domain/audio"
	"audio-extractor/infrastructure/filesystem"

	"github.com/cucumber/godog"
)

// extractContext holds test state for extract scenarios. Virtual paths from
// the feature file are mapped under a per-scenario temp directory.
type extractContext struct {
	baseDir   string
	extractor *mockExtractor
	prober    *mockProber
	output    *bytes.Buffer
	err       error
}

// SharedExtractContext is reset before each scenario via Before hook
var SharedExtractContext *extractContext

func getExtractContext() *extractContext {
	return SharedExtractContext
}

func (c *extractContext) path(virtual string) string {
	return filepath.Join(c.baseDir, virtual)
}

func InitializeExtractScenario(ctx *godog.ScenarioContext) {
	ctx.Before(func(c context.Context, sc *godog.Scenario) (context.Context, error) {
		dir, err := os.MkdirTemp("", "extract-scenario-")
		if err != nil {
			return c, err
		}
		SharedExtractContext = &extractContext{
			baseDir:   dir,
			extractor: &mockExtractor{},
			prober:    &mockProber{},
			output:    &bytes.Buffer{},
		}
		return c, nil
	})

	ctx.After(func(c context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		if SharedExtractContext != nil {
			os.RemoveAll(SharedExtractContext.baseDir)
		}
		SharedExtractContext = nil
		return c, nil
	})

	ctx.Step(`^a video file exists at "([^"]*)"$`, aVideoFileExistsAt)
	ctx.Step(`^no file exists at "([^"]*)"$`, noFileExistsAt)
	ctx.Step(`^probing always fails with "([^"]*)"$`, probingAlwaysFailsWith)
	ctx.Step(`^I extract "([^"]*)" to "([^"]*)" as "([^"]*)" at (\d+) kbps$`, iExtractToAsAt)
	ctx.Step(`^I extract "([^"]*)" with verification enabled$`, iExtractWithVerificationEnabled)
	ctx.Step(`^the extraction succeeds$`, theExtractionSucceeds)
	ctx.Step(`^the extraction fails with "([^"]*)"$`, theExtractionFailsWith)
	ctx.Step(`^the extractor received format "([^"]*)" with quality (\d+)$`, theExtractorReceivedFormatWithQuality)
	ctx.Step(`^the extractor was never invoked$`, theExtractorWasNeverInvoked)
	ctx.Step(`^the output contains "([^"]*)"$`, theOutputContains)
}

func aVideoFileExistsAt(virtual string) error {
	c := getExtractContext()
	path := c.path(virtual)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte("fake video data"), 0644)
}

func noFileExistsAt(virtual string) error {
	c := getExtractContext()
	return os.RemoveAll(c.path(virtual))
}

func probingAlwaysFailsWith(message string) error {
	getExtractContext().prober.err = errors.New(message)
	return nil
}

func runExtract(inputVirtual, outputVirtual, formatName string, quality int, verify bool) error {
	c := getExtractContext()

	format, err := audio.ParseFormat(formatName)
	if err != nil {
		return err
	}

	req, err := audio.NewExtractionRequest(c.path(inputVirtual), c.path(outputVirtual), format, quality, verify)
	if err != nil {
		return err
	}

	c.err = cmd.RunExtractWithDependencies(
		context.Background(),
		c.extractor,
		c.prober,
		filesystem.NewChecker(),
		req,
		c.output,
	)
	return nil
}

func iExtractToAsAt(input, output, formatName string, quality int) error {
	return runExtract(input, output, formatName, quality, false)
}

func iExtractWithVerificationEnabled(input string) error {
	output := strings.TrimSuffix(input, filepath.Ext(input)) + ".mp3"
	return runExtract(input, output, "mp3", audio.DefaultQuality, true)
}

func theExtractionSucceeds() error {
	if err := getExtractContext().err; err != nil {
		return fmt.Errorf("expected success, got error: %v", err)
	}
	return nil
}

func theExtractionFailsWith(message string) error {
	err := getExtractContext().err
	if err == nil {
		return fmt.Errorf("expected error containing %q, got success", message)
	}
	if !strings.Contains(err.Error(), message) {
		return fmt.Errorf("error %q does not contain %q", err.Error(), message)
	}
	return nil
}

func theExtractorReceivedFormatWithQuality(formatName string, quality int) error {
	c := getExtractContext()
	if len(c.extractor.calls) == 0 {
		return fmt.Errorf("extractor was not invoked")
	}

	req := c.extractor.calls[len(c.extractor.calls)-1]
	if req.Format.String() != formatName {
		return fmt.Errorf("extractor received format %q, want %q", req.Format, formatName)
	}
	if req.Quality != quality {
		return fmt.Errorf("extractor received quality %d, want %d", req.Quality, quality)
	}
	return nil
}

func theExtractorWasNeverInvoked() error {
	c := getExtractContext()
	if len(c.extractor.calls) != 0 {
		return fmt.Errorf("extractor was invoked %d time(s)", len(c.extractor.calls))
	}
	return nil
}

func theOutputContains(text string) error {
	c := getExtractContext()
	if !strings.Contains(c.output.String(), text) {
		return fmt.Errorf("output does not contain %q:\n%s", text, c.output.String())
	}
	return nil
}
