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

// verifyContext holds test state for standalone verification scenarios
type verifyContext struct {
	baseDir string
	prober  *mockProber
	output  *bytes.Buffer
	err     error
}

// SharedVerifyContext is reset before each scenario via Before hook
var SharedVerifyContext *verifyContext

func getVerifyContext() *verifyContext {
	return SharedVerifyContext
}

func InitializeVerifyScenario(ctx *godog.ScenarioContext) {
	ctx.Before(func(c context.Context, sc *godog.Scenario) (context.Context, error) {
		dir, err := os.MkdirTemp("", "verify-scenario-")
		if err != nil {
			return c, err
		}
		SharedVerifyContext = &verifyContext{
			baseDir: dir,
			prober:  &mockProber{},
			output:  &bytes.Buffer{},
		}
		return c, nil
	})

	ctx.After(func(c context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		if SharedVerifyContext != nil {
			os.RemoveAll(SharedVerifyContext.baseDir)
		}
		SharedVerifyContext = nil
		return c, nil
	})

	ctx.Step(`^no audio file at "([^"]*)"$`, noAudioFileAt)
	ctx.Step(`^an empty audio file at "([^"]*)"$`, anEmptyAudioFileAt)
	ctx.Step(`^an audio file at "([^"]*)" whose probe fails with "([^"]*)"$`, anAudioFileWhoseProbeFailsWith)
	ctx.Step(`^an audio file at "([^"]*)" whose probe reports format "([^"]*)" with (\d+) channels at (\d+) Hz$`, anAudioFileWhoseProbeReports)
	ctx.Step(`^I verify "([^"]*)"$`, iVerify)
	ctx.Step(`^verification succeeds$`, verificationSucceeds)
	ctx.Step(`^verification fails with "([^"]*)"$`, verificationFailsWith)
	ctx.Step(`^the verify output contains "([^"]*)"$`, theVerifyOutputContains)
}

func noAudioFileAt(name string) error {
	return os.RemoveAll(filepath.Join(getVerifyContext().baseDir, name))
}

func anEmptyAudioFileAt(name string) error {
	c := getVerifyContext()
	return os.WriteFile(filepath.Join(c.baseDir, name), nil, 0644)
}

func anAudioFileWhoseProbeFailsWith(name, message string) error {
	c := getVerifyContext()
	c.prober.err = errors.New(message)
	return os.WriteFile(filepath.Join(c.baseDir, name), []byte("opaque bytes"), 0644)
}

func anAudioFileWhoseProbeReports(name, format string, channels, sampleRate int) error {
	c := getVerifyContext()
	duration := 30.0
	c.prober.result = &audio.ProbeResult{
		Format:     format,
		Duration:   &duration,
		Channels:   &channels,
		SampleRate: &sampleRate,
	}
	return os.WriteFile(filepath.Join(c.baseDir, name), []byte("opaque bytes"), 0644)
}

func iVerify(name string) error {
	c := getVerifyContext()
	c.err = cmd.RunVerifyWithDependencies(
		c.prober,
		filesystem.NewChecker(),
		filepath.Join(c.baseDir, name),
		c.output,
	)
	return nil
}

func verificationSucceeds() error {
	if err := getVerifyContext().err; err != nil {
		return fmt.Errorf("expected success, got error: %v", err)
	}
	return nil
}

func verificationFailsWith(message string) error {
	err := getVerifyContext().err
	if err == nil {
		return fmt.Errorf("expected error containing %q, got success", message)
	}
	if !strings.Contains(err.Error(), message) {
		return fmt.Errorf("error %q does not contain %q", err.Error(), message)
	}
	return nil
}

func theVerifyOutputContains(text string) error {
	c := getVerifyContext()
	if !strings.Contains(c.output.String(), text) {
		return fmt.Errorf("output does not contain %q:\n%s", text, c.output.String())
	}
	return nil
}
