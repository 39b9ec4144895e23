//go:build mage

package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
	"github.com/sourcegraph/conc/iter"
)

// Build groups commands for building release artifacts.
type Build mg.Namespace

// Binaries cross-compiles the clinfra command for every supported platform.
func (Build) Binaries() error {
	const buildDirPerm = 0o0700

	if err := os.MkdirAll("builds", buildDirPerm); err != nil {
		return fmt.Errorf("failed to create build dir: %w", err)
	}

	version, err := determineBuildVersion()
	if err != nil {
		return fmt.Errorf("failed to determine version: %w", err)
	}

	if err := errors.Join(iter.Map([]string{
		"linux/amd64", "linux/arm64", "darwin/arm64",
	}, func(it *string) error {
		goos, goarch, _ := strings.Cut(*it, "/")

		return buildBinary(version, goos, goarch)
	})...); err != nil {
		return fmt.Errorf("failed to build binaries: %w", err)
	}

	return nil
}

// determineBuildVersion provides the build version.
func determineBuildVersion() (string, error) {
	version := os.Getenv("BUILD_VERSION")
	if version != "" {
		return version, nil
	}

	sha, err := sh.Output("git", "rev-parse", "HEAD")
	if err != nil {
		return "", fmt.Errorf("failed to run git: %w", err)
	}

	return fmt.Sprintf("v0.0.0-%s", sha[:7]), nil
}

// buildBinary builds the command for a single platform.
func buildBinary(version, goos, goarch string) error {
	dst := filepath.Join("builds", fmt.Sprintf("clinfra_%s_%s", goos, goarch))

	err := runIfNoErr(nil, nil, "rm", "-f", dst)
	err = runIfNoErr(err, map[string]string{"GOOS": goos, "GOARCH": goarch, "CGO_ENABLED": "0"},
		"go", "build", "-trimpath", "-ldflags", `-X 'main.Version=`+version+"'",
		"-o", dst, "./cmd/clinfra")

	return err
}

// runIfNoErr will only run cmd with args if 'err' is nil, else it will return err. This allows us to
// make somewhat readable automation around scripts.
func runIfNoErr(err error, env map[string]string, cmd string, args ...string) error {
	if err != nil {
		return err
	}

	if err = sh.RunWith(env, cmd, args...); err != nil {
		return fmt.Errorf("failed to run: %w", err)
	}

	return nil
}
