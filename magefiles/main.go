//go:build mage

package main

import (
	"fmt"
	"os"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// init performs some sanity checks before running anything
func init() {
	mustBeInRoot()
}

// Test perform the whole project's unit tests
func Test() error {
	mg.Deps(Generate)

	return sh.Run(
		"go", "run", "-mod=readonly", "github.com/onsi/ginkgo/v2/ginkgo",
		"-p", "-randomize-all", "-repeat=5", "--fail-on-pending", "--race", "--trace",
		"--junit-report=test-report.xml", "./...",
	)
}

// Generate regenerates the mocks of the ec2 api
func Generate() error {
	return sh.Run("go", "run", "-mod=readonly", "github.com/vektra/mockery/v2")
}

// Run performs a provisioning run against the configured aws account
func Run() error {
	version, err := determineBuildVersion()
	if err != nil {
		return fmt.Errorf("failed to determine version: %w", err)
	}

	return sh.RunV("go", "run", "-ldflags", "-X 'main.Version="+version+"'", "./cmd/clinfra")
}

// mustBeInRoot checks that the command is run in the project root
func mustBeInRoot() {
	if _, err := os.Stat("go.mod"); err != nil {
		panic("must be in root, couldn't stat go.mod file: " + err.Error())
	}
}
