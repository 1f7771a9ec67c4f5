package compiler

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/lhaig/tagless/internal/backend"
	"github.com/lhaig/tagless/internal/cbe"
)

// Targets lists the supported target names.
var Targets = []string{"eval", "display", "c", "tagged"}

// getBackend returns the appropriate backend for the given target
func getBackend(target string) (backend.Backend, error) {
	switch target {
	case "eval":
		return &backend.EvalBackend{}, nil
	case "display":
		return &backend.DisplayBackend{}, nil
	case "c":
		return &backend.CBackend{}, nil
	case "tagged":
		return &backend.TaggedBackend{}, nil
	default:
		return nil, fmt.Errorf("unknown target: %s", target)
	}
}

// getFileExtension returns the file extension for the given target
func getFileExtension(target string) string {
	switch target {
	case "c":
		return ".c"
	default:
		return ".txt"
	}
}

// EmitToTarget compiles the named program to the given target and writes
// the output file. It returns the path written.
func (c *Compiler) EmitToTarget(name, target, baseName string, opts cbe.Options) (string, error) {
	res := c.Compile(name, target, opts)
	if res.Diagnostics.HasErrors() {
		return "", fmt.Errorf("compilation errors:\n%s", res.Diagnostics.Format(name))
	}

	outPath := baseName + getFileExtension(target)
	if err := os.WriteFile(outPath, []byte(res.Output), 0644); err != nil {
		return "", fmt.Errorf("failed to write output file: %w", err)
	}
	return outPath, nil
}

// BuildC generates C for the named program and compiles it into a
// native binary at outPath with the system C compiler.
func (c *Compiler) BuildC(name, outPath string, opts cbe.Options) error {
	res := c.Compile(name, "c", opts)
	if res.Diagnostics.HasErrors() {
		return fmt.Errorf("compilation errors:\n%s", res.Diagnostics.Format(name))
	}

	cc, err := findCC()
	if err != nil {
		return err
	}

	tmpDir, err := os.MkdirTemp("", "tagless-build-*")
	if err != nil {
		return fmt.Errorf("failed to create temp dir: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	srcPath := filepath.Join(tmpDir, "main.c")
	if err := os.WriteFile(srcPath, []byte(res.Output), 0644); err != nil {
		return fmt.Errorf("failed to write main.c: %w", err)
	}

	cmd := exec.Command(cc, "-o", outPath, srcPath)
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s failed: %w", cc, err)
	}
	return nil
}

// Run builds the named program to C, executes the binary and returns
// its trimmed standard output.
func (c *Compiler) Run(name string, opts cbe.Options) (string, error) {
	tmpDir, err := os.MkdirTemp("", "tagless-run-*")
	if err != nil {
		return "", fmt.Errorf("failed to create temp dir: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	binPath := filepath.Join(tmpDir, name)
	if err := c.BuildC(name, binPath, opts); err != nil {
		return "", err
	}

	out, err := exec.Command(binPath).Output()
	if err != nil {
		return "", fmt.Errorf("running %s: %w", name, err)
	}
	return strings.TrimSpace(string(out)), nil
}

// findCC locates a C compiler, preferring $CC.
func findCC() (string, error) {
	candidates := []string{"cc", "gcc", "clang"}
	if env := os.Getenv("CC"); env != "" {
		candidates = append([]string{env}, candidates...)
	}
	for _, name := range candidates {
		if path, err := exec.LookPath(name); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("no C compiler found (tried %s)", strings.Join(candidates, ", "))
}
