package pipeline

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// Align runs a local MUSCLE v5 alignment from in to out.
func (r *Runner) Align(ctx context.Context, in, out string) error {
	return r.runTool(ctx, "muscle", r.Muscle, "-super5", in, "-output", out)
}

// BuildTree runs MEGA-CC with the analysis settings file selected by tree
// type and bootstrap replication count.
func (r *Runner) BuildTree(ctx context.Context, treeType string, bootstrap int, in, out string) error {
	mao := filepath.Join(r.ConfigDir, fmt.Sprintf("%s_%d.mao", treeType, bootstrap))
	return r.runTool(ctx, "megacc", r.MegaCC, "-a", mao, "-d", in, "-o", out)
}

// runTool launches an external tool and blocks until it exits. The tool's
// own output goes to our stdout/stderr; a non-zero exit becomes a
// ToolError.
func (r *Runner) runTool(ctx context.Context, name, bin string, args ...string) error {
	r.log.Debug("running tool", "tool", name, "cmd", bin+" "+strings.Join(args, " "))

	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return &ToolError{Tool: name, Err: err}
	}
	return nil
}
