package main

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, dir string, args ...string) error {
	t.Helper()
	rootCmd.SetArgs(append([]string{"--dir", dir, "--config", filepath.Join(dir, "absent.yaml")}, args...))
	return rootCmd.ExecuteContext(context.Background())
}

func TestCommands_EditAndSave(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "base.tbl"), []byte("$Name: Base\n$Keyframes: (0, 0): Linear\n(1, 1): Constant\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "fade.tbl"), []byte("$Name: Fade\n$Keyframes:\n\t(0, 0): Subcurve +Curve: Base\n\t(1, 1): Constant\n"), 0644))

	require.NoError(t, run(t, dir, "rename", "Base", "Core"))
	require.NoError(t, run(t, dir, "keyframe", "segment", "Core", "0", "Polynomial", "+Degree:", "3", "+Ease", "In:", "YES"))
	require.NoError(t, run(t, dir, "keyframe", "add", "Core", "0.5", "0", "--snap", "curve"))

	base, err := os.ReadFile(filepath.Join(dir, "base.tbl"))
	require.NoError(t, err)
	assert.Equal(t, "$Name: Core\n$Keyframes:\n\t(0, 0): Polynomial +Degree: 3 +Ease In: YES\n\t(0.5, 0.125): Constant\n\t(1, 1): Constant\n", string(base))

	fade, err := os.ReadFile(filepath.Join(dir, "fade.tbl"))
	require.NoError(t, err)
	assert.Contains(t, string(fade), "Subcurve +Curve: Core")

	for _, arg := range []string{"NaN", "Inf", "+Inf", "1e39"} {
		assert.Error(t, run(t, dir, "eval", "Core", arg), arg)
		assert.Error(t, run(t, dir, "keyframe", "move", "Core", "1", arg, "0"), arg)
	}
	moved, err := os.ReadFile(filepath.Join(dir, "base.tbl"))
	require.NoError(t, err)
	assert.Equal(t, string(base), string(moved))

	assert.Error(t, run(t, dir, "rename", "Core", "EaseInQuad"))
	assert.Error(t, run(t, dir, "keyframe", "remove", "Fade", "0"))
}

func TestCommands_AddCurveCreatesTable(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, run(t, dir, "add-curve", "new.tbl", "Fresh"))

	data, err := os.ReadFile(filepath.Join(dir, "new.tbl"))
	require.NoError(t, err)
	assert.Equal(t, "$Name: Fresh\n$Keyframes:\n\t(0, 0): Linear\n\t(1, 1): Constant\n", string(data))
}

func TestExitCode(t *testing.T) {
	failed := errors.New("save base.tbl: context canceled")

	assert.Equal(t, 0, exitCode(nil, nil))
	assert.Equal(t, 1, exitCode(failed, nil))
	assert.Equal(t, 130, exitCode(failed, syscall.SIGINT))
	assert.Equal(t, 143, exitCode(nil, syscall.SIGTERM))

	assert.Equal(t, failed.Error(), describeFailure(failed, nil))
	assert.Equal(t, "interrupted by interrupt: save base.tbl: context canceled", describeFailure(failed, syscall.SIGINT))
}
