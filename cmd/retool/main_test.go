package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-retool/internal/errors"
	"github.com/KirkDiggler/rpg-retool/internal/testutils"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("RETOOL_LOG_LEVEL", "error")
	t.Setenv("RETOOL_WORKERS", "2")

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	err := rootCmd.Execute()
	return out.String(), err
}

func TestConvertCommand(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "feats.json")
	output := filepath.Join(dir, "out.json")
	require.NoError(t, os.WriteFile(input, []byte(testutils.FeatDocument), 0o600))

	out, err := execute(t, "convert", "--kind", "feat", "--input", input, "--output", output)
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote 2 feat records")

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"desc": "Prerequisite: Half-Elf or Human\n\nYou have a knack for learning new things."`)
}

func TestConvertCommandUnknownKind(t *testing.T) {
	_, err := execute(t, "convert", "--kind", "spell", "--input", "a.json", "--output", "b.json")
	require.Error(t, err)
	assert.Equal(t, 2, errors.GetCode(err).ExitCode())
}

func TestPublishAndListCommands(t *testing.T) {
	mr := miniredis.RunT(t)

	input := filepath.Join(t.TempDir(), "races.json")
	require.NoError(t, os.WriteFile(input, []byte(testutils.RaceDocument), 0o600))

	out, err := execute(t, "publish", "--kind", "race", "--input", input, "--redis-addr", mr.Addr())
	require.NoError(t, err)
	assert.Contains(t, out, "Published 2 race records")

	keys := mr.Keys()
	assert.Contains(t, keys, "catalog:race:index")
	assert.Len(t, keys, 2)

	out, err = execute(t, "list", "--kind", "race", "--redis-addr", mr.Addr())
	require.NoError(t, err)
	ids, err := mr.ZMembers("catalog:race:index")
	require.NoError(t, err)
	require.Len(t, ids, 1)
	assert.Equal(t, ids[0]+"\n", out)

	out, err = execute(t, "show", "--kind", "race", "--id", ids[0], "--redis-addr", mr.Addr())
	require.NoError(t, err)
	assert.Contains(t, out, `"name": "Dwarf (PHB)"`)
	assert.True(t, strings.HasPrefix(out, "[\n    {"))

	_, err = execute(t, "show", "--kind", "race", "--id", "missing", "--redis-addr", mr.Addr())
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}

func TestPublishUnreachableRedis(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	input := filepath.Join(t.TempDir(), "races.json")
	require.NoError(t, os.WriteFile(input, []byte(testutils.RaceDocument), 0o600))

	_, err := execute(t, "publish", "--kind", "race", "--input", input, "--redis-addr", addr)
	require.Error(t, err)
	assert.Equal(t, 3, errors.GetCode(err).ExitCode())
}
