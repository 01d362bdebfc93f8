package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Lzww0608/guid"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, dir, name, src string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(src), 0o644))
}

const protocolSrc = `package proto

//guid:attach 72631e54-78a4-11d0-bcf7-00aa00b7b32a
type Protocol struct{}
`

func TestGenerate(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "proto.go", protocolSrc)

	out, err := run(t, "generate", dir)
	require.NoError(t, err)

	path := filepath.Join(dir, "guid_generated.go")
	assert.Equal(t, path, strings.TrimSpace(out))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "func (Protocol) GUID() guid.Guid {")
}

func TestGenerate_Flags(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "proto.go", protocolSrc)

	_, err := run(t, "generate", "--output", "ids_gen.go", "--method", "ClassID", dir)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "ids_gen.go"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "func (Protocol) ClassID() guid.Guid {")
}

func TestGenerate_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "proto.go", protocolSrc)
	cfg := filepath.Join(t.TempDir(), "guidgen.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("method: IID\noutput: iid_gen.go\n"), 0o644))

	_, err := run(t, "--config", cfg, "generate", dir)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "iid_gen.go"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "func (Protocol) IID() guid.Guid {")
}

func TestGenerate_MissingConfigFile(t *testing.T) {
	_, err := run(t, "--config", filepath.Join(t.TempDir(), "absent.yaml"), "generate", t.TempDir())
	assert.Error(t, err)
}

func TestGenerate_Registry(t *testing.T) {
	db := filepath.Join(t.TempDir(), "registry.db")

	first := t.TempDir()
	writeFile(t, first, "proto.go", protocolSrc)
	_, err := run(t, "generate", "--registry-driver", "sqlite3", "--registry-dsn", db, first)
	require.NoError(t, err)

	second := t.TempDir()
	writeFile(t, second, "other.go", "package other\n\n//guid:var Copy 72631e54-78a4-11d0-bcf7-00aa00b7b32a\n")
	_, err = run(t, "generate", "--registry-driver", "sqlite3", "--registry-dsn", db, second)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "proto.Protocol")
}

func TestGenerate_InvalidLiteralFails(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "bad.go", "package bad\n\n//guid:var Bad 72631e54-78a4-11d0-bcf7-00aa00b7b3\n")

	_, err := run(t, "generate", dir)
	require.Error(t, err)
	assert.True(t, errors.Is(err, guid.ErrInvalidLength), "got %v", err)
	assert.NoFileExists(t, filepath.Join(dir, "guid_generated.go"))
}

func TestParse(t *testing.T) {
	out, err := run(t, "parse", "72631e54-78a4-11d0-bcf7-00aa00b7b32a")
	require.NoError(t, err)

	assert.Contains(t, out, "canonical  72631e54-78a4-11d0-bcf7-00aa00b7b32a\n")
	assert.Contains(t, out, "registry   {72631E54-78A4-11D0-BCF7-00AA00B7B32A}\n")
	assert.Contains(t, out, "data1      0x72631e54\n")
	assert.Contains(t, out, "data4      bcf700aa00b7b32a\n")
	assert.Contains(t, out, "binary     541e6372a478d011bcf700aa00b7b32a\n")
}

func TestParse_JSON(t *testing.T) {
	out, err := run(t, "parse", "--json", "{00000000-0000-0000-C000-000000000046}")
	require.NoError(t, err)

	var f fields
	require.NoError(t, json.Unmarshal([]byte(out), &f))
	assert.Equal(t, "00000000-0000-0000-c000-000000000046", f.Canonical)
	assert.Equal(t, "c000000000000046", f.Data4)
	assert.Equal(t, uint32(0), f.Data1)
}

func TestParse_Invalid(t *testing.T) {
	_, err := run(t, "parse", "01020304-0x06-0708-090a-0b0d0e0f1011")
	assert.True(t, errors.Is(err, guid.ErrInvalidHexDigit), "got %v", err)
}

func TestFormat(t *testing.T) {
	out, err := run(t, "format", "a2d11b1dd90fe941bbb5a98bac570b2a")
	require.NoError(t, err)
	assert.Equal(t, "1d1bd1a2-0fd9-41e9-bbb5-a98bac570b2a\n", out)

	out, err = run(t, "format", "--registry", "3e 14 be cf 9e 5e 25 46 a5 00 c3 f0 36 20 04 11")
	require.NoError(t, err)
	assert.Equal(t, "{CFBE143E-5E9E-4625-A500-C3F036200411}\n", out)
}

func TestFormat_Invalid(t *testing.T) {
	_, err := run(t, "format", "a2d11b")
	assert.True(t, errors.Is(err, guid.ErrInvalidLength), "got %v", err)

	_, err = run(t, "format", "zz")
	assert.Error(t, err)
}
