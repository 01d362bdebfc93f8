package registry

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Lzww0608/guid"
)

func openMemory(t *testing.T) *Store {
	t.Helper()
	s, err := Open(DriverSQLite, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	require.NoError(t, s.Init(context.Background()))
	return s
}

func TestClaimAndLookup(t *testing.T) {
	ctx := context.Background()
	s := openMemory(t)
	assert.Equal(t, DriverSQLite, s.Driver())

	g := guid.MustParse("72631e54-78a4-11d0-bcf7-00aa00b7b32a")
	e := Entry{Guid: g, Package: "wellknown", Symbol: "Protocol"}
	require.NoError(t, s.Claim(ctx, e))

	got, err := s.Lookup(ctx, g)
	require.NoError(t, err)
	assert.Equal(t, e, got)
}

func TestClaim_SameOwnerIsNoop(t *testing.T) {
	ctx := context.Background()
	s := openMemory(t)

	e := Entry{Guid: guid.MustParse("00000000-0000-0000-c000-000000000046"), Package: "com", Symbol: "IIDUnknown"}
	require.NoError(t, s.Claim(ctx, e))
	assert.NoError(t, s.Claim(ctx, e))
}

func TestClaim_Conflict(t *testing.T) {
	ctx := context.Background()
	s := openMemory(t)

	g := guid.MustParse("c12a7328-f81f-11d2-ba4b-00a0c93ec93b")
	require.NoError(t, s.Claim(ctx, Entry{Guid: g, Package: "gpt", Symbol: "EFISystem"}))

	err := s.Claim(ctx, Entry{Guid: g, Package: "gpt", Symbol: "Other"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrConflict), "got %v", err)
	assert.Contains(t, err.Error(), "gpt.EFISystem")

	got, err := s.Lookup(ctx, g)
	require.NoError(t, err)
	assert.Equal(t, "EFISystem", got.Symbol)
}

func TestLookup_NotFound(t *testing.T) {
	s := openMemory(t)

	_, err := s.Lookup(context.Background(), guid.MustParse("0fc63daf-8483-4772-8e79-3d69d8477de4"))
	assert.True(t, errors.Is(err, ErrNotFound), "got %v", err)
}

func TestRelease(t *testing.T) {
	ctx := context.Background()
	s := openMemory(t)

	g := guid.MustParse("ebd0a0a2-b9e5-4433-87c0-68b6b72699c7")
	require.NoError(t, s.Claim(ctx, Entry{Guid: g, Package: "gpt", Symbol: "BasicData"}))
	require.NoError(t, s.Release(ctx, g))

	_, err := s.Lookup(ctx, g)
	assert.True(t, errors.Is(err, ErrNotFound), "got %v", err)
	assert.NoError(t, s.Claim(ctx, Entry{Guid: g, Package: "gpt", Symbol: "Renamed"}))
}

func TestOpen_Errors(t *testing.T) {
	_, err := Open("postgres", "host=localhost")
	assert.Error(t, err)

	_, err = Open(DriverMySQL, "not a dsn")
	assert.Error(t, err)
}

func TestOpen_MySQLDoesNotConnect(t *testing.T) {
	s, err := Open(DriverMySQL, "user:pass@tcp(127.0.0.1:3306)/guids")
	require.NoError(t, err)
	assert.Equal(t, DriverMySQL, s.Driver())
	assert.NoError(t, s.Close())
}
