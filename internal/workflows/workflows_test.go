package workflows

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/walkpwd/walkpwd/internal/configs"
	kerrors "github.com/walkpwd/walkpwd/internal/errors"
	"github.com/walkpwd/walkpwd/internal/generator"
	"github.com/walkpwd/walkpwd/internal/vault"
)

type recordingClipboard struct {
	delivered []string
	err       error
}

func (r *recordingClipboard) Deliver(_ context.Context, text string) (string, error) {
	if r.err != nil {
		return "", r.err
	}
	r.delivered = append(r.delivered, text)
	return "fake", nil
}

// useVaultDir points the settings at a fresh directory for one test.
func useVaultDir(t *testing.T) string {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "walkpwd")

	original := configs.WalkpwdSettings
	configs.WalkpwdSettings = &configs.Settings{VaultDir: dir}
	t.Cleanup(func() { configs.WalkpwdSettings = original })
	return dir
}

func initVault(t *testing.T) string {
	t.Helper()
	dir := useVaultDir(t)
	_, err := Init(context.Background(), InitOptions{})
	require.NoError(t, err)
	return dir
}

func TestInitFreshThenRepeat(t *testing.T) {
	ctx := context.Background()
	dir := useVaultDir(t)

	res, err := Init(ctx, InitOptions{})
	require.NoError(t, err)
	assert.Equal(t, dir, res.VaultDir)
	assert.False(t, res.AlreadyInitialized)
	assert.FileExists(t, filepath.Join(dir, vault.MarkerFileName))

	_, err = Add(ctx, AddOptions{Name: "github", Password: "pw", ExplicitPassword: true})
	require.NoError(t, err)

	res, err = Init(ctx, InitOptions{})
	require.NoError(t, err)
	assert.True(t, res.AlreadyInitialized)
	assert.False(t, res.Reset)

	list, err := List(ctx, ListOptions{})
	require.NoError(t, err)
	assert.Equal(t, []string{"github"}, list.Names)
}

func TestInitForceResetsEntries(t *testing.T) {
	ctx := context.Background()
	initVault(t)

	_, err := Add(ctx, AddOptions{Name: "github", Password: "pw", ExplicitPassword: true})
	require.NoError(t, err)

	res, err := Init(ctx, InitOptions{Force: true})
	require.NoError(t, err)
	assert.True(t, res.Reset)

	list, err := List(ctx, ListOptions{})
	require.NoError(t, err)
	assert.Empty(t, list.Names)
}

func TestOperationsRequireInit(t *testing.T) {
	ctx := context.Background()
	useVaultDir(t)

	_, err := Add(ctx, AddOptions{Name: "a", Password: "b", ExplicitPassword: true})
	assert.ErrorIs(t, err, kerrors.ErrVaultNotInitialized)

	_, err = Get(ctx, GetOptions{Name: "a"})
	assert.ErrorIs(t, err, kerrors.ErrVaultNotInitialized)

	_, err = List(ctx, ListOptions{})
	assert.ErrorIs(t, err, kerrors.ErrVaultNotInitialized)

	_, err = Delete(ctx, DeleteOptions{Name: "a"})
	assert.ErrorIs(t, err, kerrors.ErrVaultNotInitialized)

	assert.ErrorIs(t, EnsureInitialized(), kerrors.ErrVaultNotInitialized)
}

func TestAddExplicitThenGetDeliversToClipboard(t *testing.T) {
	ctx := context.Background()
	initVault(t)
	cb := &recordingClipboard{}

	added, err := Add(ctx, AddOptions{
		Name:             "github",
		Password:         "Sup3r$ecret",
		ExplicitPassword: true,
		Clipboard:        cb,
	})
	require.NoError(t, err)
	assert.Equal(t, "Sup3r$ecret", added.Password)
	assert.False(t, added.Generated)
	assert.Equal(t, "fake", added.CopiedWith)

	got, err := Get(ctx, GetOptions{Name: "github", Clipboard: cb})
	require.NoError(t, err)
	assert.True(t, got.Found)
	assert.Equal(t, "Sup3r$ecret", got.Password)
	assert.Equal(t, []string{"Sup3r$ecret", "Sup3r$ecret"}, cb.delivered)
}

func TestAddGeneratesWithPolicy(t *testing.T) {
	ctx := context.Background()
	initVault(t)

	added, err := Add(ctx, AddOptions{
		Name:   "aws",
		Policy: generator.Policy{Length: 20, Symbols: true},
	})
	require.NoError(t, err)
	assert.True(t, added.Generated)
	assert.Len(t, added.Password, 20)

	got, err := Get(ctx, GetOptions{Name: "aws"})
	require.NoError(t, err)
	assert.Equal(t, added.Password, got.Password)
}

func TestAddConflictingFlagsLeavesVaultUntouched(t *testing.T) {
	ctx := context.Background()
	dir := initVault(t)
	path := filepath.Join(dir, vault.VaultFileName)

	before, err := os.ReadFile(path)
	require.NoError(t, err)

	_, err = Add(ctx, AddOptions{
		Name:             "github",
		Password:         "pw",
		ExplicitPassword: true,
		Policy:           generator.Policy{Length: 20},
		PolicyRequested:  true,
	})
	assert.ErrorIs(t, err, kerrors.ErrConflictingPasswordFlags)

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestAddConflictCheckedBeforeInitGate(t *testing.T) {
	useVaultDir(t)

	_, err := Add(context.Background(), AddOptions{
		Name:             "github",
		Password:         "pw",
		ExplicitPassword: true,
		PolicyRequested:  true,
	})
	assert.ErrorIs(t, err, kerrors.ErrConflictingPasswordFlags)
}

func TestAddDuplicate(t *testing.T) {
	ctx := context.Background()
	initVault(t)
	cb := &recordingClipboard{}

	_, err := Add(ctx, AddOptions{Name: "github", Password: "first", ExplicitPassword: true})
	require.NoError(t, err)

	_, err = Add(ctx, AddOptions{Name: "github", Password: "second", ExplicitPassword: true, Clipboard: cb})
	assert.ErrorIs(t, err, kerrors.ErrDuplicateEntry)
	assert.Empty(t, cb.delivered)

	got, err := Get(ctx, GetOptions{Name: "github"})
	require.NoError(t, err)
	assert.Equal(t, "first", got.Password)
}

func TestAddStoresEvenWhenClipboardFails(t *testing.T) {
	ctx := context.Background()
	initVault(t)
	cb := &recordingClipboard{err: fmt.Errorf("%w: nothing worked", kerrors.ErrClipboardUnavailable)}

	added, err := Add(ctx, AddOptions{Name: "github", Password: "pw", ExplicitPassword: true, Clipboard: cb})
	assert.ErrorIs(t, err, kerrors.ErrClipboardUnavailable)
	require.NotNil(t, added)
	assert.Equal(t, "pw", added.Password)

	list, err := List(ctx, ListOptions{})
	require.NoError(t, err)
	assert.Equal(t, []string{"github"}, list.Names)
}

func TestGetMissingSkipsClipboard(t *testing.T) {
	ctx := context.Background()
	initVault(t)
	cb := &recordingClipboard{}

	got, err := Get(ctx, GetOptions{Name: "nope", Clipboard: cb})
	require.NoError(t, err)
	assert.False(t, got.Found)
	assert.Empty(t, got.Password)
	assert.Empty(t, cb.delivered)
}

func TestListPreservesInsertionOrder(t *testing.T) {
	ctx := context.Background()
	initVault(t)

	for _, name := range []string{"zeta", "alpha", "mid"} {
		_, err := Add(ctx, AddOptions{Name: name, Password: "x", ExplicitPassword: true})
		require.NoError(t, err)
	}

	list, err := List(ctx, ListOptions{})
	require.NoError(t, err)
	assert.Equal(t, []string{"zeta", "alpha", "mid"}, list.Names)
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	initVault(t)

	_, err := Add(ctx, AddOptions{Name: "github", Password: "pw", ExplicitPassword: true})
	require.NoError(t, err)

	res, err := Delete(ctx, DeleteOptions{Name: "github"})
	require.NoError(t, err)
	assert.True(t, res.Deleted)

	res, err = Delete(ctx, DeleteOptions{Name: "github"})
	require.NoError(t, err)
	assert.False(t, res.Deleted)

	got, err := Get(ctx, GetOptions{Name: "github"})
	require.NoError(t, err)
	assert.False(t, got.Found)
}

func TestSealedCodecThroughWorkflows(t *testing.T) {
	ctx := context.Background()
	dir := useVaultDir(t)
	codec := func() vault.Codec {
		return vault.NewSealedCodec(func() ([]byte, error) { return []byte("hunter2"), nil })
	}

	_, err := Init(ctx, InitOptions{Codec: codec()})
	require.NoError(t, err)
	_, err = Add(ctx, AddOptions{Name: "github", Password: "pw", ExplicitPassword: true, Codec: codec()})
	require.NoError(t, err)

	_, err = List(ctx, ListOptions{})
	assert.ErrorIs(t, err, kerrors.ErrSealed)

	got, err := Get(ctx, GetOptions{Name: "github", Codec: codec()})
	require.NoError(t, err)
	assert.Equal(t, "pw", got.Password)

	raw, err := os.ReadFile(filepath.Join(dir, vault.VaultFileName))
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "github")
}

func TestGenerate(t *testing.T) {
	ctx := context.Background()
	useVaultDir(t)
	cb := &recordingClipboard{}

	res, err := Generate(ctx, GenerateOptions{Policy: generator.Policy{Length: 8}})
	require.NoError(t, err)
	assert.Len(t, res.Password, 8)
	assert.Empty(t, res.CopiedWith)

	res, err = Generate(ctx, GenerateOptions{Copy: true, Clipboard: cb})
	require.NoError(t, err)
	assert.Len(t, res.Password, generator.DefaultLength)
	assert.Equal(t, []string{res.Password}, cb.delivered)

	_, err = Generate(ctx, GenerateOptions{Policy: generator.Policy{Length: -1}})
	assert.True(t, errors.Is(err, kerrors.ErrGeneration))
}

func TestInitWritesDefaultConfigOnce(t *testing.T) {
	ctx := context.Background()
	dir := useVaultDir(t)
	configPath := filepath.Join(t.TempDir(), "config.toml")
	configs.WalkpwdSettings.ConfigPath = configPath

	res, err := Init(ctx, InitOptions{})
	require.NoError(t, err)
	assert.Equal(t, dir, res.VaultDir)
	assert.Equal(t, configPath, res.ConfigPath)
	assert.True(t, res.ConfigCreated)
	assert.FileExists(t, configPath)

	res, err = Init(ctx, InitOptions{})
	require.NoError(t, err)
	assert.False(t, res.ConfigCreated)
}
