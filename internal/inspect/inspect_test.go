package inspect

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// relationKeys flattens relations to "Type->Capability" strings.
func relationKeys(res *Result) map[string]bool {
	keys := make(map[string]bool)
	for _, rel := range res.Relations {
		keys[rel.Impl.Name+"->"+rel.Capability.Name] = true
	}
	return keys
}

func TestInspect_FindsCapabilityRelations(t *testing.T) {
	dir := filepath.Join("testdata", "workshop")
	res, err := Inspect(context.Background(), dir, Options{}, discardLogger())
	require.NoError(t, err)

	var capNames []string
	for _, c := range res.Capabilities {
		capNames = append(capNames, c.Name)
	}
	assert.ElementsMatch(t, []string{"Cutter", "Joiner"}, capNames)

	var implNames []string
	for _, imp := range res.Implementers {
		implNames = append(implNames, imp.Name)
	}
	assert.ElementsMatch(t, []string{"Saw", "Glue", "Clamp", "Torch"}, implNames)

	keys := relationKeys(res)
	assert.True(t, keys["Saw->Cutter"])
	assert.True(t, keys["Glue->Joiner"])
	assert.False(t, keys["Clamp->Cutter"])
	assert.False(t, keys["Clamp->Joiner"])
}

func TestInspect_SameNameDifferentSignatureDoesNotSatisfy(t *testing.T) {
	// Torch has Cut(int) string while Cutter wants Cut() string; a
	// name-only match would report a relation that the compiler rejects.
	dir := filepath.Join("testdata", "workshop")
	res, err := Inspect(context.Background(), dir, Options{}, discardLogger())
	require.NoError(t, err)
	assert.False(t, relationKeys(res)["Torch->Cutter"])
}

func TestInspect_PointerOnlySatisfactionIsMarked(t *testing.T) {
	dir := filepath.Join("testdata", "workshop")
	res, err := Inspect(context.Background(), dir, Options{}, discardLogger())
	require.NoError(t, err)

	for _, rel := range res.Relations {
		switch rel.Impl.Name {
		case "Saw":
			assert.False(t, rel.ViaPointer, "Saw satisfies Cutter by value")
		case "Glue":
			assert.True(t, rel.ViaPointer, "Glue satisfies Joiner only via *Glue")
		}
	}
}

func TestInspect_UnexportedExcludedByDefault(t *testing.T) {
	dir := filepath.Join("testdata", "workshop")

	res, err := Inspect(context.Background(), dir, Options{}, discardLogger())
	require.NoError(t, err)
	assert.False(t, relationKeys(res)["hidden->Cutter"])

	res, err = Inspect(context.Background(), dir, Options{IncludeUnexported: true}, discardLogger())
	require.NoError(t, err)
	assert.True(t, relationKeys(res)["hidden->Cutter"])
}

func TestInspect_PkgFilter(t *testing.T) {
	dir := filepath.Join("testdata", "workshop")
	res, err := Inspect(context.Background(), dir, Options{PkgFilter: "no/such/path"}, discardLogger())
	require.NoError(t, err)
	assert.Empty(t, res.Capabilities)
	assert.Empty(t, res.Implementers)
	assert.Empty(t, res.Relations)
}

func TestInspect_MethodSignatures(t *testing.T) {
	dir := filepath.Join("testdata", "workshop")
	res, err := Inspect(context.Background(), dir, Options{}, discardLogger())
	require.NoError(t, err)

	found := false
	for _, c := range res.Capabilities {
		if c.Name != "Cutter" {
			continue
		}
		found = true
		require.Len(t, c.Methods, 1)
		assert.Equal(t, "Cut", c.Methods[0].Name)
		assert.Equal(t, "Cut() string", c.Methods[0].Signature)
	}
	require.True(t, found, "Cutter capability not found")
}
