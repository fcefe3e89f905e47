package ports

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunTableStoreContract runs a suite of tests to verify that a TableStore implementation
// adheres to the defined interface contract.
func RunTableStoreContract(t *testing.T, store TableStore) {
	ctx := context.Background()
	name := "contract-" + time.Now().Format("20060102150405") + "-crv.tbm"
	text := []byte("$Name: Contract\n$Keyframes:\n\t(0, 0): Linear\n\t(1, 1): Constant\n")

	t.Run("Save and Load", func(t *testing.T) {
		err := store.Save(ctx, name, text)
		require.NoError(t, err, "Save should not return error")

		loaded, err := store.Load(ctx, name)
		require.NoError(t, err, "Load should not return error")
		assert.Equal(t, text, loaded)
	})

	t.Run("Overwrite", func(t *testing.T) {
		replaced := []byte("; emptied\n")
		require.NoError(t, store.Save(ctx, name, replaced))

		loaded, err := store.Load(ctx, name)
		require.NoError(t, err)
		assert.Equal(t, replaced, loaded)
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := store.Load(ctx, "missing-"+name)
		assert.ErrorIs(t, err, ErrTableNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, name, text))

		err := store.Delete(ctx, name)
		require.NoError(t, err, "Delete should not return error")

		_, err = store.Load(ctx, name)
		assert.ErrorIs(t, err, ErrTableNotFound, "Load after Delete should return ErrTableNotFound")

		assert.NoError(t, store.Delete(ctx, name), "Delete of a missing table should succeed")
	})

	t.Run("List", func(t *testing.T) {
		n1 := "a-" + name
		n2 := "b-" + name
		require.NoError(t, store.Save(ctx, n2, text))
		require.NoError(t, store.Save(ctx, n1, text))

		defer func() {
			_ = store.Delete(ctx, n1)
			_ = store.Delete(ctx, n2)
		}()

		names, err := store.List(ctx)
		require.NoError(t, err)
		i1 := indexOf(names, n1)
		i2 := indexOf(names, n2)
		require.NotEqual(t, -1, i1, "missing %s in %v", n1, names)
		require.NotEqual(t, -1, i2, "missing %s in %v", n2, names)
		assert.Less(t, i1, i2, "List should be sorted")
	})

	t.Run("Cancelled Context", func(t *testing.T) {
		runCancelledContract(t, store, "cancelled-"+name, text)
	})
}

// runCancelledContract checks that every operation honours a cancelled context.
func runCancelledContract(t *testing.T, store TableStore, name string, text []byte) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, store.Save(ctx, name, text), context.Canceled)
	_, err := store.Load(ctx, name)
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, store.Delete(ctx, name), context.Canceled)
	_, err = store.List(ctx)
	assert.ErrorIs(t, err, context.Canceled)

	_, err = store.Load(context.Background(), name)
	assert.ErrorIs(t, err, ErrTableNotFound, "a cancelled Save must not write")
}

func indexOf(names []string, name string) int {
	for i, n := range names {
		if n == name {
			return i
		}
	}
	return -1
}
