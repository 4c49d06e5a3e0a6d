package mirror_test

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/mebel-store/internal/infrastructure/mirror"
	"github.com/jhoicas/mebel-store/pkg/logger"
)

func openSQLite(t *testing.T, quota int64) *mirror.SQLiteStorage {
	t.Helper()
	st, err := mirror.OpenSQLite(filepath.Join(t.TempDir(), "mirror.db"), quota)
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	return st
}

func TestSQLiteStorage_MemoriaConcurrenteConservaLaTabla(t *testing.T) {
	st, err := mirror.OpenSQLite(":memory:", 0)
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	var wg sync.WaitGroup
	errs := make(chan error, 16)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := fmt.Sprintf("k%d", i)
			if err := st.Set(key, "v"); err != nil {
				errs <- err
				return
			}
			if _, _, err := st.Get(key); err != nil {
				errs <- err
			}
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	keys, err := st.Keys()
	require.NoError(t, err)
	assert.Len(t, keys, 8)
}

func TestSQLiteStorage_CRUD(t *testing.T) {
	st := openSQLite(t, 0)

	_, ok, err := st.Get("k")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, st.Set("k", "v1"))
	require.NoError(t, st.Set("k", "v2"), "Set sobre clave existente reemplaza")
	v, ok, err := st.Get("k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v2", v)

	require.NoError(t, st.Set("a", "1"))
	keys, err := st.Keys()
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "k"}, keys)

	require.NoError(t, st.Remove("k"))
	_, ok, _ = st.Get("k")
	assert.False(t, ok)
}

func TestSQLiteStorage_Cuota(t *testing.T) {
	st := openSQLite(t, 50)
	require.NoError(t, st.Set("a", strings.Repeat("x", 30)))
	err := st.Set("b", strings.Repeat("y", 30))
	assert.ErrorIs(t, err, mirror.ErrQuotaExceeded)
	require.NoError(t, st.Set("a", strings.Repeat("z", 45)), "reemplazar la misma clave no cuenta su valor previo")
}

func TestSQLiteStorage_ConMirror(t *testing.T) {
	m := mirror.New(openSQLite(t, 0), "mebel_", logger.Nop())
	m.Save("slides", []string{"a", "b"})

	var out []string
	require.True(t, m.Load("slides", &out))
	assert.Equal(t, []string{"a", "b"}, out)
}
