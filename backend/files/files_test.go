package files

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorageSaveAndOpen(t *testing.T) {
	st := NewLocalStorage(t.TempDir(), "http://localhost:8080/files/")
	ctx := context.Background()

	url, err := st.Save(ctx, "certificates/T1/cert.pdf", strings.NewReader("pdf bytes"))
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/files/certificates/T1/cert.pdf", url)

	f, err := st.Open(ctx, "certificates/T1/cert.pdf")
	require.NoError(t, err)
	defer f.Close()
	content, err := io.ReadAll(f)
	require.NoError(t, err)
	assert.Equal(t, "pdf bytes", string(content))
}

func TestLocalStorageList(t *testing.T) {
	st := NewLocalStorage(t.TempDir(), "/files")
	ctx := context.Background()

	_, err := st.Save(ctx, "certificates/T1/a.pdf", strings.NewReader("a"))
	require.NoError(t, err)
	_, err = st.Save(ctx, "certificates/T2/b.pdf", strings.NewReader("b"))
	require.NoError(t, err)

	names, err := st.List(ctx, "certificates/T1/")
	require.NoError(t, err)
	assert.Equal(t, []string{"certificates/T1/a.pdf"}, names)

	all, err := st.List(ctx, "certificates/")
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestLocalStorageDelete(t *testing.T) {
	st := NewLocalStorage(t.TempDir(), "/files")
	ctx := context.Background()

	_, err := st.Save(ctx, "certificates/T1/a.pdf", strings.NewReader("a"))
	require.NoError(t, err)
	require.NoError(t, st.Delete(ctx, "certificates/T1/a.pdf"))
	_, err = st.Open(ctx, "certificates/T1/a.pdf")
	assert.Error(t, err)

	assert.NoError(t, st.Delete(ctx, "certificates/T1/a.pdf"), "deleting a missing file is not an error")
}

func TestLocalStorageRejectsEscapingPaths(t *testing.T) {
	st := NewLocalStorage(t.TempDir(), "/files")
	ctx := context.Background()

	_, err := st.Save(ctx, "../outside.txt", strings.NewReader("nope"))
	assert.Error(t, err)
	_, err = st.Open(ctx, "../../etc/passwd")
	assert.Error(t, err)
}
