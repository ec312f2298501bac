// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package gamestore

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stacklok/gameshelf/validation/appname"
)

func testRecord(name string) Record {
	return Record{
		AppName:     name,
		AppTitle:    "Title of " + name,
		AppVersion:  "1.2.3",
		InstallPath: filepath.Join("/games", name),
		Executable:  name + ".exe",
	}
}

func TestRegistryRoot(t *testing.T) {
	t.Parallel()

	assert.Equal(t, filepath.Join("/data", "gameshelf", "installed"), RegistryRoot("/data"))
	assert.NotEmpty(t, DefaultRegistryRoot())
}

func TestStore_SaveLoad(t *testing.T) {
	t.Parallel()

	store := NewStore(filepath.Join(t.TempDir(), "nested", "installed"))
	rec := testRecord("alpha")

	require.NoError(t, store.Save(rec))

	loaded, err := store.Load("alpha")
	require.NoError(t, err)
	assert.Equal(t, rec, loaded)

	_, err = os.Stat(store.Path("alpha"))
	assert.NoError(t, err, "record file should exist")
}

func TestStore_SaveOverwrites(t *testing.T) {
	t.Parallel()

	store := NewStore(t.TempDir())

	first := testRecord("alpha")
	require.NoError(t, store.Save(first))

	second := first
	second.AppVersion = "2.0.0"
	second.AppTitle = "Alpha Remastered"
	require.NoError(t, store.Save(second))

	loaded, err := store.Load("alpha")
	require.NoError(t, err)
	assert.Equal(t, second, loaded)

	records, err := store.List()
	require.NoError(t, err)
	assert.Len(t, records, 1, "overwrite should not create a second record")
}

func TestStore_SaveLeavesNoTempFiles(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	store := NewStore(root)

	require.NoError(t, store.Save(testRecord("alpha")))
	require.NoError(t, store.Save(testRecord("alpha")))

	entries, err := os.ReadDir(root)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "alpha.json", entries[0].Name())
}

func TestStore_SaveRejectsInvalidRecords(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		modify  func(*Record)
		wantErr error
	}{
		{"empty app name", func(r *Record) { r.AppName = "" }, appname.ErrInvalid},
		{"path traversal", func(r *Record) { r.AppName = "../escape" }, appname.ErrInvalid},
		{"missing install path", func(r *Record) { r.InstallPath = "" }, ErrInvalidRecord},
		{"missing executable", func(r *Record) { r.Executable = "" }, ErrInvalidRecord},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			root := t.TempDir()
			store := NewStore(root)
			rec := testRecord("alpha")
			tt.modify(&rec)

			err := store.Save(rec)
			require.ErrorIs(t, err, tt.wantErr)

			entries, err := os.ReadDir(root)
			require.NoError(t, err)
			assert.Empty(t, entries, "no file should be written for an invalid record")
		})
	}
}

func TestStore_SaveIOError(t *testing.T) {
	t.Parallel()

	// A regular file where the registry directory should be.
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))

	store := NewStore(filepath.Join(blocker, "installed"))
	err := store.Save(testRecord("alpha"))
	require.ErrorIs(t, err, ErrIO)
}

func TestStore_Load_NotFound(t *testing.T) {
	t.Parallel()

	store := NewStore(t.TempDir())

	_, err := store.Load("never-saved")
	require.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "never-saved")
}

func TestStore_Load_Corrupt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
	}{
		{"malformed json", `{"app_name": "alpha",`},
		{"not an object", `["alpha"]`},
		{"missing install_path", `{"app_name":"alpha","app_title":"A","app_version":"1","executable":"a.exe"}`},
		{"wrong field type", `{"app_name":"alpha","app_title":"A","app_version":1,"install_path":"/g","executable":"a"}`},
		{"name mismatch", `{"app_name":"beta","app_title":"B","app_version":"1","install_path":"/g","executable":"b"}`},
		{"empty file", ``},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			root := t.TempDir()
			require.NoError(t, os.WriteFile(filepath.Join(root, "alpha.json"), []byte(tt.content), 0o600))

			_, err := NewStore(root).Load("alpha")
			require.ErrorIs(t, err, ErrCorruptRecord)
			assert.NotErrorIs(t, err, ErrNotFound)
		})
	}
}

func TestStore_Load_InvalidName(t *testing.T) {
	t.Parallel()

	_, err := NewStore(t.TempDir()).Load("../../etc/passwd")
	require.ErrorIs(t, err, appname.ErrInvalid)
}

func TestStore_List_MissingDirectory(t *testing.T) {
	t.Parallel()

	store := NewStore(filepath.Join(t.TempDir(), "does-not-exist"))

	records, err := store.List()
	require.NoError(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records)
}

func TestStore_List_EmptyDirectory(t *testing.T) {
	t.Parallel()

	records, err := NewStore(t.TempDir()).List()
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestStore_List_SkipsCorruptAndForeignFiles(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	store := NewStore(root)

	for _, name := range []string{"gamma", "alpha", "beta"} {
		require.NoError(t, store.Save(testRecord(name)))
	}

	// One corrupt record, one foreign file, a leftover temp file and a directory.
	require.NoError(t, os.WriteFile(filepath.Join(root, "broken.json"), []byte("{not json"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(root, "notes.txt"), []byte("hello"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(root, ".delta.json.123.tmp"), []byte("{}"), 0o600))
	require.NoError(t, os.Mkdir(filepath.Join(root, "subdir.json"), 0o755))

	records, err := store.List()
	require.NoError(t, err)
	require.Len(t, records, 3)

	names := make([]string, 0, len(records))
	for _, r := range records {
		names = append(names, r.AppName)
	}
	assert.Equal(t, []string{"alpha", "beta", "gamma"}, names, "records should be sorted by app name")
}

func TestStore_Delete(t *testing.T) {
	t.Parallel()

	store := NewStore(t.TempDir())
	require.NoError(t, store.Save(testRecord("alpha")))

	require.NoError(t, store.Delete("alpha"))

	_, err := store.Load("alpha")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestStore_Delete_Missing(t *testing.T) {
	t.Parallel()

	t.Run("missing record", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, NewStore(t.TempDir()).Delete("ghost"))
	})

	t.Run("missing registry directory", func(t *testing.T) {
		t.Parallel()
		store := NewStore(filepath.Join(t.TempDir(), "nope"))
		assert.NoError(t, store.Delete("ghost"))
	})
}

func TestStore_List_UnreadableDirectory(t *testing.T) {
	t.Parallel()

	if runtime.GOOS == "windows" || os.Geteuid() == 0 {
		t.Skip("permission bits are not enforced for this user")
	}

	root := filepath.Join(t.TempDir(), "installed")
	require.NoError(t, os.Mkdir(root, 0o000))
	t.Cleanup(func() { _ = os.Chmod(root, 0o755) })

	_, err := NewStore(root).List()
	require.ErrorIs(t, err, ErrIO)
}

func TestRecord_ExecutablePath(t *testing.T) {
	t.Parallel()

	rec := Record{InstallPath: filepath.Join("/games", "alpha"), Executable: filepath.Join("bin", "alpha")}
	assert.Equal(t, filepath.Join("/games", "alpha", "bin", "alpha"), rec.ExecutablePath())
}
