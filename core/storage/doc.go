// Package storage provides flat-file storage behind a small interface, with a
// local filesystem implementation and helpers for reading and writing text.
//
// # Basic Usage
//
//	import "github.com/dmitrymomot/qrgames/core/storage"
//
//	store := storage.NewLocalStorage("./games")
//
//	html, err := storage.ReadText(ctx, store, "lights_out/index.html")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	err = storage.WriteText(ctx, store, "lights_out/url/url.txt", url)
//
// # Local Storage
//
//	store := storage.NewLocalStorage("/var/games",
//		storage.WithPermissions(0o600),
//		storage.WithDirPermissions(0o700),
//		storage.WithCreateDirs(true),
//	)
//
// Paths are relative and slash-separated. Absolute paths and paths that climb
// out of the root with ".." fail with ErrInvalidPath. Writes go through a
// temporary file and a rename, so a failed write leaves the old file intact.
//
// # Text
//
// ReadText decodes UTF-8 and BOM-marked UTF-16 files into a UTF-8 string and
// drops the byte order mark. WriteText always writes UTF-8 without one.
//
// # Errors
//
//	exists, err := store.Exists(ctx, path)
//
//	_, err = store.Get(ctx, "missing.txt")
//	if errors.Is(err, storage.ErrFileNotFound) {
//		// ...
//	}
package storage
