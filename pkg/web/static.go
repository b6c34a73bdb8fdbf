package web

import (
	"io/fs"
	"net/http"
)

// StaticServer serves files from subdir of fsys. Request paths are
// resolved relative to subdir after prefix is stripped.
func StaticServer(fsys fs.FS, subdir, prefix string) http.Handler {
	sub, err := fs.Sub(fsys, subdir)
	if err != nil {
		panic(err)
	}
	return http.StripPrefix(prefix, http.FileServerFS(sub))
}
