package static

import (
	"embed"
	"io/fs"
)

//go:embed css/*
var embedded embed.FS

func EmbeddedFS() fs.FS {
	return embedded
}
