package domain

import "path/filepath"

const (
	// AppDirName is the directory name used under the user cache root.
	AppDirName = "crossgrade"

	// ResolutionsDirName is the name of the resolution cache subtree.
	ResolutionsDirName = "resolutions"

	// ConfigFileName is the name of the project configuration file.
	ConfigFileName = "crossgrade.yaml"

	// CacheFileExt is the extension of resolution cache entries.
	CacheFileExt = ".json"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// ResolutionsPath returns the cache subtree for one target distribution.
// It joins the cache root, resolutions and the target ID, so resolutions for
// different targets never mix.
func ResolutionsPath(cacheRoot, targetID string) string {
	return filepath.Join(cacheRoot, ResolutionsDirName, targetID)
}

// ResolutionsRoot returns the cache subtree holding every target.
func ResolutionsRoot(cacheRoot string) string {
	return filepath.Join(cacheRoot, ResolutionsDirName)
}
