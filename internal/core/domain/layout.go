package domain

import "path/filepath"

const (
	// CbuildDirName is the name of the internal metadata directory.
	CbuildDirName = ".cbuild"

	// ObjectDirName is the name of the object file directory.
	ObjectDirName = "obj"

	// DepsFileName is the name of the dependency snapshot store file.
	DepsFileName = "deps.json"

	// ConfigFileName is the name of the project configuration file.
	ConfigFileName = "cbuild.yaml"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644

	// PrivateFilePerm is the default permission for private files (rw-------).
	PrivateFilePerm = 0o600
)

// CbuildPath returns the metadata directory for a project root.
func CbuildPath(root string) string {
	return filepath.Join(root, CbuildDirName)
}

// ObjectPath returns the directory for compiled objects of the given target.
func ObjectPath(root, target string) string {
	return filepath.Join(root, CbuildDirName, ObjectDirName, target)
}

// DepsPath returns the path of the dependency snapshot store.
func DepsPath(root string) string {
	return filepath.Join(root, CbuildDirName, DepsFileName)
}
