package storage

import (
	"path/filepath"
	"strconv"
	"time"
)

const (
	catalogFile        = "models.json"
	gzippedCatalogFile = "models.json.gz"
)

// DiskStorage reads and writes the files of one catalog below RootFolder.
type DiskStorage struct {
	Catalog    string
	RootFolder string
}

func NewDiskStorage(catalog, rootFolder string) *DiskStorage {
	return &DiskStorage{
		Catalog:    catalog,
		RootFolder: rootFolder,
	}
}

// GetFileName returns the path of name and a temporary sibling used for
// atomic writes.
func (ds *DiskStorage) GetFileName(name string) (string, string) {
	fileName := filepath.Join(ds.RootFolder, ds.Catalog, name)
	tmpFileName := fileName + ".tmp-" + strconv.FormatInt(time.Now().UnixNano(), 10)
	return fileName, tmpFileName
}
