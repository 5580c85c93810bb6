package storage

import (
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/matst80/diecast-finder/pkg/common/jsoncompat"
	"github.com/matst80/diecast-finder/pkg/types"
)

var ErrCatalogNotFound = errors.New("catalog not found")

// LoadCatalog reads models.json, falling back to models.json.gz, and
// validates the result.
func (d *DiskStorage) LoadCatalog() ([]types.DiecastModel, error) {
	models := make([]types.DiecastModel, 0)
	err := d.LoadJson(&models, catalogFile)
	if errors.Is(err, fs.ErrNotExist) {
		err = d.LoadGzippedJson(&models, gzippedCatalogFile)
		if errors.Is(err, fs.ErrNotExist) {
			name, _ := d.GetFileName(catalogFile)
			return nil, fmt.Errorf("%w: %s", ErrCatalogNotFound, name)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("load catalog %s: %w", d.Catalog, err)
	}
	if err = types.ValidateCatalog(models); err != nil {
		return nil, fmt.Errorf("load catalog %s: %w", d.Catalog, err)
	}
	return models, nil
}

func (d *DiskStorage) SaveCatalog(models []types.DiecastModel) error {
	if err := types.ValidateCatalog(models); err != nil {
		return err
	}
	return d.SaveJson(models, catalogFile)
}

func (p *DiskStorage) write(name string, fn func(w io.Writer) error) error {
	fileName, tmpFileName := p.GetFileName(name)
	if err := os.MkdirAll(filepath.Dir(fileName), 0o755); err != nil {
		return err
	}

	file, err := os.Create(tmpFileName)
	if err != nil {
		return err
	}

	if err = fn(file); err != nil {
		_ = file.Close()
		_ = os.Remove(tmpFileName)
		return err
	}

	if err = file.Close(); err != nil {
		_ = os.Remove(tmpFileName)
		return err
	}

	if err = os.Rename(tmpFileName, fileName); err != nil {
		_ = os.Remove(tmpFileName)
		return err
	}
	return nil
}

// SaveJson writes data to a temporary file and renames it into place.
func (p *DiskStorage) SaveJson(data any, name string) error {
	return p.write(name, func(w io.Writer) error {
		return jsoncompat.NewEncoder(w).Encode(data)
	})
}

func (p *DiskStorage) SaveGzippedJson(data any, name string) error {
	return p.write(name, func(w io.Writer) error {
		zipWriter := gzip.NewWriter(w)
		if err := jsoncompat.NewEncoder(zipWriter).Encode(data); err != nil {
			_ = zipWriter.Close()
			return err
		}
		return zipWriter.Close()
	})
}

func (p *DiskStorage) LoadJson(data any, filename string) error {
	name, _ := p.GetFileName(filename)
	file, err := os.Open(name)
	if err != nil {
		return err
	}
	defer file.Close()

	err = jsoncompat.NewDecoder(file).Decode(data)
	if err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func (p *DiskStorage) LoadGzippedJson(data any, filename string) error {
	name, _ := p.GetFileName(filename)
	file, err := os.Open(name)
	if err != nil {
		return err
	}
	defer file.Close()

	zipReader, err := gzip.NewReader(file)
	if err != nil {
		return err
	}
	defer zipReader.Close()

	err = jsoncompat.NewDecoder(zipReader).Decode(data)
	if err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

var _ types.StorageProvider = (*DiskStorage)(nil)
