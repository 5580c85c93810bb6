package types

type StorageProvider interface {
	LoadCatalog() ([]DiecastModel, error)
	SaveCatalog(models []DiecastModel) error
	SaveJson(data any, filename string) error
	LoadJson(data any, filename string) error
	LoadGzippedJson(data any, filename string) error
}
