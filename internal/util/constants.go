package util

const (
	DateFormat = "2006-01-02"
	TimeFormat = "2006-01-02 15:04:05"
)

const (
	StorageLocal = "local"
	StorageMinio = "minio"
)

// Paginação: artigos e simulados usam páginas de 15; o padrão geral é 10.
const (
	PageSizeDefault = 10
	PageSizeLarge   = 15
)

// Ordenação padrão das leituras paginadas.
const (
	DefaultOrderField     = "created_at"
	DefaultOrderDirection = "desc"
)

const (
	MimeVideo       = "video/"
	MimePDF         = "application/pdf"
	MimeOctetStream = "application/octet-stream"
)

var (
	AllowedVideoExtensions = []string{".mp4", ".mov", ".avi", ".mkv", ".wmv", ".flv", ".webm"}
)
