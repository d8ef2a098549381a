package domain

import (
	"path/filepath"
	"strings"
)

// FileFormat задает формат файла импорта и экспорта.
type FileFormat string

const (
	FormatCSV  FileFormat = "csv"
	FormatXLSX FileFormat = "xlsx"
)

// ParseFileFormat принимает имя формата или имя файла с расширением.
func ParseFileFormat(value string) (FileFormat, error) {
	v := strings.ToLower(strings.TrimSpace(value))
	if ext := filepath.Ext(v); ext != "" {
		v = strings.TrimPrefix(ext, ".")
	}
	switch v {
	case "", "csv":
		return FormatCSV, nil
	case "xlsx", "xls":
		return FormatXLSX, nil
	}
	return "", ValidationErrors{{Field: "format", Message: "must be csv or xlsx"}}
}

func (f FileFormat) ContentType() string {
	if f == FormatXLSX {
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return "text/csv; charset=utf-8"
}

func (f FileFormat) Extension() string { return "." + string(f) }

// ImportFailure описывает строку файла, которую не удалось импортировать.
type ImportFailure struct {
	Row    int
	Name   string
	Fields []string
	Reason string
}

// ImportReport представляет итог пакетного импорта.
type ImportReport struct {
	Total    int
	Created  int
	Failed   int
	Failures []ImportFailure
}
