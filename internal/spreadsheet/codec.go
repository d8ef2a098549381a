package spreadsheet

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"mini-crm/internal/domain"

	"github.com/gocarina/gocsv"
	"github.com/xuri/excelize/v2"
)

const sheetName = "Leads"

var errEmptyFile = errors.New("file has no header row")

// Write выгружает лиды в выбранном формате.
func Write(w io.Writer, f domain.FileFormat, leads []*domain.Lead) error {
	rows := make([]*Row, len(leads))
	for i, l := range leads {
		row := FromLead(l)
		rows[i] = &row
	}

	switch f {
	case domain.FormatXLSX:
		return writeXLSX(w, rows)
	default:
		return gocsv.Marshal(&rows, w)
	}
}

func writeXLSX(w io.Writer, rows []*Row) error {
	file := excelize.NewFile()
	defer file.Close()

	if err := file.SetSheetName(file.GetSheetName(0), sheetName); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	header := make([]interface{}, len(Header))
	for i, h := range Header {
		header[i] = h
	}
	if err := file.SetSheetRow(sheetName, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		values := row.values()
		if err := file.SetSheetRow(sheetName, cell, &values); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	return file.Write(w)
}

// Read разбирает файл и возвращает строки данных с номерами строк.
// Пустые строки пропускаются. Нечитаемый файл возвращает ValidationErrors по полю "file".
func Read(r io.Reader, f domain.FileFormat) ([]Row, error) {
	var (
		records []record
		err     error
	)
	switch f {
	case domain.FormatXLSX:
		records, err = readXLSX(r)
	default:
		records, err = readCSV(r)
	}
	if err != nil {
		return nil, domain.ValidationErrors{{Field: "file", Message: "could not be read: " + err.Error()}}
	}

	rows, err := decode(records)
	if err != nil {
		return nil, domain.ValidationErrors{{Field: "file", Message: err.Error()}}
	}
	return rows, nil
}

type record struct {
	line   int
	fields []string
}

func readCSV(r io.Reader) ([]record, error) {
	br := bufio.NewReader(r)
	if bom, err := br.Peek(3); err == nil && bytes.Equal(bom, []byte{0xEF, 0xBB, 0xBF}) {
		_, _ = br.Discard(3)
	}

	reader := csv.NewReader(br)
	reader.Comma = detectDelimiter(br)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	var records []record
	for {
		fields, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		line, _ := reader.FieldPos(0)
		records = append(records, record{line: line, fields: fields})
	}
	return records, nil
}

// detectDelimiter выбирает ';' для файлов из локализованного Excel.
func detectDelimiter(br *bufio.Reader) rune {
	peek, _ := br.Peek(br.Size())
	if i := bytes.IndexByte(peek, '\n'); i >= 0 {
		peek = peek[:i]
	}
	if bytes.Count(peek, []byte{';'}) > bytes.Count(peek, []byte{','}) {
		return ';'
	}
	return ','
}

func readXLSX(r io.Reader) ([]record, error) {
	file, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	sheets := file.GetSheetList()
	if len(sheets) == 0 {
		return nil, errEmptyFile
	}
	rows, err := file.GetRows(sheets[0])
	if err != nil {
		return nil, err
	}

	records := make([]record, 0, len(rows))
	for i, fields := range rows {
		records = append(records, record{line: i + 1, fields: fields})
	}
	return records, nil
}

// decode нормализует заголовок и раскладывает записи по Row через gocsv.
func decode(records []record) ([]Row, error) {
	for len(records) > 0 && isBlank(records[0].fields) {
		records = records[1:]
	}
	if len(records) == 0 {
		return nil, errEmptyFile
	}

	header := make([]string, len(records[0].fields))
	for i, name := range records[0].fields {
		header[i] = canonicalHeader(name)
	}

	data := make([][]string, 0, len(records))
	lines := make([]int, 0, len(records))
	data = append(data, header)
	for _, rec := range records[1:] {
		if isBlank(rec.fields) {
			continue
		}
		fields := make([]string, len(header))
		copy(fields, rec.fields)
		data = append(data, fields)
		lines = append(lines, rec.line)
	}

	var parsed []*Row
	if len(data) > 1 {
		if err := gocsv.UnmarshalCSV(&recordReader{records: data}, &parsed); err != nil {
			return nil, err
		}
	}

	rows := make([]Row, len(parsed))
	for i, row := range parsed {
		rows[i] = *row
		rows[i].Line = lines[i]
	}
	return rows, nil
}

// recordReader отдает gocsv уже прочитанные записи.
type recordReader struct {
	records [][]string
	pos     int
}

func (r *recordReader) Read() ([]string, error) {
	if r.pos >= len(r.records) {
		return nil, io.EOF
	}
	rec := r.records[r.pos]
	r.pos++
	return rec, nil
}

func (r *recordReader) ReadAll() ([][]string, error) {
	rest := r.records[r.pos:]
	r.pos = len(r.records)
	return rest, nil
}
