// Package dataset acquires the labeled fake/true news corpus: a zip archive
// fetched over HTTP, cached locally, holding one CSV table per class.
package dataset

import (
	"archive/zip"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"FakeNewsTrainer/internal/domain"
)

const (
	fakeTable = "Fake.csv"
	trueTable = "True.csv"
)

// Loader downloads and parses the corpus archive.
type Loader struct {
	url      string
	cacheDir string
	client   *http.Client
	logger   *slog.Logger
}

// NewLoader wires an HTTP client; a nil client gets a 60s timeout default.
func NewLoader(url, cacheDir string, client *http.Client, logger *slog.Logger) *Loader {
	if client == nil {
		client = &http.Client{Timeout: 60 * time.Second}
	}
	return &Loader{url: url, cacheDir: cacheDir, client: client, logger: logger}
}

// FetchCorpus returns the unioned corpus: fake rows (label 0) first, then
// true rows (label 1), each table in file order. Any acquisition or parse
// failure is fatal to the run.
func (l *Loader) FetchCorpus(ctx context.Context) ([]domain.Record, error) {
	archivePath, err := l.ensureArchive(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquire dataset: %w", err)
	}

	reader, err := zip.OpenReader(archivePath)
	if err != nil {
		return nil, fmt.Errorf("open archive %s: %w", archivePath, err)
	}
	defer reader.Close()

	fake, err := readTable(&reader.Reader, fakeTable, domain.LabelFake)
	if err != nil {
		return nil, err
	}
	trueRecords, err := readTable(&reader.Reader, trueTable, domain.LabelTrue)
	if err != nil {
		return nil, err
	}

	l.debug("corpus loaded", "fake_rows", len(fake), "true_rows", len(trueRecords))

	records := append(fake, trueRecords...)
	if len(records) == 0 {
		return nil, fmt.Errorf("dataset %s contains no usable rows", l.url)
	}
	return records, nil
}

// ensureArchive returns the local archive path, downloading into the cache
// directory when it is not already present.
func (l *Loader) ensureArchive(ctx context.Context) (string, error) {
	path := filepath.Join(l.cacheDir, filepath.Base(l.url))
	if info, err := os.Stat(path); err == nil && info.Size() > 0 {
		l.debug("using cached archive", "path", path)
		return path, nil
	}

	if err := os.MkdirAll(l.cacheDir, 0o755); err != nil {
		return "", fmt.Errorf("create cache dir: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.url, nil)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", "FakeNewsTrainer/1.0")

	resp, err := l.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("download %s: %w", l.url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("dataset source returned %s", resp.Status)
	}

	out, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create archive file: %w", err)
	}
	if _, err := io.Copy(out, resp.Body); err != nil {
		out.Close()
		return "", fmt.Errorf("write archive: %w", err)
	}
	if err := out.Close(); err != nil {
		return "", fmt.Errorf("close archive file: %w", err)
	}

	l.debug("archive downloaded", "path", path)
	return path, nil
}

// readTable parses one CSV member of the archive into labeled records.
// Rows with an empty text column are dropped here, before normalization.
func readTable(archive *zip.Reader, name string, label domain.Label) ([]domain.Record, error) {
	file, err := openMember(archive, name)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read %s header: %w", name, err)
	}
	textCol, titleCol := -1, -1
	for i, col := range header {
		switch strings.ToLower(strings.TrimSpace(col)) {
		case "text":
			textCol = i
		case "title":
			titleCol = i
		}
	}
	if textCol < 0 {
		return nil, fmt.Errorf("table %s has no text column", name)
	}

	var records []domain.Record
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read %s row: %w", name, err)
		}
		if textCol >= len(row) || strings.TrimSpace(row[textCol]) == "" {
			continue
		}
		rec := domain.Record{Text: row[textCol], Label: label}
		if titleCol >= 0 && titleCol < len(row) {
			rec.Title = row[titleCol]
		}
		records = append(records, rec)
	}
	return records, nil
}

// openMember finds an archive entry by base name, tolerating a directory
// prefix inside the zip.
func openMember(archive *zip.Reader, name string) (io.ReadCloser, error) {
	for _, file := range archive.File {
		if filepath.Base(file.Name) == name {
			rc, err := file.Open()
			if err != nil {
				return nil, fmt.Errorf("open %s: %w", file.Name, err)
			}
			return rc, nil
		}
	}
	return nil, fmt.Errorf("archive has no %s member", name)
}

func (l *Loader) debug(msg string, args ...any) {
	if l.logger != nil {
		l.logger.Debug(msg, args...)
	}
}
