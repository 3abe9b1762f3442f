// Package fs provides file-based storage for URL lists and JSON record sets.
package fs

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/prodspan"
)

// ReadURLs reads a URL list, one URL per line.
// Blank lines and lines starting with # are ignored.
func ReadURLs(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open url list: %w", err)
	}
	defer f.Close()

	urls := []string{}
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		urls = append(urls, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read url list: %w", err)
	}
	return urls, nil
}

// ReadTextRecords reads a JSON array of scraped text records.
//
// A record that does not decode is skipped and reported in the returned
// slice of EINVALID errors, which name the record's index. The error result
// is reserved for an unreadable file or a document that is not an array.
func ReadTextRecords(path string) ([]*prodspan.TextRecord, []error, error) {
	raw, err := readArray(path)
	if err != nil {
		return nil, nil, err
	}

	records := make([]*prodspan.TextRecord, 0, len(raw))
	var rejected []error
	for i, msg := range raw {
		var rec prodspan.TextRecord
		if err := json.Unmarshal(msg, &rec); err != nil {
			rejected = append(rejected, prodspan.Errorf(prodspan.EINVALID, "record %d: %s", i, errorText(err)))
			continue
		}
		records = append(records, &rec)
	}
	return records, rejected, nil
}

// ReadAnnotatedRecords reads a JSON array of annotated records.
// Records that do not decode are reported as in ReadTextRecords.
func ReadAnnotatedRecords(path string) ([]prodspan.AnnotatedRecord, []error, error) {
	raw, err := readArray(path)
	if err != nil {
		return nil, nil, err
	}

	records := make([]prodspan.AnnotatedRecord, 0, len(raw))
	var rejected []error
	for i, msg := range raw {
		var rec prodspan.AnnotatedRecord
		if err := json.Unmarshal(msg, &rec); err != nil {
			rejected = append(rejected, prodspan.Errorf(prodspan.EINVALID, "record %d: %s", i, errorText(err)))
			continue
		}
		records = append(records, rec)
	}
	return records, rejected, nil
}

func readArray(path string) ([]json.RawMessage, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read records: %w", err)
	}
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, prodspan.Errorf(prodspan.EINVALID, "%s: expected a JSON array of records: %v", filepath.Base(path), err)
	}
	return raw, nil
}

// errorText prefers the application message over the JSON decoder's
// wrapping.
func errorText(err error) string {
	if prodspan.ErrorCode(err) == prodspan.EINTERNAL {
		return err.Error()
	}
	return prodspan.ErrorMessage(err)
}

// WriteJSON writes v to path as indented JSON.
// The file is written to a temporary sibling and renamed into place, so
// readers never observe a partial file.
func WriteJSON(path string, v any) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode %s: %w", filepath.Base(path), err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	return nil
}
