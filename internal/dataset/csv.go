package dataset

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/spboyer/hare/internal/models"
)

// CSV columns. conversation and speaker are required.
const (
	ColumnConversation = "conversation"
	ColumnSpeaker      = "speaker"
	ColumnText         = "text"
	ColumnScore        = "score"
	ColumnToxic        = "toxic"
)

// readRows parses CSV with a header row and returns the normalized header
// and each following record as a map of column to value.
func readRows(path string, r io.Reader) ([]string, []map[string]string, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	records, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("csv: parse %s: %w", path, err)
	}

	if len(records) == 0 {
		return nil, nil, fmt.Errorf("csv: %s is empty (no header row)", path)
	}

	headers := records[0]
	for i, h := range headers {
		headers[i] = strings.ToLower(strings.TrimSpace(h))
	}
	rows := make([]map[string]string, 0, len(records)-1)

	for _, record := range records[1:] {
		row := make(map[string]string, len(headers))
		for j, h := range headers {
			row[h] = record[j]
		}
		rows = append(rows, row)
	}

	return headers, rows, nil
}

// decodeCSV groups rows into conversations, in order of first appearance.
// A truthy toxic column labels the row's speaker toxic in its conversation.
func decodeCSV(path string, data []byte) (*Dataset, error) {
	headers, rows, err := readRows(path, bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	var problems []string
	for _, col := range []string{ColumnConversation, ColumnSpeaker} {
		if !slices.Contains(headers, col) {
			problems = append(problems, fmt.Sprintf("missing required column %q", col))
		}
	}
	if len(problems) > 0 {
		return nil, &InvalidError{Path: path, Problems: problems}
	}

	ds := &Dataset{Detector: DetectorSpec{Type: "precomputed"}}
	byID := make(map[string]*models.Conversation)
	toxic := make(map[*models.Conversation]map[string]bool)

	for i, row := range rows {
		line := i + 2 // 1-based, after the header
		id, speaker := row[ColumnConversation], strings.TrimSpace(row[ColumnSpeaker])
		if speaker == "" {
			problems = append(problems, fmt.Sprintf("row %d: empty speaker", line))
			continue
		}

		conv, ok := byID[id]
		if !ok {
			conv = &models.Conversation{ID: id}
			byID[id] = conv
			toxic[conv] = make(map[string]bool)
			ds.Conversations = append(ds.Conversations, conv)
		}

		u := models.Utterance{Speaker: speaker, Text: row[ColumnText]}
		if s := strings.TrimSpace(row[ColumnScore]); s != "" {
			v, err := strconv.ParseFloat(s, 64)
			if err != nil || v < 0 || v > 1 {
				problems = append(problems, fmt.Sprintf("row %d: score %q is not a number in [0, 1]", line, s))
				continue
			}
			u.Score = &v
		}
		conv.Utterances = append(conv.Utterances, u)

		if s := strings.TrimSpace(row[ColumnToxic]); s != "" {
			flag, err := strconv.ParseBool(s)
			if err != nil {
				problems = append(problems, fmt.Sprintf("row %d: toxic %q is not a boolean", line, s))
				continue
			}
			if flag && !toxic[conv][speaker] {
				toxic[conv][speaker] = true
				conv.ToxicSpeakers = append(conv.ToxicSpeakers, speaker)
			}
		}
	}

	if len(problems) > 0 {
		return nil, &InvalidError{Path: path, Problems: problems}
	}
	return ds, nil
}
