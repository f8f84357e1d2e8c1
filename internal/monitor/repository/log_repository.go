package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	apperrors "sitewatch/internal/monitor/errors"
	"sitewatch/internal/monitor/model"

	"github.com/elastic/go-elasticsearch/v9"
)

const esCheckLogIndexName = "check_logs"

type LogRepository interface {
	BulkInsert(ctx context.Context, records []model.LogRecord) error
	GetLatest(ctx context.Context, siteID string) (model.LogRecord, error)
	GetRecent(ctx context.Context, siteID string, limit int) ([]model.LogRecord, error)
	DeleteOlderThan(ctx context.Context, cutoff time.Time) error
}

type logRepository struct {
	es *elasticsearch.Client
}

type esErrorResponse struct {
	Error struct {
		Type   string `json:"type"`
		Reason string `json:"reason"`
	}
}

type esSearchResponse struct {
	Hits struct {
		Hits []struct {
			Source model.LogRecord `json:"_source"`
		} `json:"hits"`
	} `json:"hits"`
}

// BulkInsert submits all records as one _bulk request. Called only by the log
// buffer's flush.
func (l *logRepository) BulkInsert(ctx context.Context, records []model.LogRecord) error {
	if len(records) == 0 {
		return nil
	}
	var buf bytes.Buffer
	for _, record := range records {
		meta := []byte(`{"index":{}}` + "\n")
		doc, err := json.Marshal(record)
		if err != nil {
			return fmt.Errorf("LogRepository.BulkInsert marshal record: %w", err)
		}
		buf.Write(meta)
		buf.Write(doc)
		buf.WriteByte('\n')
	}
	res, err := l.es.Bulk(
		bytes.NewReader(buf.Bytes()),
		l.es.Bulk.WithContext(ctx),
		l.es.Bulk.WithIndex(esCheckLogIndexName))
	if err != nil {
		return fmt.Errorf("LogRepository.BulkInsert: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		var e esErrorResponse
		if err = json.NewDecoder(res.Body).Decode(&e); err != nil {
			return fmt.Errorf("LogRepository.BulkInsert decode err response: %w", err)
		}
		return fmt.Errorf("LogRepository.BulkInsert: %w", apperrors.NewElasticSearchError(res.StatusCode, e.Error.Type, e.Error.Reason))
	}
	return nil
}

func (l *logRepository) GetLatest(ctx context.Context, siteID string) (model.LogRecord, error) {
	records, err := l.search(ctx, siteID, 1)
	if err != nil {
		return model.LogRecord{}, fmt.Errorf("LogRepository.GetLatest: %w", err)
	}
	if len(records) == 0 {
		return model.LogRecord{}, fmt.Errorf("LogRepository.GetLatest: %w", apperrors.ErrLogRecordNotFound)
	}
	return records[0], nil
}

func (l *logRepository) GetRecent(ctx context.Context, siteID string, limit int) ([]model.LogRecord, error) {
	records, err := l.search(ctx, siteID, limit)
	if err != nil {
		return nil, fmt.Errorf("LogRepository.GetRecent: %w", err)
	}
	return records, nil
}

func (l *logRepository) search(ctx context.Context, siteID string, size int) ([]model.LogRecord, error) {
	query := map[string]interface{}{
		"size": size,
		"query": map[string]interface{}{
			"term": map[string]interface{}{
				"site_id": siteID,
			},
		},
		"sort": []map[string]interface{}{
			{
				"timestamp": map[string]interface{}{
					"order": "desc",
				},
			},
		},
	}
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(query); err != nil {
		return nil, fmt.Errorf("encode query: %w", err)
	}
	res, err := l.es.Search(
		l.es.Search.WithContext(ctx),
		l.es.Search.WithIndex(esCheckLogIndexName),
		l.es.Search.WithBody(&buf))
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	if res.IsError() {
		var e esErrorResponse
		if err = json.NewDecoder(res.Body).Decode(&e); err != nil {
			return nil, fmt.Errorf("decode err response: %w", err)
		}
		return nil, apperrors.NewElasticSearchError(res.StatusCode, e.Error.Type, e.Error.Reason)
	}
	var searchRes esSearchResponse
	if err = json.NewDecoder(res.Body).Decode(&searchRes); err != nil {
		return nil, fmt.Errorf("decode response body: %w", err)
	}
	records := make([]model.LogRecord, 0, len(searchRes.Hits.Hits))
	for _, hit := range searchRes.Hits.Hits {
		records = append(records, hit.Source)
	}
	return records, nil
}

// DeleteOlderThan removes log records whose timestamp is before cutoff. Used
// by the retention job.
func (l *logRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) error {
	query := map[string]interface{}{
		"query": map[string]interface{}{
			"range": map[string]interface{}{
				"timestamp": map[string]interface{}{
					"lt": cutoff,
				},
			},
		},
	}
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(query); err != nil {
		return fmt.Errorf("LogRepository.DeleteOlderThan encode query: %w", err)
	}
	res, err := l.es.DeleteByQuery(
		[]string{esCheckLogIndexName},
		&buf,
		l.es.DeleteByQuery.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("LogRepository.DeleteOlderThan: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		var e esErrorResponse
		if err = json.NewDecoder(res.Body).Decode(&e); err != nil {
			return fmt.Errorf("LogRepository.DeleteOlderThan decode err response: %w", err)
		}
		return fmt.Errorf("LogRepository.DeleteOlderThan: %w", apperrors.NewElasticSearchError(res.StatusCode, e.Error.Type, e.Error.Reason))
	}
	return nil
}

func NewLogRepository(esClient *elasticsearch.Client) LogRepository {
	return &logRepository{
		es: esClient,
	}
}
