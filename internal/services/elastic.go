package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"

	"namo_back_end/internal/models"
)

const productIndex = "products"

var Elastic *elasticsearch.Client

// ConnectElastic is optional: without ELASTIC_URL the search endpoint falls
// back to the database.
func ConnectElastic() {
	url := os.Getenv("ELASTIC_URL")
	if url == "" {
		log.Println("⚠️ Elasticsearch not configured — product search will use the database")
		return
	}

	client, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses: []string{url},
		Username:  os.Getenv("ELASTIC_USER"),
		Password:  os.Getenv("ELASTIC_PASSWORD"),
	})
	if err != nil {
		log.Println("⚠️ Elasticsearch client error:", err)
		return
	}

	res, err := client.Info()
	if err != nil {
		log.Println("⚠️ Elasticsearch unreachable:", err)
		return
	}
	defer res.Body.Close()

	Elastic = client
	log.Println("✅ Connected to Elasticsearch")
}

// IndexProduct pushes a product into the search index. Fire-and-forget:
// callers run it in a goroutine and the catalog stays authoritative in SQL.
func IndexProduct(p models.Product) {
	if Elastic == nil {
		return
	}

	data, _ := json.Marshal(p)
	req := esapi.IndexRequest{
		Index:      productIndex,
		DocumentID: p.ID,
		Body:       bytes.NewReader(data),
		Refresh:    "true",
	}

	res, err := req.Do(context.Background(), Elastic)
	if err != nil {
		log.Println("❌ Elasticsearch index error:", err)
		return
	}
	defer res.Body.Close()

	if res.IsError() {
		log.Printf("⚠️ Elasticsearch rejected %s: %s", p.Name, res.String())
	}
}

// DeindexProduct removes a deleted product from the search index.
func DeindexProduct(id string) {
	if Elastic == nil {
		return
	}

	req := esapi.DeleteRequest{Index: productIndex, DocumentID: id}
	res, err := req.Do(context.Background(), Elastic)
	if err != nil {
		log.Println("❌ Elasticsearch delete error:", err)
		return
	}
	res.Body.Close()
}

// SearchProducts queries the index by name, description and category.
func SearchProducts(query string) ([]map[string]interface{}, error) {
	if Elastic == nil {
		return nil, errors.New("elasticsearch not configured")
	}

	var buf bytes.Buffer
	q := map[string]interface{}{
		"query": map[string]interface{}{
			"multi_match": map[string]interface{}{
				"query":  query,
				"fields": []string{"name", "description", "category"},
			},
		},
	}
	if err := json.NewEncoder(&buf).Encode(q); err != nil {
		return nil, fmt.Errorf("encode query: %w", err)
	}

	req := esapi.SearchRequest{
		Index: []string{productIndex},
		Body:  &buf,
	}
	res, err := req.Do(context.Background(), Elastic)
	if err != nil {
		return nil, fmt.Errorf("elasticsearch search: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return nil, errors.New("index missing or empty")
	}

	var r map[string]interface{}
	if err := json.NewDecoder(res.Body).Decode(&r); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	hitsData, ok := r["hits"].(map[string]interface{})
	if !ok {
		return nil, errors.New("malformed elasticsearch response")
	}
	hitsArray, _ := hitsData["hits"].([]interface{})

	results := make([]map[string]interface{}, 0, len(hitsArray))
	for _, hit := range hitsArray {
		hitMap, _ := hit.(map[string]interface{})
		if source, ok := hitMap["_source"].(map[string]interface{}); ok {
			results = append(results, source)
		}
	}
	return results, nil
}
