package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"
)

// Default model endpoint. Overridable through CLARIFAI_ENDPOINT mainly so
// tests can point the client at a local server.
const defaultClarifaiEndpoint = "https://api.clarifai.com/v2/models/food-item-recognition/outputs"

// FoodConcept is one labeled hypothesis from the vision model: the label
// name and the model's confidence in [0,1]. The slice order is the
// vendor's own ranking and is passed through untouched.
type FoodConcept struct {
	Name       string
	Confidence float64
}

type ClarifaiService struct {
	apiKey   string
	endpoint string
	client   *http.Client
}

// NewClarifaiService reads the API key from the environment. A missing
// key is not an error here: the request is still sent and the vendor's
// 401 surfaces as a vision failure like any other.
func NewClarifaiService() *ClarifaiService {
	endpoint := os.Getenv("CLARIFAI_ENDPOINT")
	if endpoint == "" {
		endpoint = defaultClarifaiEndpoint
	}
	return &ClarifaiService{
		apiKey:   os.Getenv("CLARIFAI_API_KEY"),
		endpoint: endpoint,
		client:   &http.Client{Timeout: 15 * time.Second},
	}
}

type clarifaiImage struct {
	Base64 string `json:"base64"`
}

type clarifaiInput struct {
	Data struct {
		Image clarifaiImage `json:"image"`
	} `json:"data"`
}

type clarifaiInputs struct {
	Inputs []clarifaiInput `json:"inputs"`
}

type clarifaiPredictResponse struct {
	Outputs []struct {
		Data struct {
			Concepts []struct {
				ID    string  `json:"id"`
				Name  string  `json:"name"`
				Value float64 `json:"value"`
			} `json:"concepts"`
		} `json:"data"`
	} `json:"outputs"`
}

// AnalyzeFood sends one base64-encoded image to the food recognition
// model and returns its concepts in the vendor's ranking order. An empty
// concept list is a valid result, not an error. No retries, no caching:
// each call is one independent outbound request.
func (s *ClarifaiService) AnalyzeFood(base64Image string) ([]FoodConcept, error) {
	// Mobile clients send data URIs; the model wants bare base64.
	if strings.HasPrefix(base64Image, "data:") {
		if i := strings.Index(base64Image, ","); i >= 0 {
			base64Image = base64Image[i+1:]
		}
	}

	var in clarifaiInput
	in.Data.Image = clarifaiImage{Base64: base64Image}

	b, err := json.Marshal(clarifaiInputs{Inputs: []clarifaiInput{in}})
	if err != nil {
		return nil, fmt.Errorf("%w: request encoding", ErrVision)
	}

	req, err := http.NewRequest(http.MethodPost, s.endpoint, bytes.NewReader(b))
	if err != nil {
		log.Printf("clarifai: building request: %v", err)
		return nil, fmt.Errorf("%w: bad request", ErrVision)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Key "+s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		log.Printf("clarifai: request failed: %v", err)
		return nil, fmt.Errorf("%w: request failed", ErrVision)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Printf("clarifai: reading response: %v", err)
		return nil, fmt.Errorf("%w: reading response", ErrVision)
	}
	if resp.StatusCode != http.StatusOK {
		log.Printf("clarifai: status %d: %s", resp.StatusCode, string(body))
		return nil, fmt.Errorf("%w: status %d", ErrVision, resp.StatusCode)
	}

	var pr clarifaiPredictResponse
	if err := json.Unmarshal(body, &pr); err != nil {
		log.Printf("clarifai: parsing response: %v", err)
		return nil, fmt.Errorf("%w: malformed response", ErrVision)
	}
	if len(pr.Outputs) == 0 {
		log.Printf("clarifai: response missing outputs: %s", string(body))
		return nil, fmt.Errorf("%w: malformed response", ErrVision)
	}

	raw := pr.Outputs[0].Data.Concepts
	concepts := make([]FoodConcept, 0, len(raw))
	for i, c := range raw {
		// The vendor promises descending confidence; we trust the order
		// (no re-sort) but flag a violation when we see one.
		if i > 0 && c.Value > raw[i-1].Value {
			log.Printf("clarifai: concepts out of confidence order (%q %.3f after %q %.3f)",
				c.Name, c.Value, raw[i-1].Name, raw[i-1].Value)
		}
		concepts = append(concepts, FoodConcept{Name: c.Name, Confidence: c.Value})
	}
	return concepts, nil
}
