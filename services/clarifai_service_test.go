package services

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClarifai(srv *httptest.Server) *ClarifaiService {
	return &ClarifaiService{
		apiKey:   "test-key",
		endpoint: srv.URL,
		client:   &http.Client{Timeout: 5 * time.Second},
	}
}

func TestAnalyzeFoodParsesConceptsInOrder(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Key test-key", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var in clarifaiInputs
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		if assert.Len(t, in.Inputs, 1) {
			assert.Equal(t, "AAAB", in.Inputs[0].Data.Image.Base64)
		}

		w.Write([]byte(`{"outputs":[{"data":{"concepts":[
			{"id":"c1","name":"burger","value":0.87},
			{"id":"c2","name":"sandwich","value":0.41}
		]}}]}`))
	}))
	defer srv.Close()

	concepts, err := newTestClarifai(srv).AnalyzeFood("AAAB")
	require.NoError(t, err)
	require.Len(t, concepts, 2)
	assert.Equal(t, FoodConcept{Name: "burger", Confidence: 0.87}, concepts[0])
	assert.Equal(t, FoodConcept{Name: "sandwich", Confidence: 0.41}, concepts[1])
}

func TestAnalyzeFoodStripsDataURIPrefix(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var in clarifaiInputs
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		if assert.Len(t, in.Inputs, 1) {
			assert.Equal(t, "AAAB", in.Inputs[0].Data.Image.Base64)
		}
		w.Write([]byte(`{"outputs":[{"data":{"concepts":[]}}]}`))
	}))
	defer srv.Close()

	_, err := newTestClarifai(srv).AnalyzeFood("data:image/jpeg;base64,AAAB")
	require.NoError(t, err)
}

func TestAnalyzeFoodEmptyConceptsIsNotAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"outputs":[{"data":{"concepts":[]}}]}`))
	}))
	defer srv.Close()

	concepts, err := newTestClarifai(srv).AnalyzeFood("AAAB")
	require.NoError(t, err)
	assert.Empty(t, concepts)
}

func TestAnalyzeFoodBadStatusIsVisionError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"status":{"code":11009,"description":"invalid api key"}}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	_, err := newTestClarifai(srv).AnalyzeFood("AAAB")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrVision))
}

func TestAnalyzeFoodMalformedBodyIsVisionError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json at all`))
	}))
	defer srv.Close()

	_, err := newTestClarifai(srv).AnalyzeFood("AAAB")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrVision))
}

func TestAnalyzeFoodMissingOutputsIsVisionError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"outputs":[]}`))
	}))
	defer srv.Close()

	_, err := newTestClarifai(srv).AnalyzeFood("AAAB")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrVision))
}

func TestAnalyzeFoodTransportFailureIsVisionError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	_, err := newTestClarifai(srv).AnalyzeFood("AAAB")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrVision))
}
