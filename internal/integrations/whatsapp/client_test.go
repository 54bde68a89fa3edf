package whatsapp

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/igextreme/agenda-service/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestSendText(t *testing.T) {
	var gotPath, gotAPIKey, gotContentType string
	var gotBody sendTextRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAPIKey = r.Header.Get("apikey")
		gotContentType = r.Header.Get("Content-Type")
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &gotBody)
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	client := NewClient(2*time.Second, false, nopLogger{})
	cfg := domain.WhatsappConfig{URL: srv.URL, Token: "secret-key", Instance: "minha-instancia"}

	err := client.SendText(context.Background(), cfg, "(11) 98888-7777", "Olá Maria!")
	require.NoError(t, err)

	assert.Equal(t, "/message/sendText/minha-instancia", gotPath)
	assert.Equal(t, "secret-key", gotAPIKey)
	assert.Equal(t, "application/json", gotContentType)

	assert.Equal(t, "5511988887777", gotBody.Number)
	assert.Equal(t, "Olá Maria!", gotBody.TextMessage.Text)
	assert.Equal(t, 1200, gotBody.Options.Delay)
	assert.Equal(t, "composing", gotBody.Options.Presence)
	assert.False(t, gotBody.Options.LinkPreview)
}

func TestSendTextIncompleteConfig(t *testing.T) {
	client := NewClient(time.Second, false, nopLogger{})

	tests := []struct {
		name string
		cfg  domain.WhatsappConfig
	}{
		{"empty", domain.WhatsappConfig{}},
		{"missing token", domain.WhatsappConfig{URL: "https://api.example.com", Instance: "x"}},
		{"missing instance", domain.WhatsappConfig{URL: "https://api.example.com", Token: "t"}},
		{"missing url", domain.WhatsappConfig{Token: "t", Instance: "x"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := client.SendText(context.Background(), tt.cfg, "11988887777", "oi")
			assert.ErrorIs(t, err, ErrNotConfigured)
		})
	}
}

func TestSendTextRejectsInsecureURLWhenRequired(t *testing.T) {
	client := NewClient(time.Second, true, nopLogger{})
	cfg := domain.WhatsappConfig{URL: "http://api.example.com", Token: "t", Instance: "x"}

	err := client.SendText(context.Background(), cfg, "11988887777", "oi")
	assert.ErrorIs(t, err, ErrInsecureURL)
}

func TestSendTextNon2xxResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "instance not found", http.StatusNotFound)
	}))
	defer srv.Close()

	client := NewClient(time.Second, false, nopLogger{})
	cfg := domain.WhatsappConfig{URL: srv.URL, Token: "t", Instance: "x"}

	err := client.SendText(context.Background(), cfg, "11988887777", "oi")
	assert.ErrorIs(t, err, ErrInvalidResponse)
	assert.Contains(t, err.Error(), "404")
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name         string
		raw          string
		requireHTTPS bool
		want         string
		wantErr      error
	}{
		{"bare host gets https", "api.example.com", false, "https://api.example.com", nil},
		{"trailing slash trimmed", "https://api.example.com/", false, "https://api.example.com", nil},
		{"whitespace trimmed", "  https://api.example.com  ", false, "https://api.example.com", nil},
		{"http kept when allowed", "http://localhost:8080", false, "http://localhost:8080", nil},
		{"http rejected when required", "http://api.example.com", true, "", ErrInsecureURL},
		{"empty", "   ", false, "", ErrNotConfigured},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeBaseURL(tt.raw, tt.requireHTTPS)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name    string
		phone   string
		want    string
		wantErr bool
	}{
		{"formatted mobile gets country code", "(11) 98888-7777", "5511988887777", false},
		{"bare 10 digit landline", "1133334444", "551133334444", false},
		{"already international", "5511988887777", "5511988887777", false},
		{"international with plus", "+55 11 98888-7777", "5511988887777", false},
		{"short number kept as is", "190", "190", false},
		{"no digits", "abc-def", "", true},
		{"empty", "", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizePhone(tt.phone)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidPhone)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
