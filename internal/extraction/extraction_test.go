package extraction

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

const sampleHTML = `<!DOCTYPE html>
<html><head><title>Job</title><style>body { color: red }</style></head>
<body>
<nav>Home | Jobs | About</nav>
<main>
<h1>Backend Engineer</h1>
<p>We build resilient payment systems.</p>
<ul><li>Go experience</li><li>PostgreSQL experience</li></ul>
</main>
<footer>© Example Corp</footer>
<script>trackVisit()</script>
</body></html>`

func TestFromHTML(t *testing.T) {
	text, err := FromHTML(sampleHTML)
	if err != nil {
		t.Fatalf("FromHTML failed: %v", err)
	}

	for _, want := range []string{"Backend Engineer", "resilient payment systems", "Go experience"} {
		if !strings.Contains(text, want) {
			t.Errorf("extracted text missing %q:\n%s", want, text)
		}
	}
	for _, unwanted := range []string{"trackVisit", "color: red", "Home | Jobs"} {
		if strings.Contains(text, unwanted) {
			t.Errorf("extracted text contains noise %q:\n%s", unwanted, text)
		}
	}
}

func TestFromBytesPlainTextPassthrough(t *testing.T) {
	text, err := FromBytes([]byte("Jane Doe\n\n\n\nSenior   Engineer\r\nMadrid"))
	if err != nil {
		t.Fatalf("FromBytes failed: %v", err)
	}
	if text != "Jane Doe\n\nSenior Engineer\nMadrid" {
		t.Errorf("unexpected cleanup result: %q", text)
	}
}

func TestFromBytesDetectsHTML(t *testing.T) {
	text, err := FromBytes([]byte(sampleHTML))
	if err != nil {
		t.Fatalf("FromBytes failed: %v", err)
	}
	if strings.Contains(text, "<p>") {
		t.Errorf("HTML markup leaked into text: %q", text)
	}
}

func TestFromURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(sampleHTML))
	}))
	defer srv.Close()

	text, err := FromURL(context.Background(), srv.URL, nil)
	if err != nil {
		t.Fatalf("FromURL failed: %v", err)
	}
	if !strings.Contains(text, "Backend Engineer") {
		t.Errorf("fetched text missing content: %q", text)
	}
}

func TestFromURLRejectsBadURL(t *testing.T) {
	if _, err := FromURL(context.Background(), "not a url", nil); err == nil {
		t.Error("expected an error for an invalid URL")
	}
}

func TestFromURLReportsStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := FromURL(context.Background(), srv.URL, nil)
	if err == nil || !strings.Contains(err.Error(), "404") {
		t.Errorf("expected a 404 error, got %v", err)
	}
}
