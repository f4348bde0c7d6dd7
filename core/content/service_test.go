package content

import (
	"context"
	"testing"

	"memoria-app-api/core/domain"
	coreerrors "memoria-app-api/core/errors"
	"memoria-app-api/core/interfaces"
)

const (
	articlesURL = "https://content.example.com/articles.json"
	placesURL   = "https://content.example.com/places.json"
)

func newTestService(client *mockHTTPClient, wordLimit int) (*Service, *mockKV) {
	kv := newMockKV()
	svc := NewService(testDeps(kv, client), Config{
		ArticlesURL: articlesURL,
		PlacesURL:   placesURL,
		WordLimit:   wordLimit,
	})
	return svc, kv
}

func TestListArticles_AttachesPreviews(t *testing.T) {
	client := newMockHTTPClient()
	client.responses[articlesURL] = &mockResponse{
		status: 200,
		body: []byte(`[
			{"id": "a1", "title": "First", "article_description": "hello world", "link": "https://example.com/1"},
			{"id": "a2", "title": "Second", "article_description": "one two three", "link": "https://example.com/2"}
		]`),
	}
	svc, _ := newTestService(client, 2)

	articles, err := svc.ListArticles(context.Background())

	if err != nil {
		t.Fatalf("ListArticles returned error: %v", err)
	}
	if len(articles) != 2 {
		t.Fatalf("len(articles) = %d, want 2", len(articles))
	}
	if articles[0].Preview == nil || articles[0].Preview.ProcessedMarkup != "hello world" {
		t.Errorf("articles[0].Preview = %+v, want untruncated 'hello world'", articles[0].Preview)
	}
	if articles[0].Preview.IsTruncated {
		t.Error("two-word description reported as truncated at limit 2")
	}
	if articles[1].Preview == nil || !articles[1].Preview.IsTruncated {
		t.Fatalf("articles[1].Preview = %+v, want truncated", articles[1].Preview)
	}
	if articles[1].Preview.ProcessedMarkup != "one two…" {
		t.Errorf("truncated markup = %q, want %q", articles[1].Preview.ProcessedMarkup, "one two…")
	}
}

func TestListArticles_SanitizesDescriptions(t *testing.T) {
	client := newMockHTTPClient()
	client.responses[articlesURL] = &mockResponse{
		status: 200,
		body:   []byte(`[{"id": "a1", "title": "T", "article_description": "<p>hello <script>alert(1)</script>world</p>"}]`),
	}
	svc, _ := newTestService(client, 40)

	articles, err := svc.ListArticles(context.Background())

	if err != nil {
		t.Fatalf("ListArticles returned error: %v", err)
	}
	if got := articles[0].Preview.ProcessedMarkup; got != "<p>hello world</p>" {
		t.Errorf("ProcessedMarkup = %q, want script dropped with its content", got)
	}
}

func TestListArticles_CachesResponseBody(t *testing.T) {
	client := newMockHTTPClient()
	client.responses[articlesURL] = &mockResponse{
		status: 200,
		body:   []byte(`[{"id": "a1", "title": "T", "article_description": "d"}]`),
	}
	svc, _ := newTestService(client, 40)

	if _, err := svc.ListArticles(context.Background()); err != nil {
		t.Fatalf("first ListArticles returned error: %v", err)
	}
	if _, err := svc.ListArticles(context.Background()); err != nil {
		t.Fatalf("second ListArticles returned error: %v", err)
	}

	if len(client.requests) != 1 {
		t.Errorf("HTTP requests = %d, want 1 (second call served from cache)", len(client.requests))
	}
}

func TestListArticles_Non200Status(t *testing.T) {
	client := newMockHTTPClient()
	client.responses[articlesURL] = &mockResponse{status: 503}
	svc, _ := newTestService(client, 40)

	_, err := svc.ListArticles(context.Background())
	if !coreerrors.IsExternalAPI(err) {
		t.Errorf("error = %v, want ExternalAPIError", err)
	}
}

func TestListArticles_MissingEndpoint(t *testing.T) {
	svc := NewService(testDeps(newMockKV(), newMockHTTPClient()), Config{})

	if _, err := svc.ListArticles(context.Background()); err == nil {
		t.Error("ListArticles succeeded with no endpoint configured")
	}
}

func TestListArticles_BackfillsThumbnailsFromMetadata(t *testing.T) {
	client := newMockHTTPClient()
	client.responses[articlesURL] = &mockResponse{
		status: 200,
		body:   []byte(`[{"id": "a1", "title": "T", "article_description": "d", "link": "https://example.com/1"}]`),
	}
	svc, _ := newTestService(client, 40)
	svc.SetMetadataService(&mockMetadataService{
		results: map[string]*interfaces.MetadataResult{
			"https://example.com/1": {Thumbnail: "https://example.com/og.jpg"},
		},
	})

	articles, err := svc.ListArticles(context.Background())

	if err != nil {
		t.Fatalf("ListArticles returned error: %v", err)
	}
	if articles[0].Thumbnail != "https://example.com/og.jpg" {
		t.Errorf("Thumbnail = %q, want the metadata og image", articles[0].Thumbnail)
	}
}

func TestListArticles_SkipsBackfillWhenThumbnailPresent(t *testing.T) {
	client := newMockHTTPClient()
	client.responses[articlesURL] = &mockResponse{
		status: 200,
		body:   []byte(`[{"id": "a1", "title": "T", "article_description": "d", "link": "https://example.com/1", "thumbnail": "https://example.com/own.jpg"}]`),
	}
	svc, _ := newTestService(client, 40)
	meta := &mockMetadataService{}
	svc.SetMetadataService(meta)

	if _, err := svc.ListArticles(context.Background()); err != nil {
		t.Fatalf("ListArticles returned error: %v", err)
	}
	if len(meta.calls) != 0 {
		t.Errorf("metadata calls = %v, want none for articles that already carry a thumbnail", meta.calls)
	}
}

func TestListArticles_AttachesThumbnailColors(t *testing.T) {
	client := newMockHTTPClient()
	client.responses[articlesURL] = &mockResponse{
		status: 200,
		body:   []byte(`[{"id": "a1", "title": "T", "article_description": "d", "thumbnail": "https://example.com/t.jpg"}]`),
	}
	svc, _ := newTestService(client, 40)
	svc.SetThumbnailColorService(&mockColorService{
		colors: map[string]*domain.RGBColor{
			"https://example.com/t.jpg": {R: 10, G: 20, B: 30},
		},
	})

	articles, err := svc.ListArticles(context.Background())

	if err != nil {
		t.Fatalf("ListArticles returned error: %v", err)
	}
	if got := articles[0].ThumbnailColor; got == nil || got.R != 10 || got.G != 20 || got.B != 30 {
		t.Errorf("ThumbnailColor = %+v, want {10 20 30}", got)
	}
}

func TestListPlaces_AttachesPreviews(t *testing.T) {
	client := newMockHTTPClient()
	client.responses[placesURL] = &mockResponse{
		status: 200,
		body:   []byte(`[{"id": "p1", "name": "Harbor", "place_description": "a quiet harbor", "lat": 1.5, "lon": 2.5}]`),
	}
	svc, _ := newTestService(client, 40)

	places, err := svc.ListPlaces(context.Background())

	if err != nil {
		t.Fatalf("ListPlaces returned error: %v", err)
	}
	if len(places) != 1 {
		t.Fatalf("len(places) = %d, want 1", len(places))
	}
	if places[0].Preview == nil || places[0].Preview.ProcessedMarkup != "a quiet harbor" {
		t.Errorf("Preview = %+v, want 'a quiet harbor'", places[0].Preview)
	}
	if places[0].Lat != 1.5 || places[0].Lon != 2.5 {
		t.Errorf("coordinates = (%v, %v), want (1.5, 2.5)", places[0].Lat, places[0].Lon)
	}
}

func TestGetArticle_ReturnsFullSanitizedDescription(t *testing.T) {
	client := newMockHTTPClient()
	client.responses[articlesURL] = &mockResponse{
		status: 200,
		body:   []byte(`[{"id": "a1", "title": "T", "article_description": "<a href=\"https://example.com\">read</a> more"}]`),
	}
	svc, _ := newTestService(client, 1)

	article, err := svc.GetArticle(context.Background(), "a1")

	if err != nil {
		t.Fatalf("GetArticle returned error: %v", err)
	}
	// Detail context sanitizes but keeps links and never truncates
	want := `<a href="https://example.com">read</a> more`
	if article.Preview.ProcessedMarkup != want {
		t.Errorf("ProcessedMarkup = %q, want %q", article.Preview.ProcessedMarkup, want)
	}
	if article.Preview.IsTruncated {
		t.Error("detail context reported truncation")
	}
}

func TestGetArticle_NotFound(t *testing.T) {
	client := newMockHTTPClient()
	client.responses[articlesURL] = &mockResponse{status: 200, body: []byte(`[]`)}
	svc, _ := newTestService(client, 40)

	_, err := svc.GetArticle(context.Background(), "missing")
	if !coreerrors.IsNotFound(err) {
		t.Errorf("error = %v, want NotFoundError", err)
	}
}

func TestGetArticle_EmptyID(t *testing.T) {
	svc, _ := newTestService(newMockHTTPClient(), 40)

	_, err := svc.GetArticle(context.Background(), "")
	if !coreerrors.IsValidation(err) {
		t.Errorf("error = %v, want ValidationError", err)
	}
}

func TestGetPlace_NotFound(t *testing.T) {
	client := newMockHTTPClient()
	client.responses[placesURL] = &mockResponse{status: 200, body: []byte(`[]`)}
	svc, _ := newTestService(client, 40)

	_, err := svc.GetPlace(context.Background(), "missing")
	if !coreerrors.IsNotFound(err) {
		t.Errorf("error = %v, want NotFoundError", err)
	}
}

func TestFetchFeed_MapsItemsToArticles(t *testing.T) {
	const feedURL = "https://feeds.example.com/rss"
	client := newMockHTTPClient()
	client.responses[feedURL] = &mockResponse{
		status: 200,
		body: []byte(`<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>Example</title>
    <item>
      <title>First post</title>
      <link>https://example.com/1</link>
      <guid>guid-1</guid>
      <description>first description</description>
      <enclosure url="https://example.com/1.jpg" type="image/jpeg" length="100"/>
    </item>
    <item>
      <title>Second post</title>
      <link>https://example.com/2</link>
      <description>second description</description>
    </item>
  </channel>
</rss>`),
	}
	svc, _ := newTestService(client, 40)

	articles, err := svc.FetchFeed(context.Background(), feedURL)

	if err != nil {
		t.Fatalf("FetchFeed returned error: %v", err)
	}
	if len(articles) != 2 {
		t.Fatalf("len(articles) = %d, want 2", len(articles))
	}
	if articles[0].ID != "guid-1" || articles[0].Title != "First post" {
		t.Errorf("articles[0] = %+v, want guid-1 / First post", articles[0])
	}
	if articles[0].Thumbnail != "https://example.com/1.jpg" {
		t.Errorf("Thumbnail = %q, want the image enclosure", articles[0].Thumbnail)
	}
	if articles[1].ID != "https://example.com/2" {
		t.Errorf("articles[1].ID = %q, want the link fallback", articles[1].ID)
	}
}

func TestFetchFeed_InvalidURL(t *testing.T) {
	svc, _ := newTestService(newMockHTTPClient(), 40)

	if _, err := svc.FetchFeed(context.Background(), "not a url"); err == nil {
		t.Error("FetchFeed accepted a malformed URL")
	}
}

func TestFetchFeed_Non200Status(t *testing.T) {
	const feedURL = "https://feeds.example.com/rss"
	client := newMockHTTPClient()
	client.responses[feedURL] = &mockResponse{status: 500}
	svc, _ := newTestService(client, 40)

	_, err := svc.FetchFeed(context.Background(), feedURL)
	if !coreerrors.IsExternalAPI(err) {
		t.Errorf("error = %v, want ExternalAPIError", err)
	}
}
