package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
)

var pngBytes = []byte("\x89PNG\r\n\x1a\nrest-of-a-tiny-png")

// galleryServer fakes the image endpoints over an in-memory list, assigning
// sub-identifiers the way the real store does.
func galleryServer(t *testing.T, requests *atomic.Int64) (*httptest.Server, *[]Image) {
	t.Helper()

	images := new([]Image)
	next := 0

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/blog/7/images", func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)

		var payload struct {
			ImageURL string `json:"imageUrl"`
		}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || len(payload.ImageURL) == 0 {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]string{"message": "image url is required"})
			return
		}

		next++
		image := Image{URL: payload.ImageURL, Source: "manual", SubID: fmt.Sprintf("srv-%d", next)}
		*images = append(*images, image)

		json.NewEncoder(w).Encode(map[string]any{"success": true, "image": image})
	})
	mux.HandleFunc("DELETE /api/blog/7/images/{token}", func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)

		token := r.PathValue("token")
		list := *images
		for idx := range list {
			if fmt.Sprint(idx) == token || list[idx].SubID == token {
				*images = append(list[:idx], list[idx+1:]...)
				json.NewEncoder(w).Encode(map[string]any{"success": true, "message": "image removed successfully"})
				return
			}
		}

		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"message": "image not found"})
	})
	mux.HandleFunc("GET /api/blog/7", func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		json.NewEncoder(w).Encode(map[string]any{"id": 7, "images": *images})
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	return srv, images
}

func TestGalleryAddAppendsServerConfirmedEntry(t *testing.T) {
	var requests atomic.Int64
	srv, serverImages := galleryServer(t, &requests)

	api := New(Config{BaseURL: srv.URL + "/api"})
	gallery := NewGallery(api, 7, nil)

	image, err := gallery.AddBytes(context.Background(), pngBytes)
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	if !strings.HasPrefix(image.URL, "data:image/png;base64,") {
		t.Errorf("url = %q, want a png data url", image.URL)
	}
	if image.SubID != "srv-1" {
		t.Errorf("sub id = %q, want the server-assigned srv-1", image.SubID)
	}

	local := gallery.Images()
	if len(local) != 1 || local[0].SubID != "srv-1" {
		t.Errorf("local list = %v, want the server-confirmed entry", local)
	}
	if len(*serverImages) != 1 {
		t.Errorf("server list length = %d, want 1", len(*serverImages))
	}
}

func TestGalleryRejectsNonImageLocally(t *testing.T) {
	var requests atomic.Int64
	srv, _ := galleryServer(t, &requests)

	api := New(Config{BaseURL: srv.URL + "/api"})
	gallery := NewGallery(api, 7, nil)

	_, err := gallery.AddBytes(context.Background(), []byte("just some plain text, honestly"))
	if KindOf(err) != KindInvalidRequest {
		t.Errorf("kind = %s, want %s", KindOf(err), KindInvalidRequest)
	}
	if requests.Load() != 0 {
		t.Errorf("local rejection still sent %d requests", requests.Load())
	}
	if gallery.Len() != 0 {
		t.Errorf("local list length = %d, want 0", gallery.Len())
	}
}

func TestGalleryRejectsOversizeLocally(t *testing.T) {
	var requests atomic.Int64
	srv, _ := galleryServer(t, &requests)

	api := New(Config{BaseURL: srv.URL + "/api"})
	gallery := NewGallery(api, 7, nil)

	oversize := append([]byte{}, pngBytes...)
	oversize = append(oversize, make([]byte, MaxUploadSize)...)

	_, err := gallery.AddBytes(context.Background(), oversize)
	if KindOf(err) != KindInvalidRequest {
		t.Errorf("kind = %s, want %s", KindOf(err), KindInvalidRequest)
	}
	if requests.Load() != 0 {
		t.Errorf("local rejection still sent %d requests", requests.Load())
	}
}

func TestGalleryRemoveReconcilesByIndex(t *testing.T) {
	var requests atomic.Int64
	srv, serverImages := galleryServer(t, &requests)

	api := New(Config{BaseURL: srv.URL + "/api"})
	gallery := NewGallery(api, 7, nil)

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		if _, err := gallery.AddBytes(ctx, pngBytes); err != nil {
			t.Fatalf("add #%d: %v", i, err)
		}
	}

	if err := gallery.Remove(ctx, 1); err != nil {
		t.Fatalf("remove: %v", err)
	}

	local := gallery.Images()
	if len(local) != 2 || local[0].SubID != "srv-1" || local[1].SubID != "srv-3" {
		t.Fatalf("local list = %v, want [srv-1, srv-3]", local)
	}
	if len(*serverImages) != 2 || (*serverImages)[1].SubID != "srv-3" {
		t.Fatalf("server list = %v, want [srv-1, srv-3]", *serverImages)
	}
}

func TestGalleryRemoveFailsClosed(t *testing.T) {
	var requests atomic.Int64
	srv, serverImages := galleryServer(t, &requests)

	api := New(Config{BaseURL: srv.URL + "/api"})
	gallery := NewGallery(api, 7, nil)

	ctx := context.Background()
	if _, err := gallery.AddBytes(ctx, pngBytes); err != nil {
		t.Fatalf("add: %v", err)
	}

	// Somebody else emptied the server-side list behind our back.
	*serverImages = nil

	if err := gallery.Remove(ctx, 0); KindOf(err) != KindNotFound {
		t.Fatalf("kind = %s, want %s", KindOf(err), KindNotFound)
	}
	if gallery.Len() != 1 {
		t.Errorf("local list length = %d after failed removal, want 1 (fail-closed)", gallery.Len())
	}

	// Out-of-range indexes are refused before any request is sent.
	sent := requests.Load()
	if err := gallery.Remove(ctx, 5); KindOf(err) != KindInvalidRequest {
		t.Errorf("kind = %s, want %s", KindOf(err), KindInvalidRequest)
	}
	if requests.Load() != sent {
		t.Error("out-of-range removal still sent a request")
	}
}

func TestGalleryRefreshAdoptsServerList(t *testing.T) {
	var requests atomic.Int64
	srv, serverImages := galleryServer(t, &requests)

	api := New(Config{BaseURL: srv.URL + "/api"})
	gallery := NewGallery(api, 7, nil)

	*serverImages = []Image{
		{URL: "https://example.com/a.jpg", Source: "manual", SubID: "srv-a"},
		{URL: "https://example.com/b.jpg", Source: "manual", SubID: "srv-b"},
	}

	if err := gallery.Refresh(context.Background()); err != nil {
		t.Fatalf("refresh: %v", err)
	}

	local := gallery.Images()
	if len(local) != 2 || local[0].SubID != "srv-a" {
		t.Errorf("local list = %v, want the server's", local)
	}
}

func TestEncodeImageDataURL(t *testing.T) {
	url, err := EncodeImageDataURL(pngBytes)
	if err != nil {
		t.Fatalf("encode png: %v", err)
	}
	if !strings.HasPrefix(url, "data:image/png;base64,") {
		t.Errorf("url = %q, want a png data url", url)
	}

	if _, err := EncodeImageDataURL([]byte("<html></html>")); err == nil {
		t.Error("encoding non-image bytes succeeded")
	}
}
