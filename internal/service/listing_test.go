package service

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/davrbek/facegate/internal/backend"
	"github.com/davrbek/facegate/internal/listing"
)

func collectionBody(n, page, lastPage, perPage, total int) string {
	models := ""
	for i := 0; i < n; i++ {
		if i > 0 {
			models += ","
		}
		models += fmt.Sprintf(`{"id":%d,"first_name":"U%d","last_name":"L"}`, i+1, i+1)
	}
	return fmt.Sprintf(`{"data":{"models":[%s],"meta":{"current_page":%d,"last_page":%d,"per_page":%d,"total":%d}}}`,
		models, page, lastPage, perPage, total)
}

func TestUserListPageTranslation(t *testing.T) {
	var gotPage, gotLimit string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPage = r.URL.Query().Get("page")
		gotLimit = r.URL.Query().Get("limit")
		w.Write([]byte(collectionBody(2, 3, 5, 10, 42)))
	}))
	t.Cleanup(srv.Close)

	client := backend.New(srv.URL, time.Second, discardLogger())
	svc := NewUserService(client, discardLogger())

	q := listing.NewQuery(nil).WithPage(2) // UI-страница 2 (нумерация с 0)
	page, err := svc.List(context.Background(), backend.Credentials{}, q)
	if err != nil {
		t.Fatalf("List: %v", err)
	}

	if gotPage != "3" {
		t.Errorf("на проводе page = %q, ожидалось 3", gotPage)
	}
	if gotLimit != "10" {
		t.Errorf("на проводе limit = %q, ожидалось 10", gotLimit)
	}
	if page.Index != 2 {
		t.Errorf("Page.Index = %d, ожидалось 2", page.Index)
	}
	if page.TotalPages != 5 || page.Total != 42 {
		t.Errorf("page = %+v", page)
	}
}

func TestUserListSentinelFiltersOmitted(t *testing.T) {
	var gotQuery map[string][]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Write([]byte(collectionBody(0, 1, 1, 10, 0)))
	}))
	t.Cleanup(srv.Close)

	client := backend.New(srv.URL, time.Second, discardLogger())
	svc := NewUserService(client, discardLogger())

	q := listing.NewQuery(listing.Filters{
		"status": listing.FilterAll,
		"search": "",
		"role":   "admin",
	})
	if _, err := svc.List(context.Background(), backend.Credentials{}, q); err != nil {
		t.Fatalf("List: %v", err)
	}

	if _, ok := gotQuery["status"]; ok {
		t.Error("фильтр-sentinel 'all' не должен уходить на провод")
	}
	if _, ok := gotQuery["search"]; ok {
		t.Error("пустой фильтр не должен уходить на провод")
	}
	if got := gotQuery["role"]; len(got) != 1 || got[0] != "admin" {
		t.Errorf("role = %v", got)
	}
}

func TestUserListPerPageAllMaterialized(t *testing.T) {
	var limits []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		limit := r.URL.Query().Get("limit")
		limits = append(limits, limit)
		if limit == "1" {
			// Зонд меты.
			w.Write([]byte(collectionBody(1, 1, 17, 1, 17)))
			return
		}
		w.Write([]byte(collectionBody(17, 1, 1, 17, 17)))
	}))
	t.Cleanup(srv.Close)

	client := backend.New(srv.URL, time.Second, discardLogger())
	svc := NewUserService(client, discardLogger())

	q := listing.NewQuery(nil).WithPerPage(listing.PerPageAll)
	page, err := svc.List(context.Background(), backend.Credentials{}, q)
	if err != nil {
		t.Fatalf("List: %v", err)
	}

	if len(limits) != 2 || limits[0] != "1" || limits[1] != "17" {
		t.Errorf("limits на проводе = %v, ожидалось [1 17]", limits)
	}
	if len(page.Items) != 17 {
		t.Errorf("len(Items) = %d, ожидалось 17", len(page.Items))
	}
}

func TestUserListBackendDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	client := backend.New(srv.URL, time.Second, discardLogger())
	svc := NewUserService(client, discardLogger())

	_, err := svc.List(context.Background(), backend.Credentials{}, listing.NewQuery(nil))
	if err == nil {
		t.Fatal("ожидалась ошибка")
	}
}
