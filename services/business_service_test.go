package services

import (
	"context"
	"reflect"
	"sort"
	"testing"

	"github.com/wen-dev/wen_backend/models"
)

type recordedEvent struct {
	before, after *models.Business
}

func newRecordingDispatcher() (*Dispatcher, *[]recordedEvent) {
	dispatcher := NewDispatcher()
	events := &[]recordedEvent{}
	dispatcher.OnBusinessChange(func(_ context.Context, before, after *models.Business) error {
		*events = append(*events, recordedEvent{before: before, after: after})
		return nil
	})
	return dispatcher, events
}

func TestBusinessCreate_DerivesFieldsAndNotifies(t *testing.T) {
	businesses := newMemBusinessRepo()
	categories := newMemCategoryRepo()
	dispatcher, events := newRecordingDispatcher()
	category := categories.add(models.Category{Name: "Restaurants"})

	svc := NewBusinessService(businesses, categories, dispatcher)
	got, err := svc.Create(context.Background(), models.BusinessRequest{
		Name:        "Al Madina Bistro",
		Description: "Modern Emirati fusion cuisine.",
		CategoryID:  category.ID.Hex(),
		Location:    models.Location{Lat: 25.2048, Lng: 55.2708},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if got.Geohash != "thrr3squw" {
		t.Errorf("geohash = %q, want thrr3squw", got.Geohash)
	}
	wantKeywords := []string{"al", "bistro", "cuisine", "emirati", "fusion", "madina", "modern", "restaurants"}
	gotKeywords := append([]string(nil), got.SearchKeywords...)
	sort.Strings(gotKeywords)
	if !reflect.DeepEqual(gotKeywords, wantKeywords) {
		t.Errorf("searchKeywords = %v, want %v", gotKeywords, wantKeywords)
	}
	if got.Approved {
		t.Error("new listing must start unapproved")
	}
	if got.Plan != models.PlanFree {
		t.Errorf("plan = %q, want free default", got.Plan)
	}

	if len(*events) != 1 {
		t.Fatalf("dispatcher saw %d events, want 1", len(*events))
	}
	event := (*events)[0]
	if event.before != nil || event.after == nil || event.after.ID != got.ID {
		t.Errorf("create event = (%v, %v), want (nil, created listing)", event.before, event.after)
	}
}

func TestBusinessUpdate_RecomputesDerivedFields(t *testing.T) {
	businesses := newMemBusinessRepo()
	categories := newMemCategoryRepo()
	dispatcher, events := newRecordingDispatcher()
	restaurants := categories.add(models.Category{Name: "Restaurants"})
	beauty := categories.add(models.Category{Name: "Beauty"})

	svc := NewBusinessService(businesses, categories, dispatcher)
	created, err := svc.Create(context.Background(), models.BusinessRequest{
		Name:       "Palm Lounge",
		CategoryID: restaurants.ID.Hex(),
		Location:   models.Location{Lat: 25.2048, Lng: 55.2708},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	updated, err := svc.Update(context.Background(), created.ID.Hex(), models.BusinessRequest{
		Name:        "Palm Beauty Lounge",
		Description: "Organic treatments",
		CategoryID:  beauty.ID.Hex(),
		Location:    models.Location{Lat: 25.1291, Lng: 55.1170},
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}

	if updated.Geohash != "thrnynwgx" {
		t.Errorf("geohash = %q, want thrnynwgx", updated.Geohash)
	}
	keywords := map[string]bool{}
	for _, kw := range updated.SearchKeywords {
		keywords[kw] = true
	}
	if !keywords["beauty"] || keywords["restaurants"] {
		t.Errorf("keywords %v not recomputed from the new category", updated.SearchKeywords)
	}

	if len(*events) != 2 {
		t.Fatalf("dispatcher saw %d events, want 2", len(*events))
	}
	event := (*events)[1]
	if event.before == nil || event.before.Name != "Palm Lounge" {
		t.Error("update event missing before state")
	}
	if event.after == nil || event.after.Name != "Palm Beauty Lounge" {
		t.Error("update event missing after state")
	}
}

func TestBusinessCreate_UnknownCategory(t *testing.T) {
	svc := NewBusinessService(newMemBusinessRepo(), newMemCategoryRepo(), NewDispatcher())
	_, err := svc.Create(context.Background(), models.BusinessRequest{
		Name:       "Nowhere",
		CategoryID: "64b000000000000000000001",
	})
	if err != ErrNotFound {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestBusinessCreate_InvalidLocation(t *testing.T) {
	categories := newMemCategoryRepo()
	category := categories.add(models.Category{Name: "Retail"})
	svc := NewBusinessService(newMemBusinessRepo(), categories, NewDispatcher())

	_, err := svc.Create(context.Background(), models.BusinessRequest{
		Name:       "Broken Pin",
		CategoryID: category.ID.Hex(),
		Location:   models.Location{Lat: 120, Lng: 0},
	})
	if err != ErrInvalidArgument {
		t.Fatalf("err = %v, want ErrInvalidArgument", err)
	}
}

func TestBusinessDelete_NotifiesWithNilAfter(t *testing.T) {
	businesses := newMemBusinessRepo()
	categories := newMemCategoryRepo()
	dispatcher, events := newRecordingDispatcher()
	category := categories.add(models.Category{Name: "Retail"})

	svc := NewBusinessService(businesses, categories, dispatcher)
	created, err := svc.Create(context.Background(), models.BusinessRequest{
		Name:       "Pop-up Store",
		CategoryID: category.ID.Hex(),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := svc.Delete(context.Background(), created.ID.Hex()); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	event := (*events)[len(*events)-1]
	if event.before == nil || event.after != nil {
		t.Errorf("delete event = (%v, %v), want (listing, nil)", event.before, event.after)
	}
	if got, _ := businesses.GetByID(context.Background(), created.ID); got != nil {
		t.Error("listing still present after delete")
	}
}
