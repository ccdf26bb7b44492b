package utils

import (
	"reflect"
	"sort"
	"testing"
)

func sorted(s []string) []string {
	out := append([]string(nil), s...)
	sort.Strings(out)
	return out
}

func TestBuildSearchKeywords(t *testing.T) {
	got := BuildSearchKeywords("Al Madina Bistro", "restaurants")
	want := []string{"al", "bistro", "madina", "restaurants"}
	if !reflect.DeepEqual(sorted(got), want) {
		t.Errorf("BuildSearchKeywords = %v, want %v", got, want)
	}
}

func TestBuildSearchKeywords_DropsShortTokensAndPunctuation(t *testing.T) {
	got := BuildSearchKeywords("Date & Cardamom Latte", "a b c 12")
	for _, kw := range got {
		if len(kw) < 2 {
			t.Errorf("keyword %q shorter than 2 characters", kw)
		}
	}
	want := []string{"12", "cardamom", "date", "latte"}
	if !reflect.DeepEqual(sorted(got), want) {
		t.Errorf("BuildSearchKeywords = %v, want %v", got, want)
	}
}

func TestBuildSearchKeywords_EmptyInputs(t *testing.T) {
	if got := BuildSearchKeywords("", "", "  "); len(got) != 0 {
		t.Errorf("expected no keywords, got %v", got)
	}
	if got := BuildSearchKeywords(); len(got) != 0 {
		t.Errorf("expected no keywords for no inputs, got %v", got)
	}
}

func TestBuildSearchKeywords_DeduplicatesAcrossTexts(t *testing.T) {
	got := BuildSearchKeywords("coffee shop", "Coffee SHOP coffee")
	want := []string{"coffee", "shop"}
	if !reflect.DeepEqual(sorted(got), want) {
		t.Errorf("BuildSearchKeywords = %v, want %v", got, want)
	}
}

func TestBuildSearchKeywords_Idempotent(t *testing.T) {
	first := BuildSearchKeywords("Modern Emirati fusion cuisine with a rooftop terrace")
	second := BuildSearchKeywords(first...)
	if !reflect.DeepEqual(sorted(first), sorted(second)) {
		t.Errorf("re-extracting %v gave %v", first, second)
	}
}

func TestBuildSearchKeywords_NonASCIIBecomesSeparator(t *testing.T) {
	got := BuildSearchKeywords("Café-Restaurant")
	want := []string{"caf", "restaurant"}
	if !reflect.DeepEqual(sorted(got), want) {
		t.Errorf("BuildSearchKeywords = %v, want %v", got, want)
	}
}
