package services

import (
	"context"
	"testing"
)

func TestCategory_CreateTopAndSub(t *testing.T) {
	categories := newMemCategoryRepo()
	svc := NewCategoryService(categories, nil)

	top, err := svc.CreateTop(context.Background(), "Restaurants")
	if err != nil {
		t.Fatalf("CreateTop: %v", err)
	}
	if top.ParentID != nil {
		t.Error("top-level category has a parent")
	}

	sub, err := svc.CreateSub(context.Background(), "Cafes", top.ID.Hex())
	if err != nil {
		t.Fatalf("CreateSub: %v", err)
	}
	if sub.ParentID == nil || *sub.ParentID != top.ID {
		t.Errorf("subcategory parent = %v, want %s", sub.ParentID, top.ID.Hex())
	}
}

func TestCategory_CreateSub_MissingParent(t *testing.T) {
	svc := NewCategoryService(newMemCategoryRepo(), nil)
	if _, err := svc.CreateSub(context.Background(), "Cafes", "64b000000000000000000001"); err != ErrNotFound {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestCategory_CreateSub_ParentMustBeTopLevel(t *testing.T) {
	categories := newMemCategoryRepo()
	svc := NewCategoryService(categories, nil)

	top, _ := svc.CreateTop(context.Background(), "Restaurants")
	sub, _ := svc.CreateSub(context.Background(), "Cafes", top.ID.Hex())

	// Depth is capped at two levels: a subcategory cannot be a parent.
	if _, err := svc.CreateSub(context.Background(), "Espresso Bars", sub.ID.Hex()); err != ErrNotFound {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestCategory_DeleteWithChildrenBlocked(t *testing.T) {
	categories := newMemCategoryRepo()
	svc := NewCategoryService(categories, nil)

	top, _ := svc.CreateTop(context.Background(), "Restaurants")
	if _, err := svc.CreateSub(context.Background(), "Cafes", top.ID.Hex()); err != nil {
		t.Fatalf("CreateSub: %v", err)
	}

	if err := svc.Delete(context.Background(), top.ID.Hex()); err != ErrHasChildren {
		t.Fatalf("err = %v, want ErrHasChildren", err)
	}
	if got, _ := categories.GetByID(context.Background(), top.ID); got == nil {
		t.Error("blocked delete still removed the category")
	}
}

func TestCategory_DeleteChildless(t *testing.T) {
	categories := newMemCategoryRepo()
	svc := NewCategoryService(categories, nil)

	top, _ := svc.CreateTop(context.Background(), "Beauty & Wellness")
	if err := svc.Delete(context.Background(), top.ID.Hex()); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	listed, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	for _, category := range listed {
		if category.ID == top.ID {
			t.Error("deleted category still listed")
		}
	}
}

func TestCategory_DeleteMissing(t *testing.T) {
	svc := NewCategoryService(newMemCategoryRepo(), nil)
	if err := svc.Delete(context.Background(), "64b000000000000000000001"); err != ErrNotFound {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestCategory_ListSortedByName(t *testing.T) {
	categories := newMemCategoryRepo()
	svc := NewCategoryService(categories, nil)

	for _, name := range []string{"Retail", "Beauty", "Professional Services"} {
		if _, err := svc.CreateTop(context.Background(), name); err != nil {
			t.Fatalf("CreateTop(%s): %v", name, err)
		}
	}

	listed, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	want := []string{"Beauty", "Professional Services", "Retail"}
	if len(listed) != len(want) {
		t.Fatalf("listed %d categories, want %d", len(listed), len(want))
	}
	for i, name := range want {
		if listed[i].Name != name {
			t.Errorf("listed[%d] = %q, want %q", i, listed[i].Name, name)
		}
	}
}

func TestCategory_Validation(t *testing.T) {
	svc := NewCategoryService(newMemCategoryRepo(), nil)

	if _, err := svc.CreateTop(context.Background(), ""); err != ErrInvalidArgument {
		t.Errorf("empty name: err = %v, want ErrInvalidArgument", err)
	}
	if _, err := svc.CreateSub(context.Background(), "Cafes", "not-an-id"); err != ErrInvalidArgument {
		t.Errorf("malformed parent: err = %v, want ErrInvalidArgument", err)
	}
	if err := svc.Delete(context.Background(), ""); err != ErrInvalidArgument {
		t.Errorf("empty id: err = %v, want ErrInvalidArgument", err)
	}
}
