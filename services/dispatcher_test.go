package services

import (
	"context"
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/wen-dev/wen_backend/models"
)

func TestDispatcher_DeliversToAllHandlers(t *testing.T) {
	dispatcher := NewDispatcher()
	var first, second int
	dispatcher.OnBusinessChange(func(context.Context, *models.Business, *models.Business) error {
		first++
		return nil
	})
	dispatcher.OnBusinessChange(func(context.Context, *models.Business, *models.Business) error {
		second++
		return nil
	})

	business := &models.Business{ID: primitive.NewObjectID()}
	dispatcher.NotifyWrite(context.Background(), nil, business)

	if first != 1 || second != 1 {
		t.Errorf("handler calls = (%d, %d), want (1, 1)", first, second)
	}
}

func TestDispatcher_RetriesFailingHandlerOnce(t *testing.T) {
	dispatcher := NewDispatcher()
	var calls int
	dispatcher.OnBusinessChange(func(context.Context, *models.Business, *models.Business) error {
		calls++
		if calls == 1 {
			return errors.New("transient")
		}
		return nil
	})

	dispatcher.NotifyWrite(context.Background(), nil, &models.Business{})
	if calls != 2 {
		t.Errorf("handler calls = %d, want 2 (original + one retry)", calls)
	}
}

func TestDispatcher_GivesUpAfterRetry(t *testing.T) {
	dispatcher := NewDispatcher()
	var calls int
	dispatcher.OnBusinessChange(func(context.Context, *models.Business, *models.Business) error {
		calls++
		return errors.New("permanent")
	})

	dispatcher.NotifyWrite(context.Background(), nil, &models.Business{})
	if calls != 2 {
		t.Errorf("handler calls = %d, want 2", calls)
	}
}
