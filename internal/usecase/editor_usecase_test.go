package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"smeta_admin/internal/domain/entities"
	mock_interfaces "smeta_admin/internal/usecase/interfaces/mocks"
)

func editorWithSession(t *testing.T, gateway *mock_interfaces.MockIEstimateGateway, estimate *entities.Estimate) (*EstimateEditorUseCase, string) {
	t.Helper()
	gateway.EXPECT().GetProject(gomock.Any(), int64(1)).Return(entities.Project{ID: 1, Title: "Site A"}, nil)
	gateway.EXPECT().GetEstimate(gomock.Any(), int64(1)).Return(estimate, nil)
	gateway.EXPECT().ListPartners(gomock.Any()).Return([]entities.Partner{{ID: 3, Name: "Supplier"}}, nil)

	uc := NewEstimateEditorUseCase(gateway)
	snap, err := uc.Open(context.Background(), 1)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	return uc, snap.SessionID
}

func twoItemEstimate() *entities.Estimate {
	return &entities.Estimate{
		ID:        10,
		ProjectID: 1,
		Items: []entities.EstimateItem{
			{ID: 100, MaterialName: "Cement", Quantity: entities.NumberOf(2), UnitPrice: entities.NumberOf(10), Total: entities.NumberOf(20)},
			{ID: 101, MaterialName: "Sand", Total: entities.NumberOf(30)},
		},
	}
}

func TestEstimateEditorUseCase_Open(t *testing.T) {
	t.Run("invalid project id", func(t *testing.T) {
		uc := NewEstimateEditorUseCase(nil)
		_, err := uc.Open(context.Background(), 0)
		if !errors.Is(err, ErrInvalidProjectID) {
			t.Fatalf("expected ErrInvalidProjectID, got %v", err)
		}
	})

	t.Run("project load error propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIEstimateGateway(ctrl)
		gateway.EXPECT().GetProject(gomock.Any(), int64(1)).Return(entities.Project{}, errors.New("down"))

		uc := NewEstimateEditorUseCase(gateway)
		_, err := uc.Open(context.Background(), 1)
		if err == nil || err.Error() != "down" {
			t.Fatalf("expected project error, got %v", err)
		}
	})

	t.Run("estimate load failure degrades to absent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIEstimateGateway(ctrl)
		gateway.EXPECT().GetProject(gomock.Any(), int64(1)).Return(entities.Project{ID: 1}, nil)
		gateway.EXPECT().GetEstimate(gomock.Any(), int64(1)).Return(nil, errors.New("malformed"))
		gateway.EXPECT().ListPartners(gomock.Any()).Return(nil, nil)

		uc := NewEstimateEditorUseCase(gateway)
		snap, err := uc.Open(context.Background(), 1)
		if err != nil {
			t.Fatalf("open: %v", err)
		}
		if snap.Estimate != nil {
			t.Fatalf("expected absent estimate, got %+v", snap.Estimate)
		}
		if snap.Total != 0 {
			t.Fatalf("expected zero total, got %v", snap.Total)
		}
	})

	t.Run("open computes total from backend totals", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIEstimateGateway(ctrl)
		uc, sessionID := editorWithSession(t, gateway, twoItemEstimate())

		snap, err := uc.Get(sessionID)
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if snap.Total != 50 {
			t.Fatalf("expected total 50, got %v", snap.Total)
		}
	})
}

func TestEstimateEditorUseCase_CreateEstimate(t *testing.T) {
	t.Run("already exists", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIEstimateGateway(ctrl)
		uc, sessionID := editorWithSession(t, gateway, twoItemEstimate())

		_, err := uc.CreateEstimate(context.Background(), sessionID, nil, nil, nil)
		if !errors.Is(err, ErrEstimateExists) {
			t.Fatalf("expected ErrEstimateExists, got %v", err)
		}
	})

	t.Run("create success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIEstimateGateway(ctrl)
		uc, sessionID := editorWithSession(t, gateway, nil)

		title := "Foundation works"
		gateway.EXPECT().CreateEstimate(gomock.Any(), int64(1), &title, nil, nil).
			Return(entities.Estimate{ID: 10, ProjectID: 1}, nil)

		snap, err := uc.CreateEstimate(context.Background(), sessionID, &title, nil, nil)
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		if snap.Estimate == nil || snap.Estimate.ID != 10 {
			t.Fatalf("expected estimate 10, got %+v", snap.Estimate)
		}
		if snap.Estimate.Items == nil {
			t.Fatalf("expected non-nil item list")
		}
	})
}

func TestEstimateEditorUseCase_AddItem(t *testing.T) {
	t.Run("empty material name", func(t *testing.T) {
		uc := NewEstimateEditorUseCase(nil)
		_, err := uc.AddItem(context.Background(), "whatever", entities.NewItemFields{MaterialName: "  "})
		if !errors.Is(err, ErrInvalidMaterialName) {
			t.Fatalf("expected ErrInvalidMaterialName, got %v", err)
		}
	})

	t.Run("no estimate yet", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIEstimateGateway(ctrl)
		uc, sessionID := editorWithSession(t, gateway, nil)

		_, err := uc.AddItem(context.Background(), sessionID, entities.NewItemFields{MaterialName: "Cement"})
		if !errors.Is(err, ErrNoEstimate) {
			t.Fatalf("expected ErrNoEstimate, got %v", err)
		}
	})

	t.Run("appends at the end and updates total", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIEstimateGateway(ctrl)
		uc, sessionID := editorWithSession(t, gateway, twoItemEstimate())

		fields := entities.NewItemFields{MaterialName: "Gravel", Quantity: entities.NumberOf(1)}
		gateway.EXPECT().AddEstimateItem(gomock.Any(), int64(10), fields).
			Return(entities.EstimateItem{ID: 102, MaterialName: "Gravel", Total: entities.NumberOf(5)}, nil)

		snap, err := uc.AddItem(context.Background(), sessionID, fields)
		if err != nil {
			t.Fatalf("add: %v", err)
		}
		items := snap.Estimate.Items
		if len(items) != 3 || items[2].ID != 102 {
			t.Fatalf("expected new item appended last, got %+v", items)
		}
		if snap.Total != 55 {
			t.Fatalf("expected total 55, got %v", snap.Total)
		}
	})

	t.Run("gateway failure leaves the list untouched", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIEstimateGateway(ctrl)
		uc, sessionID := editorWithSession(t, gateway, twoItemEstimate())

		gateway.EXPECT().AddEstimateItem(gomock.Any(), int64(10), gomock.Any()).
			Return(entities.EstimateItem{}, errors.New("validation"))

		if _, err := uc.AddItem(context.Background(), sessionID, entities.NewItemFields{MaterialName: "Gravel"}); err == nil {
			t.Fatalf("expected error")
		}
		snap, _ := uc.Get(sessionID)
		if len(snap.Estimate.Items) != 2 {
			t.Fatalf("expected item list unchanged, got %d items", len(snap.Estimate.Items))
		}
	})
}

func TestEstimateEditorUseCase_SetItemField(t *testing.T) {
	t.Run("unknown item", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIEstimateGateway(ctrl)
		uc, sessionID := editorWithSession(t, gateway, twoItemEstimate())

		_, err := uc.SetItemField(sessionID, 999, FieldQuantity, "5")
		if !errors.Is(err, ErrItemNotFound) {
			t.Fatalf("expected ErrItemNotFound, got %v", err)
		}
	})

	t.Run("buffers diffs without touching the total", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIEstimateGateway(ctrl)
		uc, sessionID := editorWithSession(t, gateway, twoItemEstimate())

		snap, err := uc.SetItemField(sessionID, 100, FieldQuantity, "9")
		if err != nil {
			t.Fatalf("set: %v", err)
		}
		if got := snap.PendingFields[100]; len(got) != 1 || got[0] != FieldQuantity {
			t.Fatalf("expected quantity pending, got %v", got)
		}
		if snap.Total != 50 {
			t.Fatalf("pending edit must not change the total, got %v", snap.Total)
		}
	})

	t.Run("reverting empties the pending set", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIEstimateGateway(ctrl)
		uc, sessionID := editorWithSession(t, gateway, twoItemEstimate())

		if _, err := uc.SetItemField(sessionID, 100, FieldQuantity, "9"); err != nil {
			t.Fatalf("set: %v", err)
		}
		snap, err := uc.SetItemField(sessionID, 100, FieldQuantity, "2")
		if err != nil {
			t.Fatalf("revert: %v", err)
		}
		if len(snap.PendingFields) != 0 {
			t.Fatalf("expected no pending fields, got %v", snap.PendingFields)
		}
	})
}

func TestEstimateEditorUseCase_SaveItem(t *testing.T) {
	t.Run("nothing to save", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIEstimateGateway(ctrl)
		uc, sessionID := editorWithSession(t, gateway, twoItemEstimate())

		_, err := uc.SaveItem(context.Background(), sessionID, 100)
		if !errors.Is(err, ErrNothingToSave) {
			t.Fatalf("expected ErrNothingToSave, got %v", err)
		}
	})

	t.Run("success clears buffer and applies server row", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIEstimateGateway(ctrl)
		uc, sessionID := editorWithSession(t, gateway, twoItemEstimate())

		if _, err := uc.SetItemField(sessionID, 100, FieldQuantity, "9"); err != nil {
			t.Fatalf("set: %v", err)
		}

		gateway.EXPECT().PatchEstimateItem(gomock.Any(), int64(10), int64(100), entities.ItemPatch{FieldQuantity: 9.0}).
			Return(entities.EstimateItem{ID: 100, MaterialName: "Cement", Quantity: entities.NumberOf(9), UnitPrice: entities.NumberOf(10), Total: entities.NumberOf(90)}, nil)

		snap, err := uc.SaveItem(context.Background(), sessionID, 100)
		if err != nil {
			t.Fatalf("save: %v", err)
		}
		if len(snap.PendingFields) != 0 {
			t.Fatalf("expected buffer cleared, got %v", snap.PendingFields)
		}
		if snap.Total != 120 {
			t.Fatalf("expected total 120 after server total update, got %v", snap.Total)
		}
		if len(snap.SaveErrors) != 0 {
			t.Fatalf("expected no save errors, got %v", snap.SaveErrors)
		}
	})

	t.Run("failure keeps buffer and records the error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIEstimateGateway(ctrl)
		uc, sessionID := editorWithSession(t, gateway, twoItemEstimate())

		if _, err := uc.SetItemField(sessionID, 100, FieldQuantity, "9"); err != nil {
			t.Fatalf("set: %v", err)
		}
		gateway.EXPECT().PatchEstimateItem(gomock.Any(), int64(10), int64(100), gomock.Any()).
			Return(entities.EstimateItem{}, errors.New("backend rejected"))

		if _, err := uc.SaveItem(context.Background(), sessionID, 100); err == nil {
			t.Fatalf("expected save error")
		}

		snap, _ := uc.Get(sessionID)
		if got := snap.PendingFields[100]; len(got) != 1 {
			t.Fatalf("expected edits preserved for retry, got %v", snap.PendingFields)
		}
		if snap.SaveErrors[100] == "" {
			t.Fatalf("expected per-item save error recorded")
		}
		if len(snap.SavingItems) != 0 {
			t.Fatalf("expected in-flight flag released, got %v", snap.SavingItems)
		}

		// Retry succeeds and wipes the recorded error.
		gateway.EXPECT().PatchEstimateItem(gomock.Any(), int64(10), int64(100), entities.ItemPatch{FieldQuantity: 9.0}).
			Return(entities.EstimateItem{ID: 100, MaterialName: "Cement", Total: entities.NumberOf(90)}, nil)
		snap, err := uc.SaveItem(context.Background(), sessionID, 100)
		if err != nil {
			t.Fatalf("retry: %v", err)
		}
		if len(snap.SaveErrors) != 0 {
			t.Fatalf("expected save error cleared, got %v", snap.SaveErrors)
		}
	})

	t.Run("second save while one is in flight is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIEstimateGateway(ctrl)
		uc, sessionID := editorWithSession(t, gateway, twoItemEstimate())

		if _, err := uc.SetItemField(sessionID, 100, FieldQuantity, "9"); err != nil {
			t.Fatalf("set: %v", err)
		}

		firstEntered := make(chan struct{})
		release := make(chan struct{})
		gateway.EXPECT().PatchEstimateItem(gomock.Any(), int64(10), int64(100), gomock.Any()).DoAndReturn(
			func(context.Context, int64, int64, entities.ItemPatch) (entities.EstimateItem, error) {
				close(firstEntered)
				<-release
				return entities.EstimateItem{ID: 100, MaterialName: "Cement", Total: entities.NumberOf(90)}, nil
			},
		)

		done := make(chan error, 1)
		go func() {
			_, err := uc.SaveItem(context.Background(), sessionID, 100)
			done <- err
		}()

		<-firstEntered
		_, err := uc.SaveItem(context.Background(), sessionID, 100)
		if !errors.Is(err, ErrSaveInFlight) {
			t.Fatalf("expected ErrSaveInFlight, got %v", err)
		}

		close(release)
		if err := <-done; err != nil {
			t.Fatalf("first save: %v", err)
		}
	})
}

func TestEstimateEditorUseCase_DeleteItem(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	gateway := mock_interfaces.NewMockIEstimateGateway(ctrl)
	uc, sessionID := editorWithSession(t, gateway, twoItemEstimate())

	if _, err := uc.SetItemField(sessionID, 100, FieldQuantity, "9"); err != nil {
		t.Fatalf("set: %v", err)
	}
	gateway.EXPECT().GetEstimateItemHistory(gomock.Any(), int64(10), int64(100)).
		Return(entities.ItemWithHistory{History: []entities.ItemHistory{{ID: 1, ItemID: 100}}}, nil)
	if _, err := uc.ToggleHistory(context.Background(), sessionID, 100); err != nil {
		t.Fatalf("toggle: %v", err)
	}

	gateway.EXPECT().DeleteEstimateItem(gomock.Any(), int64(10), int64(100)).Return(nil)
	snap, err := uc.DeleteItem(context.Background(), sessionID, 100)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}

	if len(snap.Estimate.Items) != 1 || snap.Estimate.Items[0].ID != 101 {
		t.Fatalf("expected only item 101 left, got %+v", snap.Estimate.Items)
	}
	if snap.Total != 30 {
		t.Fatalf("expected total 30, got %v", snap.Total)
	}
	if len(snap.PendingFields) != 0 {
		t.Fatalf("expected buffer entry dropped, got %v", snap.PendingFields)
	}
	if snap.History != nil {
		t.Fatalf("expected history panel closed, got %+v", snap.History)
	}
}

func TestEstimateEditorUseCase_ToggleHistory(t *testing.T) {
	t.Run("fetches once and memoizes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIEstimateGateway(ctrl)
		uc, sessionID := editorWithSession(t, gateway, twoItemEstimate())

		gateway.EXPECT().GetEstimateItemHistory(gomock.Any(), int64(10), int64(100)).
			Return(entities.ItemWithHistory{History: []entities.ItemHistory{{ID: 1, ItemID: 100}}}, nil).
			Times(1)

		snap, err := uc.ToggleHistory(context.Background(), sessionID, 100)
		if err != nil {
			t.Fatalf("toggle: %v", err)
		}
		if snap.History == nil || !snap.History.Fetched || len(snap.History.Entries) != 1 {
			t.Fatalf("expected fetched panel, got %+v", snap.History)
		}

		// Close, reopen: served from cache, no second gateway call.
		if _, err := uc.ToggleHistory(context.Background(), sessionID, 100); err != nil {
			t.Fatalf("close: %v", err)
		}
		snap, err = uc.ToggleHistory(context.Background(), sessionID, 100)
		if err != nil {
			t.Fatalf("reopen: %v", err)
		}
		if snap.History == nil || len(snap.History.Entries) != 1 {
			t.Fatalf("expected cached entries, got %+v", snap.History)
		}
	})

	t.Run("only one panel open at a time", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIEstimateGateway(ctrl)
		uc, sessionID := editorWithSession(t, gateway, twoItemEstimate())

		gateway.EXPECT().GetEstimateItemHistory(gomock.Any(), int64(10), int64(100)).
			Return(entities.ItemWithHistory{}, nil)
		gateway.EXPECT().GetEstimateItemHistory(gomock.Any(), int64(10), int64(101)).
			Return(entities.ItemWithHistory{}, nil)

		if _, err := uc.ToggleHistory(context.Background(), sessionID, 100); err != nil {
			t.Fatalf("open 100: %v", err)
		}
		snap, err := uc.ToggleHistory(context.Background(), sessionID, 101)
		if err != nil {
			t.Fatalf("open 101: %v", err)
		}
		if snap.History == nil || snap.History.ItemID != 101 {
			t.Fatalf("expected panel on 101, got %+v", snap.History)
		}
	})

	t.Run("fetch failure surfaces as panel error and retries", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIEstimateGateway(ctrl)
		uc, sessionID := editorWithSession(t, gateway, twoItemEstimate())

		gateway.EXPECT().GetEstimateItemHistory(gomock.Any(), int64(10), int64(100)).
			Return(entities.ItemWithHistory{}, errors.New("timeout"))

		snap, err := uc.ToggleHistory(context.Background(), sessionID, 100)
		if err != nil {
			t.Fatalf("a failed fetch is not an operation error, got %v", err)
		}
		if snap.History == nil || snap.History.Error == "" || snap.History.Fetched {
			t.Fatalf("expected panel error state, got %+v", snap.History)
		}

		// Close and reopen: the error state was not memoized.
		if _, err := uc.ToggleHistory(context.Background(), sessionID, 100); err != nil {
			t.Fatalf("close: %v", err)
		}
		gateway.EXPECT().GetEstimateItemHistory(gomock.Any(), int64(10), int64(100)).
			Return(entities.ItemWithHistory{History: []entities.ItemHistory{{ID: 1, ItemID: 100}}}, nil)
		snap, err = uc.ToggleHistory(context.Background(), sessionID, 100)
		if err != nil {
			t.Fatalf("reopen: %v", err)
		}
		if snap.History == nil || snap.History.Error != "" || len(snap.History.Entries) != 1 {
			t.Fatalf("expected successful retry, got %+v", snap.History)
		}
	})
}

func TestEstimateEditorUseCase_CloseAndSweep(t *testing.T) {
	t.Run("close discards the session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIEstimateGateway(ctrl)
		uc, sessionID := editorWithSession(t, gateway, twoItemEstimate())

		if err := uc.Close(sessionID); err != nil {
			t.Fatalf("close: %v", err)
		}
		if _, err := uc.Get(sessionID); !errors.Is(err, ErrSessionNotFound) {
			t.Fatalf("expected ErrSessionNotFound, got %v", err)
		}
		if err := uc.Close(sessionID); !errors.Is(err, ErrSessionNotFound) {
			t.Fatalf("expected ErrSessionNotFound on double close, got %v", err)
		}
	})

	t.Run("idle sweep evicts stale sessions only", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIEstimateGateway(ctrl)
		uc, sessionID := editorWithSession(t, gateway, twoItemEstimate())

		if evicted := uc.SweepIdle(time.Hour); evicted != 0 {
			t.Fatalf("expected no evictions, got %d", evicted)
		}
		if evicted := uc.SweepIdle(-time.Second); evicted != 1 {
			t.Fatalf("expected one eviction, got %d", evicted)
		}
		if _, err := uc.Get(sessionID); !errors.Is(err, ErrSessionNotFound) {
			t.Fatalf("expected swept session gone, got %v", err)
		}
	})
}
