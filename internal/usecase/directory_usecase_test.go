package usecase

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"smeta_admin/internal/domain/entities"
	mock_interfaces "smeta_admin/internal/usecase/interfaces/mocks"
)

func TestDirectoryUseCase_CreatePartner(t *testing.T) {
	t.Run("empty name", func(t *testing.T) {
		uc := NewDirectoryUseCase(nil, nil)
		_, err := uc.CreatePartner(context.Background(), "   ")
		if !errors.Is(err, ErrInvalidPartnerName) {
			t.Fatalf("expected ErrInvalidPartnerName, got %v", err)
		}
	})

	t.Run("trims and creates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIDirectoryGateway(ctrl)
		uc := NewDirectoryUseCase(gateway, nil)

		gateway.EXPECT().CreatePartner(gomock.Any(), "Supplier").Return(entities.Partner{ID: 1, Name: "Supplier"}, nil)

		partner, err := uc.CreatePartner(context.Background(), " Supplier ")
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		if partner.ID != 1 {
			t.Fatalf("expected partner 1, got %+v", partner)
		}
	})
}

func TestDirectoryUseCase_CreateClient(t *testing.T) {
	t.Run("missing contact data", func(t *testing.T) {
		uc := NewDirectoryUseCase(nil, nil)
		_, err := uc.CreateClient(context.Background(), entities.NewClientFields{Email: "a@b.c"})
		if !errors.Is(err, ErrInvalidClientPayload) {
			t.Fatalf("expected ErrInvalidClientPayload, got %v", err)
		}
	})

	t.Run("defaults profile type to individual", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIDirectoryGateway(ctrl)
		uc := NewDirectoryUseCase(gateway, nil)

		gateway.EXPECT().CreateClient(gomock.Any(), gomock.AssignableToTypeOf(entities.NewClientFields{})).DoAndReturn(
			func(_ context.Context, fields entities.NewClientFields) (entities.Client, error) {
				if fields.ProfileType != "INDIVIDUAL" {
					t.Fatalf("expected INDIVIDUAL default, got %q", fields.ProfileType)
				}
				return entities.Client{ID: 5}, nil
			},
		)

		client, err := uc.CreateClient(context.Background(), entities.NewClientFields{Email: "a@b.c", Phone: "+700"})
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		if client.ID != 5 {
			t.Fatalf("expected client 5, got %+v", client)
		}
	})
}

func TestDirectoryUseCase_AssignEmployee(t *testing.T) {
	t.Run("appends to the current team", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIDirectoryGateway(ctrl)
		uc := NewDirectoryUseCase(gateway, nil)

		gateway.EXPECT().ListProjectTeam(gomock.Any(), int64(1)).
			Return([]entities.Employee{{ID: 10}, {ID: 11}}, nil)
		gateway.EXPECT().SetProjectTeam(gomock.Any(), int64(1), []int64{10, 11, 12}).Return(nil)

		if err := uc.AssignEmployee(context.Background(), 1, 12); err != nil {
			t.Fatalf("assign: %v", err)
		}
	})

	t.Run("already on the team is not duplicated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIDirectoryGateway(ctrl)
		uc := NewDirectoryUseCase(gateway, nil)

		gateway.EXPECT().ListProjectTeam(gomock.Any(), int64(1)).
			Return([]entities.Employee{{ID: 10}}, nil)
		gateway.EXPECT().SetProjectTeam(gomock.Any(), int64(1), []int64{10}).Return(nil)

		if err := uc.AssignEmployee(context.Background(), 1, 10); err != nil {
			t.Fatalf("assign: %v", err)
		}
	})

	t.Run("invalid ids", func(t *testing.T) {
		uc := NewDirectoryUseCase(nil, nil)
		if err := uc.AssignEmployee(context.Background(), 0, 10); !errors.Is(err, ErrInvalidProjectID) {
			t.Fatalf("expected ErrInvalidProjectID, got %v", err)
		}
		if err := uc.AssignEmployee(context.Background(), 1, 0); !errors.Is(err, ErrInvalidEmployeeID) {
			t.Fatalf("expected ErrInvalidEmployeeID, got %v", err)
		}
	})
}

func TestDirectoryUseCase_RemoveEmployee(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	gateway := mock_interfaces.NewMockIDirectoryGateway(ctrl)
	uc := NewDirectoryUseCase(gateway, nil)

	gateway.EXPECT().ListProjectTeam(gomock.Any(), int64(1)).
		Return([]entities.Employee{{ID: 10}, {ID: 11}}, nil)
	gateway.EXPECT().SetProjectTeam(gomock.Any(), int64(1), []int64{11}).Return(nil)

	if err := uc.RemoveEmployee(context.Background(), 1, 10); err != nil {
		t.Fatalf("remove: %v", err)
	}
}

func TestDirectoryUseCase_GetProject(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	projects := mock_interfaces.NewMockIEstimateGateway(ctrl)
	uc := NewDirectoryUseCase(nil, projects)

	projects.EXPECT().GetProject(gomock.Any(), int64(3)).Return(entities.Project{ID: 3, Title: "Site B"}, nil)

	project, err := uc.GetProject(context.Background(), 3)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if project.Title != "Site B" {
		t.Fatalf("unexpected project: %+v", project)
	}
}
