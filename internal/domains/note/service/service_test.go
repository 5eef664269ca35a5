package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"todonotes/infras/otel/mocks"
	noteMocks "todonotes/internal/domains/note/mocks"
	"todonotes/internal/domains/note/model"
	"todonotes/internal/domains/note/model/dto"
	"todonotes/internal/domains/note/service"
)

func TestNoteService_Add(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := noteMocks.NewMockNote(ctrl)
	mockSeq := noteMocks.NewMockSequence(ctrl)

	svc := service.New(mockRepo, mockSeq, mocks.NewOtel())

	req := dto.AddNoteRequest{Title: "Buy milk", Description: "2 liters"}

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantID    int64
	}{
		{
			name: "successful add",
			setupMock: func() {
				mockSeq.EXPECT().Next(gomock.Any()).Return(int64(3), nil)
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, note model.Note) error {
						assert.Equal(t, int64(3), note.ID)
						assert.Equal(t, "Buy milk", note.Title)
						assert.Equal(t, "2 liters", note.Description)
						assert.False(t, note.Completed)

						return nil
					})
			},
			wantID: 3,
		},
		{
			name: "sequence error",
			setupMock: func() {
				mockSeq.EXPECT().Next(gomock.Any()).Return(int64(0), errors.New("counter unavailable"))
			},
			wantErr: true,
		},
		{
			name: "repository error",
			setupMock: func() {
				mockSeq.EXPECT().Next(gomock.Any()).Return(int64(4), nil)
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("duplicate key"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			before := time.Now().Add(-time.Second)
			note, err := svc.Add(context.Background(), req)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantID, note.ID)
			assert.True(t, note.CreatedOn.After(before))
		})
	}
}

func TestNoteService_AddWrapsCause(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := noteMocks.NewMockNote(ctrl)
	mockSeq := noteMocks.NewMockSequence(ctrl)
	svc := service.New(mockRepo, mockSeq, mocks.NewOtel())

	cause := errors.New("server selection timeout")
	mockSeq.EXPECT().Next(gomock.Any()).Return(int64(1), nil)
	mockRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(cause)

	_, err := svc.Add(context.Background(), dto.AddNoteRequest{})

	require.Error(t, err)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "server selection timeout")
}

func TestNoteService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := noteMocks.NewMockNote(ctrl)
	svc := service.New(mockRepo, noteMocks.NewMockSequence(ctrl), mocks.NewOtel())

	tests := []struct {
		name       string
		setupMock  func()
		wantErr    bool
		wantResult []model.Note
	}{
		{
			name: "successful get all",
			setupMock: func() {
				mockRepo.EXPECT().GetAll(gomock.Any()).Return([]model.Note{
					{ID: 1, Title: "Buy milk"},
					{ID: 2, Title: "Call mom", Completed: true},
				}, nil)
			},
			wantResult: []model.Note{
				{ID: 1, Title: "Buy milk"},
				{ID: 2, Title: "Call mom", Completed: true},
			},
		},
		{
			name: "empty store",
			setupMock: func() {
				mockRepo.EXPECT().GetAll(gomock.Any()).Return([]model.Note{}, nil)
			},
			wantResult: []model.Note{},
		},
		{
			name: "repository error",
			setupMock: func() {
				mockRepo.EXPECT().GetAll(gomock.Any()).Return(nil, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			notes, err := svc.GetAll(context.Background())

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, notes)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantResult, notes)
		})
	}
}

func TestNoteService_Mark(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := noteMocks.NewMockNote(ctrl)
	svc := service.New(mockRepo, noteMocks.NewMockSequence(ctrl), mocks.NewOtel())

	tests := []struct {
		name       string
		id         int64
		setupMock  func()
		wantErr    bool
		wantResult dto.ChangeResult
	}{
		{
			name: "existing note",
			id:   2,
			setupMock: func() {
				mockRepo.EXPECT().MarkCompleted(gomock.Any(), int64(2)).Return(int64(1), nil)
			},
			wantResult: dto.ChangeResult{ID: 2, Count: 1},
		},
		{
			name: "missing note is not an error",
			id:   42,
			setupMock: func() {
				mockRepo.EXPECT().MarkCompleted(gomock.Any(), int64(42)).Return(int64(0), nil)
			},
			wantResult: dto.ChangeResult{ID: 42, Count: 0},
		},
		{
			name: "repository error",
			id:   2,
			setupMock: func() {
				mockRepo.EXPECT().MarkCompleted(gomock.Any(), int64(2)).Return(int64(0), errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Mark(context.Background(), tt.id)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantResult, res)
		})
	}
}

func TestNoteService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := noteMocks.NewMockNote(ctrl)
	svc := service.New(mockRepo, noteMocks.NewMockSequence(ctrl), mocks.NewOtel())

	tests := []struct {
		name       string
		id         int64
		setupMock  func()
		wantErr    bool
		wantResult dto.ChangeResult
	}{
		{
			name: "existing note",
			id:   1,
			setupMock: func() {
				mockRepo.EXPECT().Delete(gomock.Any(), int64(1)).Return(int64(1), nil)
			},
			wantResult: dto.ChangeResult{ID: 1, Count: 1},
		},
		{
			name: "missing note is not an error",
			id:   9,
			setupMock: func() {
				mockRepo.EXPECT().Delete(gomock.Any(), int64(9)).Return(int64(0), nil)
			},
			wantResult: dto.ChangeResult{ID: 9, Count: 0},
		},
		{
			name: "repository error",
			id:   1,
			setupMock: func() {
				mockRepo.EXPECT().Delete(gomock.Any(), int64(1)).Return(int64(0), errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Delete(context.Background(), tt.id)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantResult, res)
		})
	}
}

func TestNoteService_Tracing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := noteMocks.NewMockNote(ctrl)
	mockSeq := noteMocks.NewMockSequence(ctrl)
	recorder := mocks.NewRecorder()

	svc := service.New(mockRepo, mockSeq, recorder)

	mockSeq.EXPECT().Next(gomock.Any()).Return(int64(5), nil)
	mockRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
	mockRepo.EXPECT().Delete(gomock.Any(), int64(5)).Return(int64(0), errors.New("database error"))

	_, err := svc.Add(context.Background(), dto.AddNoteRequest{Title: "Buy milk"})
	require.NoError(t, err)

	_, err = svc.Delete(context.Background(), 5)
	require.Error(t, err)

	add, ok := recorder.Span("service.Add")
	require.True(t, ok)
	assert.Equal(t, "service", add.Scope)
	assert.True(t, add.Ended)
	assert.Empty(t, add.Errors)
	assert.Equal(t, int64(5), add.Attributes["note.id"])

	del, ok := recorder.Span("service.Delete")
	require.True(t, ok)
	assert.True(t, del.Ended)
	require.Len(t, del.Errors, 1)
	assert.ErrorContains(t, del.Errors[0], "database error")
}
