package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/clio/internal/adapter"
	"github.com/MKhiriev/clio/internal/logger"
	"github.com/MKhiriev/clio/internal/mock"
	"github.com/MKhiriev/clio/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestStationService_Search(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		wantQuery models.SearchQuery
	}{
		{name: "by name", raw: "  jazz  ", wantQuery: models.SearchQuery{Term: "jazz", Limit: 15}},
		{name: "by tag", raw: "tag:ambient", wantQuery: models.SearchQuery{Term: "ambient", ByTag: true, Limit: 15}},
		{name: "by tag upper-case prefix", raw: "TAG: lofi", wantQuery: models.SearchQuery{Term: "lofi", ByTag: true, Limit: 15}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			directory := mock.NewMockDirectoryAdapter(ctrl)
			svc := NewStationService(directory, 15, logger.Nop())

			want := []models.Station{{Name: "Station"}}
			directory.EXPECT().Search(gomock.Any(), tt.wantQuery).Return(want, nil)

			got, err := svc.Search(context.Background(), tt.raw)

			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestStationService_Search_EmptyTerm(t *testing.T) {
	ctrl := gomock.NewController(t)
	directory := mock.NewMockDirectoryAdapter(ctrl)
	svc := NewStationService(directory, 15, logger.Nop())

	for _, raw := range []string{"", "   ", "tag:", "tag:   "} {
		_, err := svc.Search(context.Background(), raw)
		assert.ErrorIs(t, err, adapter.ErrEmptyQuery, raw)
	}
}

func TestStationService_Search_DirectoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	directory := mock.NewMockDirectoryAdapter(ctrl)
	svc := NewStationService(directory, 15, logger.Nop())

	directory.EXPECT().Search(gomock.Any(), gomock.Any()).
		Return(nil, errors.Join(adapter.ErrServiceUnavailable, errors.New("maintenance")))

	_, err := svc.Search(context.Background(), "rock")

	require.Error(t, err)
	assert.ErrorIs(t, err, adapter.ErrServiceUnavailable)
	assert.Contains(t, err.Error(), "search stations")
}

func TestStationService_DirectoryURL(t *testing.T) {
	ctrl := gomock.NewController(t)
	directory := mock.NewMockDirectoryAdapter(ctrl)
	svc := NewStationService(directory, 15, logger.Nop())

	directory.EXPECT().BaseURL().Return("https://de1.api.radio-browser.info")

	assert.Equal(t, "https://de1.api.radio-browser.info", svc.DirectoryURL())
}
