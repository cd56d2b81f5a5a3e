package geocoding_test

import (
	"log/slog"
	"testing"

	"github.com/gramsetu/carefinder/internal/geocoding"
	"github.com/gramsetu/carefinder/internal/models"
	"github.com/gramsetu/carefinder/test/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"googlemaps.github.io/maps"
)

func TestGoogleGeocode(t *testing.T) {
	ctx := t.Context()
	logger := slog.Default()

	t.Run("successful geocode", func(t *testing.T) {
		mockClient := mocks.NewGoogleAPIClient(t)
		provider := geocoding.NewGoogleProvider(mockClient, logger)

		results := []maps.GeocodingResult{
			{Geometry: maps.AddressGeometry{Location: maps.LatLng{Lat: 21.1458, Lng: 79.0882}}},
		}
		mockClient.On("Geocode", ctx, mock.MatchedBy(func(r *maps.GeocodingRequest) bool {
			return r.Address == "Nagpur, 440001, Maharashtra, India" && r.Region == "in"
		})).Return(results, nil).Once()

		coords, err := provider.Geocode(ctx, "Nagpur, 440001, Maharashtra, India")

		require.NoError(t, err)
		assert.Equal(t, &models.Coordinates{Latitude: 21.1458, Longitude: 79.0882}, coords)
	})

	t.Run("empty response", func(t *testing.T) {
		mockClient := mocks.NewGoogleAPIClient(t)
		provider := geocoding.NewGoogleProvider(mockClient, logger)

		mockClient.On("Geocode", ctx, mock.Anything).Return([]maps.GeocodingResult{}, nil).Once()

		coords, err := provider.Geocode(ctx, "Nowhere Village, India")

		require.ErrorIs(t, err, geocoding.ErrEmptyResponse)
		assert.Nil(t, coords)
	})

	t.Run("api error", func(t *testing.T) {
		mockClient := mocks.NewGoogleAPIClient(t)
		provider := geocoding.NewGoogleProvider(mockClient, logger)

		mockClient.On("Geocode", ctx, mock.Anything).Return(nil, assert.AnError).Once()

		coords, err := provider.Geocode(ctx, "Nagpur, India")

		require.Error(t, err)
		require.ErrorIs(t, err, assert.AnError)
		assert.Nil(t, coords)
	})
}
