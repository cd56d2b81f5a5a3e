package geocoding

import (
	"context"

	"github.com/gramsetu/carefinder/internal/models"
)

// Provider is an interface that defines a method for geocoding an address.
// The Geocode method takes a context and an address string as input,
// and returns the corresponding coordinates and an error if any occurs.
type Provider interface {
	Geocode(ctx context.Context, address string) (*models.Coordinates, error)
}

// BuildQuery assembles a geocoding query from the address fragments a rural
// patient profile carries. Empty fragments are skipped; the country suffix is
// always appended to keep results inside India.
func BuildQuery(district, pincode, state string) string {
	query := ""
	for _, part := range []string{district, pincode, state} {
		if part == "" {
			continue
		}
		if query != "" {
			query += ", "
		}
		query += part
	}
	if query == "" {
		return ""
	}
	return query + ", India"
}
