package repositories

import (
	"context"
	"fmt"

	"github.com/yigit/schoolregistry/internal/app/models"
	"github.com/yigit/schoolregistry/internal/db"
)

type phoneKey struct {
	number    string
	phoneType models.PhoneType
}

// distinctPhones drops repeated (number, type) pairs, keeping first occurrence order
func distinctPhones(phones []models.PhoneNumber) []models.PhoneNumber {
	seen := make(map[phoneKey]struct{}, len(phones))
	out := make([]models.PhoneNumber, 0, len(phones))
	for _, p := range phones {
		k := phoneKey{number: p.Number, phoneType: p.Type}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, p)
	}
	return out
}

// linkPhones resolves every phone in the set and links it to parentKey
func linkPhones(ctx context.Context, q db.Querier, resolver *PhoneNumberRepository, links *PhoneLinkRepository, parentKey int64, phones []models.PhoneNumber) error {
	for _, p := range distinctPhones(phones) {
		phoneKey, err := resolver.Resolve(ctx, q, p)
		if err != nil {
			return err
		}
		if _, err := links.Link(ctx, q, phoneKey, parentKey); err != nil {
			return fmt.Errorf("failed to link phone number %q: %w", p.Number, err)
		}
	}
	return nil
}
