package service

import (
	"context"
	"strings"

	"github.com/cookmate/backend/internal/models"
	"github.com/cookmate/backend/internal/store"
	"github.com/cookmate/backend/internal/types"
)

const maxPreferenceLen = 50

type PreferenceService struct {
	prefs *store.PreferenceStore
}

func NewPreferenceService(prefs *store.PreferenceStore) *PreferenceService {
	return &PreferenceService{prefs: prefs}
}

func (s *PreferenceService) Get(ctx context.Context, userID int64) (*types.Preferences, error) {
	if err := validateID("userId", userID); err != nil {
		return nil, err
	}
	rows, err := s.prefs.ListForUser(ctx, userID)
	if err != nil {
		return nil, storageErr("list preferences", err)
	}

	out := &types.Preferences{Dietary: []string{}, Allergies: []string{}, Cuisine: []string{}}
	for _, row := range rows {
		switch row.Kind {
		case models.PreferenceDietary:
			out.Dietary = append(out.Dietary, row.Value)
		case models.PreferenceAllergy:
			out.Allergies = append(out.Allergies, row.Value)
		case models.PreferenceCuisine:
			out.Cuisine = append(out.Cuisine, row.Value)
		}
	}
	return out, nil
}

// Save replaces the user's preferences. Values are lowercased and de-duplicated.
func (s *PreferenceService) Save(ctx context.Context, userID int64, prefs *types.Preferences) (*types.Preferences, error) {
	if err := validateID("userId", userID); err != nil {
		return nil, err
	}

	var rows []models.DietaryPreference
	add := func(kind models.PreferenceKind, values []string) error {
		seen := map[string]bool{}
		for _, v := range values {
			v = strings.ToLower(strings.TrimSpace(v))
			if v == "" || seen[v] {
				continue
			}
			if len(v) > maxPreferenceLen {
				return invalid(string(kind), "values must be at most 50 characters")
			}
			seen[v] = true
			rows = append(rows, models.DietaryPreference{Kind: kind, Value: v})
		}
		return nil
	}
	if err := add(models.PreferenceDietary, prefs.Dietary); err != nil {
		return nil, err
	}
	if err := add(models.PreferenceAllergy, prefs.Allergies); err != nil {
		return nil, err
	}
	if err := add(models.PreferenceCuisine, prefs.Cuisine); err != nil {
		return nil, err
	}

	if err := s.prefs.Replace(ctx, userID, rows); err != nil {
		return nil, storageErr("save preferences", err)
	}
	return s.Get(ctx, userID)
}
